// Package dashboard maps UI triggers (page load, timer tick, button click)
// to region handlers. Each handler fetches what it needs and returns a
// Fragment; nothing is shared between handlers except the last loaded
// ticker count.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"stockdash/customerrors"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Trigger string

const (
	TriggerLoad  Trigger = "load"
	TriggerTimer Trigger = "timer"
	TriggerClick Trigger = "click"
)

const (
	RegionTicker      = "ticker"
	RegionTickerStyle = "ticker-style"
	RegionNews        = "news"
	RegionWatchlist   = "watchlist"
	RegionGainers     = "gainers"
	RegionChart       = "chart"
)

// Event is one trigger firing for one region. Symbol is only set for clicks.
type Event struct {
	Trigger Trigger
	Region  string
	Symbol  string
}

// Fragment is a rendered-to-be piece of the page. An empty Template means
// Data is sent as JSON.
type Fragment struct {
	Region   string
	Template string
	Data     any
}

type HandlerFunc func(ctx context.Context, ev Event) Fragment

// Dispatcher is the trigger -> region -> handler table.
type Dispatcher struct {
	mu    sync.RWMutex
	table map[Trigger]map[string]HandlerFunc
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{table: make(map[Trigger]map[string]HandlerFunc)}
}

func (d *Dispatcher) Register(trigger Trigger, region string, fn HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.table[trigger] == nil {
		d.table[trigger] = make(map[string]HandlerFunc)
	}
	d.table[trigger][region] = fn
}

func (d *Dispatcher) lookup(trigger Trigger, region string) (HandlerFunc, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn, ok := d.table[trigger][region]
	return fn, ok
}

// Regions lists the regions registered for a trigger, sorted.
func (d *Dispatcher) Regions(trigger Trigger) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	regions := make([]string, 0, len(d.table[trigger]))
	for r := range d.table[trigger] {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (Fragment, error) {
	fn, ok := d.lookup(ev.Trigger, ev.Region)
	if !ok {
		return Fragment{}, fmt.Errorf("%w: %s/%s", customerrors.ErrUnknownRegion, ev.Trigger, ev.Region)
	}
	return fn(ctx, ev), nil
}

// DispatchAll fires every handler registered for trigger concurrently.
// Handlers run in no particular order. A handler that panics yields an
// empty fragment for its region.
func (d *Dispatcher) DispatchAll(ctx context.Context, trigger Trigger) map[string]Fragment {
	regions := d.Regions(trigger)
	fragments := make([]Fragment, len(regions))

	g, gctx := errgroup.WithContext(ctx)
	for i, region := range regions {
		i, region := i, region
		fn, _ := d.lookup(trigger, region)
		g.Go(func() error {
			fragments[i] = runRecovered(gctx, fn, Event{Trigger: trigger, Region: region})
			return nil
		})
	}
	g.Wait()

	out := make(map[string]Fragment, len(regions))
	for i, region := range regions {
		out[region] = fragments[i]
	}
	return out
}

func runRecovered(ctx context.Context, fn HandlerFunc, ev Event) (frag Fragment) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("trigger", string(ev.Trigger)).Str("region", ev.Region).Msg("Region handler panicked")
			frag = Fragment{Region: ev.Region}
		}
	}()
	return fn(ctx, ev)
}
