package util

import (
	"time"
)

const labelLayout = "Jan 02"

// ExchangeLocation resolves a provider timezone name, falling back to UTC
// when the name is empty or tzdata is unavailable.
func ExchangeLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func FormatDateLabel(t time.Time) string {
	return t.Format(labelLayout)
}
