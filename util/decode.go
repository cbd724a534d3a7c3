package util

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ParseLooseFloat parses provider numbers sent as strings, e.g. "4.5",
// "+4.52%" or "1,024.10". NaN and infinities are rejected.
func ParseLooseFloat(s string) (float64, bool) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimSuffix(clean, "%")
	clean = strings.TrimPrefix(clean, "+")
	clean = strings.ReplaceAll(clean, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func looseFloatHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Float64 {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		v, _ := ParseLooseFloat(reflect.ValueOf(data).String())
		return v, nil
	}
	return data, nil
}

// DecodeLoose maps a generic JSON document onto output. Numeric fields are
// normalised to float64 whether the provider sent numbers or strings;
// unparseable values become 0.
func DecodeLoose(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       looseFloatHook,
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
