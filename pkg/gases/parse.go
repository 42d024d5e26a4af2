package gases

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownGas = errors.New("unknown gas")

// Parse accepts the names used by Name ("Air", "EAN32", "Oxygen", "18/45")
// and plain oxygen percentage ("32"). Pure helium is "0/100".
func Parse(text string) (Gas, error) {
	value := strings.TrimSpace(text)
	for name, g := range StandardGases {
		if strings.EqualFold(name, value) {
			return g, nil
		}
	}
	upper := strings.ToUpper(value)
	if strings.HasPrefix(upper, "EAN") {
		value = value[3:]
	}
	o2Text, heText, trimix := strings.Cut(value, "/")
	o2, err := parsePercent(o2Text)
	if err != nil {
		return Gas{}, fmt.Errorf("%w: %q", ErrUnknownGas, text)
	}
	he := 0.0
	if trimix {
		if he, err = parsePercent(heText); err != nil {
			return Gas{}, fmt.Errorf("%w: %q", ErrUnknownGas, text)
		}
	}
	if o2+he == 0 || o2+he > 1 {
		return Gas{}, fmt.Errorf("%w: %q", ErrUnknownGas, text)
	}
	return New(o2, he), nil
}

func parsePercent(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, strconv.ErrRange
	}
	return v / 100, nil
}
