package core

import (
	"fmt"
	"strconv"
)

// Interval is an OHLC candle width in minutes.
type Interval int

// Candle widths accepted by the OHLC endpoint.
const (
	Interval1m  Interval = 1
	Interval5m  Interval = 5
	Interval15m Interval = 15
	Interval30m Interval = 30
	Interval1h  Interval = 60
	Interval4h  Interval = 240
	Interval1d  Interval = 1440
	Interval1w  Interval = 10080
	Interval15d Interval = 21600
)

// Intervals lists every supported candle width in ascending order.
var Intervals = []Interval{
	Interval1m, Interval5m, Interval15m, Interval30m, Interval1h,
	Interval4h, Interval1d, Interval1w, Interval15d,
}

// String returns the number of minutes as sent on the wire.
func (i Interval) String() string {
	return strconv.Itoa(int(i))
}

// Valid reports whether the exchange accepts i.
func (i Interval) Valid() bool {
	for _, v := range Intervals {
		if v == i {
			return true
		}
	}
	return false
}

// ParseInterval parses a number of minutes.
func ParseInterval(s string) (Interval, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse interval %q: %w", s, err)
	}
	i := Interval(n)
	if !i.Valid() {
		return 0, fmt.Errorf("unsupported interval: %d", n)
	}
	return i, nil
}
