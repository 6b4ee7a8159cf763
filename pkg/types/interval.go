package types

import (
	"encoding/json"
	"fmt"
	"time"
)

type Interval string

func (i Interval) Minutes() int {
	return SupportedIntervals[i]
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Minutes()) * time.Minute
}

// Seconds returns the candle spacing in unix seconds.
func (i Interval) Seconds() int64 {
	return int64(i.Minutes()) * 60
}

func (i *Interval) UnmarshalJSON(b []byte) (err error) {
	var a string
	err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	if _, ok := SupportedIntervals[Interval(a)]; !ok {
		return fmt.Errorf("interval %q is not supported", a)
	}

	*i = Interval(a)
	return
}

func (i Interval) String() string {
	return string(i)
}

var Interval1m = Interval("1m")
var Interval5m = Interval("5m")
var Interval15m = Interval("15m")
var Interval30m = Interval("30m")
var Interval1h = Interval("1h")
var Interval4h = Interval("4h")
var Interval1d = Interval("1d")

var SupportedIntervals = map[Interval]int{
	Interval1m:  1,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval1h:  60,
	Interval4h:  60 * 4,
	Interval1d:  60 * 24,
}

// ParseIntervalMinutes maps a timeframe selector value (minutes) back to an
// Interval. The selector values follow the Kraken OHLC API.
func ParseIntervalMinutes(minutes int) (Interval, error) {
	for interval, m := range SupportedIntervals {
		if m == minutes {
			return interval, nil
		}
	}

	return "", fmt.Errorf("no interval for %d minutes", minutes)
}
