package types

import (
	"encoding/json"
	"time"
)

type MillisecondTimestamp time.Time

func NewMillisecondTimestampFromInt(i int64) MillisecondTimestamp {
	return MillisecondTimestamp(time.Unix(0, i*int64(time.Millisecond)))
}

func (t MillisecondTimestamp) Time() time.Time {
	return time.Time(t)
}

// Unix truncates the timestamp to second resolution, which is what the chart
// time axis works with.
func (t MillisecondTimestamp) Unix() int64 {
	return time.Time(t).Unix()
}

func (t MillisecondTimestamp) String() string {
	return time.Time(t).String()
}

func (t *MillisecondTimestamp) UnmarshalJSON(data []byte) error {
	var v float64

	var err = json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	*t = NewMillisecondTimestampFromInt(int64(v))
	return nil
}

func (t MillisecondTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UnixMilli())
}
