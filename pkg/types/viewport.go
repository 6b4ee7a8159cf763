package types

// TimeRange is the visible time window of the chart, in unix seconds. The
// rendering engine owns it through pan and zoom; the core only reads it and
// issues explicit set-visible-range or fit-content requests.
type TimeRange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

func (r TimeRange) Width() int64 {
	return r.To - r.From
}

func (r TimeRange) Contains(t int64) bool {
	return t >= r.From && t <= r.To
}
