package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	assert.Equal(t, 60, Interval1h.Minutes())
	assert.Equal(t, int64(300), Interval5m.Seconds())
	assert.Equal(t, 4*time.Hour, Interval4h.Duration())
	assert.Equal(t, 0, Interval("7m").Minutes())
}

func TestInterval_UnmarshalJSON(t *testing.T) {
	var i Interval
	assert.NoError(t, json.Unmarshal([]byte(`"15m"`), &i))
	assert.Equal(t, Interval15m, i)

	assert.Error(t, json.Unmarshal([]byte(`"2m"`), &i))
}

func TestParseIntervalMinutes(t *testing.T) {
	i, err := ParseIntervalMinutes(240)
	assert.NoError(t, err)
	assert.Equal(t, Interval4h, i)

	i, err = ParseIntervalMinutes(1440)
	assert.NoError(t, err)
	assert.Equal(t, Interval1d, i)

	_, err = ParseIntervalMinutes(7)
	assert.Error(t, err)
}
