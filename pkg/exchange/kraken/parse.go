package kraken

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

var ErrMessageTypeNotSupported = errors.New("message type not supported")

// TickerEvent is one last-price update from the v2 ticker channel.
type TickerEvent struct {
	Symbol string
	Last   float64
}

// HeartbeatEvent is the idle keepalive the server sends on a quiet channel.
type HeartbeatEvent struct{}

// StatusEvent reports connection level state from the status channel.
type StatusEvent struct {
	System string
}

// MethodResult acknowledges a subscribe/unsubscribe/ping request.
type MethodResult struct {
	Method  string
	Success bool
	Error   string
}

// ParseMessage accepts raw Kraken websocket v2 messages and parses them
// into typed events.
// Return types: *TickerEvent, *HeartbeatEvent, *StatusEvent, *MethodResult
func ParseMessage(payload []byte) (interface{}, error) {
	parser := fastjson.Parser{}
	val, err := parser.ParseBytes(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse payload: "+string(payload))
	}

	if channel := string(val.GetStringBytes("channel")); len(channel) > 0 {
		switch channel {
		case "ticker":
			return parseTickerEvent(val)
		case "heartbeat":
			return &HeartbeatEvent{}, nil
		case "status":
			return parseStatusEvent(val)
		}
	}

	if method := string(val.GetStringBytes("method")); len(method) > 0 {
		return &MethodResult{
			Method:  method,
			Success: val.GetBool("success"),
			Error:   string(val.GetStringBytes("error")),
		}, nil
	}

	return nil, errors.Wrapf(ErrMessageTypeNotSupported, "payload %s", payload)
}

func parseTickerEvent(val *fastjson.Value) (*TickerEvent, error) {
	data := val.GetArray("data")
	if len(data) == 0 {
		return nil, errors.New("ticker message carries no data")
	}

	// one pair per subscription, the update holds a single entry
	entry := data[0]
	symbol := string(entry.GetStringBytes("symbol"))

	// a zero last price is legitimate; only an absent field is malformed
	if symbol == "" || !entry.Exists("last") {
		return nil, errors.New("ticker entry missing symbol or last price")
	}

	return &TickerEvent{Symbol: symbol, Last: entry.GetFloat64("last")}, nil
}

func parseStatusEvent(val *fastjson.Value) (*StatusEvent, error) {
	data := val.GetArray("data")
	if len(data) == 0 {
		return &StatusEvent{}, nil
	}
	return &StatusEvent{
		System: string(data[0].GetStringBytes("system")),
	}, nil
}
