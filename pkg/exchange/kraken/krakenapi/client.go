package krakenapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

const defaultHTTPTimeout = 15 * time.Second

const RestBaseURL = "https://api.kraken.com"

type RestClient struct {
	BaseURL *url.URL

	client *http.Client
}

func NewClient() *RestClient {
	u, err := url.Parse(RestBaseURL)
	if err != nil {
		panic(err)
	}

	return &RestClient{
		BaseURL: u,
		client: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}
}

type ohlcResponse struct {
	Error  []string                   `json:"error"`
	Result map[string]json.RawMessage `json:"result"`
}

// GetOHLC fetches candles for a pair and converts Kraken's
// [time, open, high, low, close, vwap, volume, count] rows into
// [timestampMillis, open, high, low, close] history rows.
//
// Kraken reports failures inside the payload: a non-empty error array with
// a 200 status. That marker fails the whole call.
func (c *RestClient) GetOHLC(ctx context.Context, pair string, intervalMinutes int) ([]types.OHLCRow, error) {
	u := *c.BaseURL
	u.Path = "/0/public/OHLC"
	q := url.Values{}
	q.Set("pair", pair)
	q.Set("interval", strconv.Itoa(intervalMinutes))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create OHLC request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "OHLC request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("OHLC request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read OHLC response")
	}

	var payload ohlcResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode OHLC response")
	}

	if len(payload.Error) > 0 {
		return nil, errors.Errorf("kraken error: %s", strings.Join(payload.Error, ", "))
	}

	raw, ok := payload.Result[pair]
	if !ok {
		// some pairs come back under a normalized key; take the first
		// non-meta entry
		for key, v := range payload.Result {
			if key == "last" {
				continue
			}
			raw = v
			ok = true
			break
		}
	}
	if !ok {
		return nil, errors.Errorf("no OHLC result for pair %s", pair)
	}

	var entries [][]interface{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "decode OHLC rows")
	}

	rows := make([]types.OHLCRow, 0, len(entries))
	for i, entry := range entries {
		if len(entry) < 5 {
			return nil, errors.Errorf("OHLC row %d has %d fields, want at least 5", i, len(entry))
		}

		t, err := toFloat(entry[0])
		if err != nil {
			return nil, errors.Wrapf(err, "OHLC row %d time", i)
		}

		var row types.OHLCRow
		row[0] = t * 1000 // seconds to milliseconds
		for j := 1; j <= 4; j++ {
			v, err := toFloat(entry[j])
			if err != nil {
				return nil, errors.Wrapf(err, "OHLC row %d field %d", i, j)
			}
			row[j] = v
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func toFloat(v interface{}) (float64, error) {
	switch vt := v.(type) {
	case float64:
		return vt, nil
	case string:
		return strconv.ParseFloat(vt, 64)
	case json.Number:
		return vt.Float64()
	}
	return 0, fmt.Errorf("unexpected numeric type %T", v)
}
