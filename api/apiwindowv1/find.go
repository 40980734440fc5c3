package apiwindowv1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/SierraSoftworks/connor"
	"github.com/fulldump/box"
	jsonv2 "github.com/go-json-experiment/json"

	"github.com/fulldump/ddrmem/service"
)

type findRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
}

// decodeFindRequest keeps filter integers as int64 so addresses compare
// exactly.
func decodeFindRequest(body []byte) (*findRequest, error) {

	params := &findRequest{
		Limit: -1,
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return params, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	err := decoder.Decode(params)
	if err != nil {
		return nil, err
	}

	for key, value := range params.Filter {
		params.Filter[key] = normalizeNumbers(value)
	}

	return params, nil
}

func normalizeNumbers(v interface{}) interface{} {
	switch vv := v.(type) {
	case json.Number:
		if i, err := vv.Int64(); err == nil {
			return i
		}
		f, _ := vv.Float64()
		return f
	case map[string]interface{}:
		for key, value := range vv {
			vv[key] = normalizeNumbers(value)
		}
		return vv
	case []interface{}:
		for i, value := range vv {
			vv[i] = normalizeNumbers(value)
		}
		return vv
	default:
		return v
	}
}

// find streams the live blocks of a window, one JSON document per line.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params, err := decodeFindRequest(requestBody)
	if err != nil {
		return err
	}

	windowName := box.GetUrlParameter(ctx, "windowName")
	reservations, err := GetServicer(ctx).Blocks(windowName)
	if err != nil {
		return err
	}

	hasFilter := len(params.Filter) > 0
	skip := params.Skip
	limit := params.Limit

	for _, reservation := range reservations {

		if limit == 0 {
			break
		}

		if hasFilter {
			match, err := matchReservation(params.Filter, reservation)
			if err != nil {
				return fmt.Errorf("%w: filter: %s", service.ErrInvalidRequest, err.Error())
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		err := jsonv2.MarshalWrite(w, reservation)
		if err != nil {
			return err
		}
		w.Write([]byte("\n"))
	}

	return nil
}

func matchReservation(filter map[string]interface{}, reservation *service.Reservation) (bool, error) {

	data := map[string]interface{}{
		"id":         reservation.ID,
		"label":      reservation.Label,
		"window":     reservation.Window,
		"address":    filterNumber(reservation.Address),
		"end":        filterNumber(reservation.End),
		"size":       filterNumber(reservation.Size),
		"strict":     reservation.Strict,
		"created_at": reservation.CreatedAt.Format(time.RFC3339Nano),
	}

	return connor.Match(filter, data)
}

// filterNumber matches the types connor compares: int64, or float64 above
// its range.
func filterNumber(n uint64) interface{} {
	if n > math.MaxInt64 {
		return float64(n)
	}
	return int64(n)
}
