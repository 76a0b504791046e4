package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// RatesResponse is the shape returned by open.er-api.com: all rates are
// relative to USD, keyed by 3-letter currency code.
type RatesResponse struct {
	Result            string             `json:"result"`
	Rates             map[string]float64 `json:"rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
	ErrorType         string             `json:"error-type"`
}

// FetchLatestRates issues a single GET against apiURL and decodes the body.
// The HTTP status is returned alongside so the caller can classify upstream
// failures; a decode failure on a reachable server is reported as an error.
func FetchLatestRates(apiURL string) (*RatesResponse, int, error) {
	resp, err := httpClient.Get(apiURL)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var result RatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("JSON parse error: %w", err)
	}

	return &result, resp.StatusCode, nil
}
