package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"naira-rates/internal/models"
	"naira-rates/internal/services"
)

func newTestServer(t *testing.T, upstreamBody string, closeUpstream bool) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(upstreamBody))
	}))
	if closeUpstream {
		upstream.Close()
	} else {
		t.Cleanup(upstream.Close)
	}

	handler := NewRateHandler(services.NewRateService(nil, upstream.URL))

	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.GetRatePage)
	mux.HandleFunc("/api/rate", handler.GetRate)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("HTTP request failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

const successBody = `{"result":"success","rates":{"NGN":1500.0},"time_last_update_utc":"Fri, 29 Aug 2026 00:02:31 +0000"}`

func TestRatePage_Success(t *testing.T) {
	srv := newTestServer(t, successBody, false)

	status, body := get(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if !strings.Contains(body, "1 NGN = 0.000667 USD") {
		t.Errorf("page missing NGN→USD line:\n%s", body)
	}
	if !strings.Contains(body, "1 USD = 1500.00 NGN") {
		t.Errorf("page missing USD→NGN line:\n%s", body)
	}
	if !strings.Contains(body, "Fri, 29 Aug 2026 00:02:31 +0000") {
		t.Errorf("page missing upstream update time")
	}
}

func TestRatePage_FetchFailureStill200(t *testing.T) {
	srv := newTestServer(t, "", true)

	status, body := get(t, srv.URL+"/")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when the fetch fails", status)
	}
	if !strings.Contains(body, "Request failed: ") {
		t.Errorf("page should carry the failure message:\n%s", body)
	}
	if strings.Contains(body, "1 NGN =") {
		t.Errorf("failed fetch should not render rate lines")
	}
}

func TestRateJSON_Success(t *testing.T) {
	srv := newTestServer(t, successBody, false)

	status, body := get(t, srv.URL+"/api/rate")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var rate models.Rate
	if err := json.Unmarshal([]byte(body), &rate); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if rate.USDToNGN != 1500.0 {
		t.Errorf("usd_to_ngn = %v, want 1500.0", rate.USDToNGN)
	}
}

func TestRateJSON_FetchFailure(t *testing.T) {
	srv := newTestServer(t, "", true)

	status, body := get(t, srv.URL+"/api/rate")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var payload map[string]string
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}
	if !strings.HasPrefix(payload["error"], "Request failed: ") {
		t.Errorf("error = %q, want \"Request failed: \" prefix", payload["error"])
	}
}
