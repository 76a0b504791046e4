package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"naira-rates/internal/models"
	"naira-rates/internal/services"
)

var pageTemplate = template.Must(template.New("rates").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>NGN to USD Exchange Rate</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; }
        .container { background-color: #f5f5f5; border-radius: 5px; padding: 20px; }
        .rate { font-size: 24px; font-weight: bold; color: #2c3e50; margin: 10px 0; }
        .info { color: #7f8c8d; font-size: 14px; }
        .error { color: #e74c3c; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Current Exchange Rates</h1>
        {{if .Error}}
            <p class="error">{{.Error}}</p>
        {{else}}
            <p class="rate">1 NGN = {{printf "%.6f" .Rate.NGNToUSD}} USD</p>
            <p class="rate">1 USD = {{printf "%.2f" .Rate.USDToNGN}} NGN</p>
            <p class="info">Last Updated: {{.Rate.LastUpdated}}</p>
            <p class="info">Current Time: {{.Rate.CurrentTime}}</p>
        {{end}}
    </div>
</body>
</html>
`))

type pageData struct {
	Error string
	Rate  *models.Rate
}

type RateHandler struct {
	service *services.RateService
}

func NewRateHandler(service *services.RateService) *RateHandler {
	return &RateHandler{service: service}
}

// GetRatePage renders the HTML page. The response is always 200; a failed
// fetch shows up as the error block in the body, not as an HTTP error.
func (h *RateHandler) GetRatePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{}

	rate, err := h.service.GetRate()
	if err != nil {
		log.Printf("❌ Rate fetch error: %v", err)
		data.Error = err.Error()
	} else {
		data.Rate = rate
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("Template render error: %v", err)
	}
}

// GetRate is the JSON variant of the same fetch, same 200-always contract.
func (h *RateHandler) GetRate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rate, err := h.service.GetRate()
	if err != nil {
		log.Printf("❌ Rate fetch error: %v", err)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	json.NewEncoder(w).Encode(rate)
}
