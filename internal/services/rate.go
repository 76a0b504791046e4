package services

import (
	"net/http"
	"time"

	"naira-rates/internal/api"
	"naira-rates/internal/kafka"
	"naira-rates/internal/models"
)

const rateKey = "rate:ngn_usd"

type RateService struct {
	producer kafka.ProducerInterface
	apiURL   string
}

// NewRateService wires the fetcher to an optional producer. A nil producer is
// fine (the CLI runs without one); fresh rates are then simply not published.
func NewRateService(producer kafka.ProducerInterface, apiURL string) *RateService {
	return &RateService{
		producer: producer,
		apiURL:   apiURL,
	}
}

// GetRate fetches the latest USD rates upstream and normalizes them into the
// NGN/USD pair. Every call re-fetches; failures come back as a *FetchError
// whose Message is ready to show the user.
func (s *RateService) GetRate() (*models.Rate, error) {
	resp, status, err := api.FetchLatestRates(s.apiURL)
	if err != nil {
		if status == 0 {
			return nil, transportError(err)
		}
		return nil, unexpectedError(err)
	}

	if status != http.StatusOK || resp.Result != "success" {
		return nil, upstreamError(resp.ErrorType)
	}

	// A zero rate is as unusable as a missing one.
	ngnRate, ok := resp.Rates["NGN"]
	if !ok || ngnRate == 0 {
		return nil, missingDataError()
	}

	rate := &models.Rate{
		NGNToUSD:    1 / ngnRate,
		USDToNGN:    ngnRate,
		LastUpdated: resp.TimeLastUpdateUTC,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
	}

	if s.producer != nil {
		s.producer.PublishObjectAsync([]byte(rateKey), rate)
	}

	return rate, nil
}
