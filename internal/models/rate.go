package models

type Rate struct {
	NGNToUSD    float64 `json:"ngn_to_usd"`
	USDToNGN    float64 `json:"usd_to_ngn"`
	LastUpdated string  `json:"last_updated"`
	CurrentTime string  `json:"current_time"`
}
