package main

import (
	"fmt"

	"naira-rates/internal/config"
	"naira-rates/internal/services"
)

// One-shot CLI: fetch the current NGN/USD rate and print it. Errors are
// reported as text, and the exit code stays 0 either way.
func main() {
	fmt.Println("Fetching current NGN to USD exchange rate...")
	fmt.Println()

	cfg := config.Load()
	rateService := services.NewRateService(nil, cfg.RatesAPIURL)

	rate, err := rateService.GetRate()
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}

	fmt.Println("Current Exchange Rates:")
	fmt.Printf("1 NGN = %.6f USD\n", rate.NGNToUSD)
	fmt.Printf("1 USD = %.2f NGN\n", rate.USDToNGN)
	fmt.Println()
	fmt.Printf("Last Updated: %s\n", rate.LastUpdated)
	fmt.Printf("Current Time: %s\n", rate.CurrentTime)
}
