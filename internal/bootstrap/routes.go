package bootstrap

import (
	"net/http"

	"naira-rates/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func InitRoutes(rateHandler *handlers.RateHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", rateHandler.GetRatePage)
	r.Get("/api/rate", rateHandler.GetRate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})

	return r
}
