package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	custommiddleware "github.com/rpanganiban/diskwento-system/internal/middleware"
)

// SetupRouter wires the HTTP routes and middleware of the service.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.LoggingMiddleware(h.logger))
	r.Use(custommiddleware.MetricsMiddleware)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})

	r.Route("/api/calculate", func(r chi.Router) {
		r.Post("/dining", h.CalculateDining)
		r.Post("/takeout", h.CalculateTakeout)
		r.Post("/medicine", h.CalculateMedicine)
		r.Post("/grocery", h.CalculateGrocery)
		r.Post("/grocery/cart", h.CalculateGroceryCart)
		r.Post("/utility", h.CalculateUtility)
		r.Post("/transport", h.CalculateTransport)
	})

	r.Post("/api/audit", h.Audit)
	r.Post("/api/service-charge/rate", h.ServiceChargeRate)

	r.Get("/api/cities", h.GetCities)
	r.Get("/api/cities/{id}", h.GetCity)
	r.Get("/api/flashcards", h.GetFlashcards)

	r.Route("/api/letters", func(r chi.Router) {
		r.Post("/complaint", h.ComplaintLetter)
		r.Post("/authorization", h.AuthorizationLetter)
	})

	r.Route("/api/assistant", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Post("/receipt", h.AnalyzeReceipt)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware.Middleware)

		r.Route("/api/history", func(r chi.Router) {
			r.Post("/", h.SaveCalculation)
			r.Get("/", h.GetHistory)
			r.Delete("/", h.ClearHistory)
			r.Delete("/{id}", h.DeleteHistoryEntry)
		})

		r.Route("/api/establishments", func(r chi.Router) {
			r.Post("/", h.CreateRating)
			r.Get("/", h.GetRatings)
			r.Delete("/{id}", h.DeleteRating)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
