package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abrar2030/FinovaBank/internal/domain"
)

// ActorHeader carries the identity performing a mutation.
const ActorHeader = "X-Actor"

// NewRouter wires the account routes onto a chi router.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))
	r.Use(actorFromHeader)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/", h.CreateAccount)
		r.Get("/", h.ListAccounts)
		r.Get("/number/{accountNumber}", h.GetAccountByNumber)
		r.Get("/customer/{customerId}", h.ListCustomerAccounts)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetAccount)
			r.Put("/", h.UpdateAccount)
			r.Delete("/", h.CloseAccount)
			r.Get("/balance", h.GetBalance)
			r.Get("/available-balance", h.GetAvailableBalance)
			r.Post("/transactions", h.ApplyTransaction)
			r.Post("/validate-transaction", h.ValidateTransaction)
			r.Patch("/freeze", h.FreezeAccount)
			r.Patch("/unfreeze", h.UnfreezeAccount)
			r.Patch("/status", h.UpdateStatus)
		})
	})

	return r
}

// actorFromHeader stores the X-Actor header value in the request context.
func actorFromHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor := r.Header.Get(ActorHeader); actor != "" {
			r = r.WithContext(domain.WithActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
