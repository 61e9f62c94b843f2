package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmarques/centavo/internal/http/account"
	"github.com/dmarques/centavo/internal/http/category"
	"github.com/dmarques/centavo/internal/http/importcsv"
	"github.com/dmarques/centavo/internal/http/summary"
	"github.com/dmarques/centavo/internal/http/transaction"
)

func New(
	accountsV1 *account.Handler,
	categoriesV1 *category.Handler,
	transactionsV1 *transaction.Handler,
	importV1 *importcsv.Handler,
	summaryV1 *summary.Handler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/summary", summaryV1.Routes)
	})

	return router
}
