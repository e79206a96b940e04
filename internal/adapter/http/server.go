package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/courseflow/courseflow-backend/internal/usecase/client"
	"github.com/courseflow/courseflow-backend/internal/usecase/finance"
	"github.com/courseflow/courseflow-backend/internal/usecase/ledgerbook"
	"github.com/courseflow/courseflow-backend/internal/usecase/planner"
	"github.com/courseflow/courseflow-backend/internal/usecase/reservation"
)

// Server bundles the use case services behind the REST routes
type Server struct {
	logger   *slog.Logger
	validate *validator.Validate

	clients      *client.Service
	reservations *reservation.Service
	ledger       *ledgerbook.Service
	finance      *finance.Service
	planner      *planner.Service

	apiToken  string
	rateLimit int
}

// NewServer creates a Server wired to the given services
func NewServer(
	logger *slog.Logger,
	clients *client.Service,
	reservations *reservation.Service,
	ledger *ledgerbook.Service,
	financeSvc *finance.Service,
	plannerSvc *planner.Service,
	apiToken string,
	rateLimit int,
) *Server {
	return &Server{
		logger:       logger,
		validate:     validator.New(),
		clients:      clients,
		reservations: reservations,
		ledger:       ledger,
		finance:      financeSvc,
		planner:      plannerSvc,
		apiToken:     apiToken,
		rateLimit:    rateLimit,
	}
}

// Router builds the route tree. The health endpoint is open; everything
// under /api/v1 requires the bearer token.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))
	if s.rateLimit > 0 {
		r.Use(httprate.LimitByIP(s.rateLimit, time.Minute))
	}

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(s.apiToken))

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", s.handleCreateClient)
			r.Get("/", s.handleListClients)
			r.Get("/{id}", s.handleGetClient)
			r.Put("/{id}", s.handleUpdateClient)
			r.Delete("/{id}", s.handleDeleteClient)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", s.handleBookReservation)
			r.Get("/", s.handleListReservations)
			r.Get("/{id}", s.handleGetReservation)
			r.Put("/{id}", s.handleUpdateReservation)
			r.Delete("/{id}", s.handleDeleteReservation)
			r.Post("/{id}/status", s.handleChangeReservationStatus)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Post("/", s.handleRecordEntry)
			r.Get("/", s.handleListEntries)
			r.Delete("/{id}", s.handleDeleteEntry)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", s.handleCreateCategory)
			r.Get("/", s.handleListCategories)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/{side}", s.handleGetGoal)
			r.Put("/{side}", s.handleSetGoal)
		})

		r.Get("/finance/summary", s.handleFinanceSummary)

		r.Get("/planning/day", s.handlePlanningDay)
		r.Get("/planning/week", s.handlePlanningWeek)

		r.Post("/vat/convert", s.handleVATConvert)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
