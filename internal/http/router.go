package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"voting-poll/internal/domain/poll"
	"voting-poll/internal/domain/user"
	jwtpkg "voting-poll/internal/platform/jwt"
	"voting-poll/internal/worker"
)

// Pinger reports database readiness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Deps struct {
	Users    *user.Service
	Registry *poll.Registry
	JWT      *jwtpkg.Manager
	TokenTTL time.Duration
	Events   chan<- worker.Event
	// DB is nil when the service runs in memory.
	DB                 Pinger
	ProposalRatePerMin int
}

type Handler struct {
	userSvc  *user.Service
	registry *poll.Registry
	jwtMgr   *jwtpkg.Manager
	tokenTTL time.Duration
	events   chan<- worker.Event
	db       Pinger
}

func NewRouter(d Deps) http.Handler {
	h := &Handler{
		userSvc:  d.Users,
		registry: d.Registry,
		jwtMgr:   d.JWT,
		tokenTTL: d.TokenTTL,
		events:   d.Events,
		db:       d.DB,
	}
	if h.tokenTTL <= 0 {
		h.tokenTTL = 24 * time.Hour
	}
	perMin := d.ProposalRatePerMin
	if perMin <= 0 {
		perMin = 10
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Get("/polls", h.handleListPolls)
		r.Get("/polls/count", h.handlePollAmount)
		r.Get("/polls/{id}", h.handleGetPoll)
		r.Get("/polls/{id}/proposals", h.handleProposalsFromPoll)
		r.Get("/proposals/{id}", h.handleGetProposal)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(d.JWT))

			r.Get("/me", h.handleMe)
			r.Post("/polls", h.handleCreatePoll)
			r.With(RateLimit(rate.Every(time.Minute/time.Duration(perMin)), perMin)).
				Post("/polls/{id}/proposals", h.handleCreateProposal)
			r.Post("/polls/{id}/proposals/{proposalID}/activate", h.handleActivateProposal)

			r.Group(func(r chi.Router) {
				r.Use(RequireRole(user.RoleAdmin))
				r.Get("/users", h.handleListUsers)
				r.Patch("/users/{id}/role", h.handleUpdateUserRole)
				r.Patch("/users/{id}/deactivate", h.handleDeactivateUser)
			})
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "storage": "memory"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
