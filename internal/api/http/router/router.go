package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/studentportal-server/internal/api/http/handler"
	"github.com/dtroode/studentportal-server/internal/api/http/middleware"
	"github.com/dtroode/studentportal-server/internal/api/http/response"
	"github.com/dtroode/studentportal-server/internal/logger"
	"github.com/dtroode/studentportal-server/internal/metrics"
	"github.com/dtroode/studentportal-server/internal/model"
)

// Router wires the portal's HTTP routes and middleware.
type Router struct {
	deviceService  middleware.DeviceService
	sessions       middleware.SessionOpener
	accounts       handler.AccountLister
	results        handler.ResultsService
	metrics        *metrics.Metrics
	contextManager model.ContextManager
	secureCookie   bool
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	deviceService middleware.DeviceService,
	sessions middleware.SessionOpener,
	accounts handler.AccountLister,
	results handler.ResultsService,
	metrics *metrics.Metrics,
	contextManager model.ContextManager,
	secureCookie bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		deviceService:  deviceService,
		sessions:       sessions,
		accounts:       accounts,
		results:        results,
		metrics:        metrics,
		contextManager: contextManager,
		secureCookie:   secureCookie,
		logger:         logger,
	}
}

// Register builds the handler tree.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	requestMetrics := middleware.NewMetrics(r.metrics)
	device := middleware.NewDevice(r.deviceService, r.contextManager, r.secureCookie, r.logger)
	session := middleware.NewSession(r.sessions, r.contextManager, r.logger)
	guard := middleware.NewGuard(r.contextManager)

	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)
	mux.Use(logging.Handle)
	mux.Use(requestMetrics.Handle)

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, "ok")
	})
	mux.Method(http.MethodGet, "/metrics", r.metrics.Handler())

	mux.Route("/api", func(api chi.Router) {
		api.Use(device.Handle)
		api.Use(session.Handle)

		r.registerAuthRoutes(api)
		r.registerResultRoutes(api, guard)
		r.registerUserRoutes(api, guard)
	})

	return mux
}

func (r *Router) registerAuthRoutes(api chi.Router) {
	auth := handler.NewAuth(r.contextManager, r.metrics, r.logger)

	api.Get("/session", auth.Session)
	api.Route("/auth", func(ar chi.Router) {
		ar.Post("/signup", auth.Signup)
		ar.Post("/login", auth.Login)
		ar.Post("/external", auth.External)
		ar.Post("/logout", auth.Logout)
	})
}

func (r *Router) registerResultRoutes(api chi.Router, guard *middleware.Guard) {
	results := handler.NewResults(r.results, r.contextManager, r.logger)

	api.With(guard.RequireSession).Get("/session/results", results.Mine)

	api.Route("/results", func(rr chi.Router) {
		rr.Group(func(authed chi.Router) {
			authed.Use(guard.RequireSession)
			authed.Get("/{rollNo}", results.ByRollNo)
		})
		rr.Group(func(admin chi.Router) {
			admin.Use(guard.RequireAdmin)
			admin.Get("/", results.All)
			admin.Get("/export", results.Export)
		})
	})
}

func (r *Router) registerUserRoutes(api chi.Router, guard *middleware.Guard) {
	users := handler.NewUsers(r.accounts, r.contextManager, r.logger)

	api.Route("/users", func(ur chi.Router) {
		ur.Use(guard.RequireAdmin)
		ur.Get("/", users.List)
		ur.Put("/{email}/password", users.ChangePassword)
	})
}
