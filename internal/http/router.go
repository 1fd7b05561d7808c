package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fittrackhq/fittrack/internal/service"
	"github.com/fittrackhq/fittrack/internal/session"
	"github.com/fittrackhq/fittrack/internal/store"
	"github.com/fittrackhq/fittrack/pkg/httpx"
	"github.com/fittrackhq/fittrack/pkg/slogx"

	_ "github.com/fittrackhq/fittrack/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookies      CookieConfig

	store    store.Store
	sessions session.Store

	AuthService     *service.AuthService
	WorkoutService  *service.WorkoutService
	GoalService     *service.GoalService
	ExerciseService *service.ExerciseService
	StatsService    *service.StatsService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	sessions session.Store,
	cookies CookieConfig,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		cookies:      cookies,
		store:        st,
		sessions:     sessions,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerWorkouts()
	r.registerGoals()
	r.registerLibrary()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FitTrack API
//	@version		0.1.0
//	@description	Fitness tracking service: workout logging, goal tracking, and an exercise
//	@description	library, behind cookie-session authentication.
//	@description
//	@description				Sessions are opaque HttpOnly cookies minted at register/login and destroyed at logout.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						fittrack_session
//	@description				Opaque session token set by the register and login endpoints.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Cookies:     r.cookies,
	}

	// Credential endpoints are guest-only and strictly rate limited by
	// IP + submitted username to slow brute force and bulk account creation.
	r.Mux.Handle("POST /v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			RequireGuest(r.sessions),
			httpx.RateLimitByIPAndBodyField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			RequireGuest(r.sessions),
			httpx.RateLimitByIPAndBodyField(httpx.StrictLimit, "username"),
		),
	)

	// Logout works with or without a live session.
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/profile",
		httpx.Chain(http.HandlerFunc(h.HandleGetProfile),
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /v1/auth/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerWorkouts() {
	h := &WorkoutsHandler{WorkoutService: r.WorkoutService}

	reads := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	writes := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/workouts", reads(h.HandleList))
	r.Mux.Handle("GET /v1/workouts/recent", reads(h.HandleRecent))
	r.Mux.Handle("GET /v1/workouts/{id}", reads(h.HandleGet))
	r.Mux.Handle("POST /v1/workouts", writes(h.HandleCreate))
	r.Mux.Handle("PUT /v1/workouts/{id}", writes(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/workouts/{id}", writes(h.HandleDelete))
	r.Mux.Handle("POST /v1/workouts/{id}/exercises", writes(h.HandleAddExercise))
	r.Mux.Handle("DELETE /v1/workouts/{id}/exercises/{entryID}", writes(h.HandleRemoveExercise))
}

func (r *Router) registerGoals() {
	h := &GoalsHandler{GoalService: r.GoalService}

	reads := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	writes := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /v1/goals", reads(h.HandleList))
	r.Mux.Handle("GET /v1/goals/{id}", reads(h.HandleGet))
	r.Mux.Handle("POST /v1/goals", writes(h.HandleCreate))
	r.Mux.Handle("PUT /v1/goals/{id}", writes(h.HandleUpdate))
	r.Mux.Handle("POST /v1/goals/{id}/progress", writes(h.HandleProgress))
	r.Mux.Handle("DELETE /v1/goals/{id}", writes(h.HandleDelete))
}

func (r *Router) registerLibrary() {
	h := &LibraryHandler{
		ExerciseService: r.ExerciseService,
		StatsService:    r.StatsService,
	}

	// The exercise library is browsable without a session.
	public := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.RateLimitByIP(httpx.PublicLimit),
		)
	}

	r.Mux.Handle("GET /v1/exercises", public(h.HandleListExercises))
	r.Mux.Handle("GET /v1/exercises/{id}", public(h.HandleGetExercise))
	r.Mux.Handle("GET /v1/exercises/{id}/calories", public(h.HandleCalories))
	r.Mux.Handle("GET /v1/categories", public(h.HandleCategories))
	r.Mux.Handle("GET /v1/search", public(h.HandleSearch))

	r.Mux.Handle("GET /v1/stats",
		httpx.Chain(http.HandlerFunc(h.HandleStats),
			RequireSession(r.sessions),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
