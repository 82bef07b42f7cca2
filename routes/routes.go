package routes

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Dosada05/game-roster/docs"
	"github.com/Dosada05/game-roster/handlers"
	"github.com/Dosada05/game-roster/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Game      *handlers.GameHandler
	Admin     *handlers.AdminHandler
	Dashboard *handlers.DashboardHandler
	WebSocket *handlers.WebSocketHandler
	Health    *handlers.HealthHandler
}

type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Tokens         middleware.TokenParser
}

func NewRouter(opts Options, h Handlers) *chi.Mux {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	SetupRoutes(router, opts.Tokens, h)
	return router
}

func SetupRoutes(router chi.Router, tokens middleware.TokenParser, h Handlers) {
	// Публичные маршруты
	router.Post("/login", h.Auth.Login)
	router.Get("/healthz", h.Health.Healthz)
	router.Get("/ws/games/{gameID}", h.WebSocket.ServeWs)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Всё остальное только с токеном
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(tokens))
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Get("/user", h.Auth.User)
		r.Get("/protected_example", h.Auth.ProtectedExample)

		r.Post("/new_player", h.Player.NewPlayer)
		r.Post("/new_game", h.Game.NewGame)
		r.Post("/add_player_to_game", h.Game.AddPlayerToGame)

		r.Route("/games/{gameID}", func(r chi.Router) {
			r.Get("/", h.Game.GetGame)
			r.Post("/logo", h.Game.UploadGameLogo)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", h.Dashboard.Stats)

			r.Route("/players", func(r chi.Router) {
				r.Get("/", h.Admin.ListPlayers)
				r.Post("/", h.Admin.CreatePlayer)
				r.Patch("/{id}", h.Admin.UpdatePlayer)
				r.Delete("/{id}", h.Admin.DeletePlayer)
			})

			r.Route("/games", func(r chi.Router) {
				r.Get("/", h.Admin.ListGames)
				r.Post("/", h.Admin.CreateGame)
				r.Patch("/{id}", h.Admin.UpdateGame)
				r.Delete("/{id}", h.Admin.DeleteGame)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"the requested resource could not be found"}` + "\n"))
	})
}
