package http

import (
	"net/http"

	"github.com/collab-notes-api/internal/application/attachment"
	"github.com/collab-notes-api/internal/application/candidate"
	"github.com/collab-notes-api/internal/application/note"
	"github.com/collab-notes-api/internal/application/notification"
	"github.com/collab-notes-api/internal/application/session"
	"github.com/collab-notes-api/internal/application/status"
	"github.com/collab-notes-api/internal/application/user"
	"github.com/collab-notes-api/internal/config"
	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/transport/http/handler"
	appmiddleware "github.com/collab-notes-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	userSvc := user.NewService(user.ServiceDeps{
		UserRepo:        deps.UserRepo,
		SessionRepo:     deps.SessionRepo,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: cfg.RefreshTokenDur,
	})
	sessionSvc := session.NewService(session.ServiceDeps{
		SessionRepo:     deps.SessionRepo,
		UserRepo:        deps.UserRepo,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: cfg.RefreshTokenDur,
	})
	candidateSvc := candidate.NewService(deps.CandidateRepo, deps.StatusRepo)
	noteSvc := note.NewService(note.ServiceDeps{
		NoteRepo:      deps.NoteRepo,
		CandidateRepo: deps.CandidateRepo,
		UserRepo:      deps.UserRepo,
		Bus:           deps.Bus,
	})
	notifSvc := notification.NewService(deps.NotificationRepo)
	attachmentSvc := attachment.NewService(deps.S3Store, deps.AttachmentRepo, deps.CandidateRepo)
	statusSvc := status.NewService(deps.StatusRepo)

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(userSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	candidateH := handler.NewCandidateHandler(candidateSvc)
	noteH := handler.NewNoteHandler(noteSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	attachmentH := handler.NewAttachmentHandler(attachmentSvc)
	statusH := handler.NewStatusHandler(statusSvc)

	r.Route("/v1", func(r chi.Router) {
		// Public routes (no auth)
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.Post("/sessions/refresh", sessionH.Refresh)
		r.With(sensitiveRL.Limit).Post("/users", userH.Register)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			r.Get("/users", userH.Directory)
			r.Get("/users/{id}", userH.Get)
			r.Put("/users/{id}", userH.Update)
			r.Put("/users/{id}/password", userH.ChangePassword)
			r.Get("/roles", handler.ListRoles)

			r.Get("/candidates", candidateH.List)
			r.Post("/candidates", candidateH.Create)
			r.Get("/candidates/{id}", candidateH.Get)
			r.Put("/candidates/{id}", candidateH.Update)

			r.Post("/candidates/{id}/notes", noteH.Create)
			r.Get("/candidates/{id}/notes", noteH.ListByCandidate)

			r.Get("/notifications", notifH.ListUnread)
			r.Put("/notifications/{id}/read", notifH.MarkAsRead)

			r.Post("/candidates/{id}/attachments", attachmentH.Upload)
			r.Get("/candidates/{id}/attachments", attachmentH.ListByCandidate)
			r.Get("/attachments/{id}", attachmentH.Download)
			r.Delete("/attachments/{id}", attachmentH.Delete)

			r.Get("/statuses", statusH.List)
			r.Get("/statuses/{id}", statusH.Get)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

				r.Delete("/users/{id}", userH.Delete)
				r.Delete("/candidates/{id}", candidateH.Delete)

				r.Post("/statuses", statusH.Create)
				r.Put("/statuses/{id}", statusH.Update)
				r.Delete("/statuses/{id}", statusH.Delete)
			})
		})
	})

	return r
}
