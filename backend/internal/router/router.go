package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cosmiccommons/c3site/backend/internal/setup"
	"github.com/cosmiccommons/c3site/shared/csrf"
	mw "github.com/cosmiccommons/c3site/shared/middleware"
	"github.com/cosmiccommons/c3site/shared/middleware/metrics"
)

const requestTimeout = 30 * time.Second

// New builds the API router.
// Limiters attached with Use are shared by every route of that group.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config.Public
	h := deps.Handler
	authMw := mw.NewAuth(deps.Jwt)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", csrf.HeaderName},
		ExposedHeaders:   []string{csrf.HeaderName},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.SecureCookies))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/team", h.GetTeamMembers)
		v1.Get("/blog", h.GetBlogPosts)
		v1.Get("/blog/{slug}", h.GetBlogPost)
		v1.Get("/forum/categories", h.GetForumCategories)
		v1.Get("/forum/topics", h.GetForumTopics)
		v1.Get("/forum/topics/{topicId}", h.GetForumTopic)
		v1.Get("/forum/topics/{topicId}/replies", h.GetForumReplies)

		// contact form and registration: per IP
		v1.Group(func(g chi.Router) {
			g.Use(mw.RateLimit(deps.ContactLimiter, mw.GetIP))
			g.Post("/contact", h.CreateContact)
			g.Post("/users", h.RegisterUser)
		})

		// forum posting: per IP
		v1.Group(func(g chi.Router) {
			g.Use(mw.RateLimit(deps.PostLimiter, mw.GetIP))
			g.Post("/forum/topics", h.CreateForumTopic)
			g.Post("/forum/topics/{topicId}/replies", h.CreateForumReply)
		})

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(authMw.AdminOnly())
			admin.Use(mw.CSRFProtect(cfg.SecureCookies))

			admin.Get("/contacts", h.GetContacts)
			admin.Get("/users/{userId}", h.GetUser)

			admin.Post("/team", h.CreateTeamMember)
			admin.Patch("/team/{memberId}", h.UpdateTeamMember)
			admin.Delete("/team/{memberId}", h.DeleteTeamMember)

			admin.Get("/blog", h.AdminGetBlogPosts)
			admin.Post("/blog", h.CreateBlogPost)
			admin.Patch("/blog/{postId}", h.UpdateBlogPost)
			admin.Delete("/blog/{postId}", h.DeleteBlogPost)

			admin.Post("/forum/categories", h.CreateForumCategory)
			admin.Delete("/forum/categories/{categoryId}", h.DeactivateForumCategory)
			admin.Patch("/forum/topics/{topicId}", h.UpdateForumTopic)
		})
	})

	return r
}
