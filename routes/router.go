package routes

import (
	"github.com/sananasgarov/NummixAzBackend/handlers"
	"github.com/sananasgarov/NummixAzBackend/middleware"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/register", handlers.Register)
	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/check-email", handlers.CheckEmail)
	api.Get("/auth/verify", middleware.RequireAuth(), handlers.VerifyToken)

	// Password reset
	api.Post("/auth/forgot-password", handlers.ForgotPassword)
	api.Post("/auth/verify-reset-code", handlers.VerifyResetCode)
	api.Post("/auth/reset-password", handlers.ResetPassword)

	// Admin roster — no auth gate, see DESIGN.md
	api.Get("/admins", handlers.ListAdmins)
	api.Delete("/admins/:id", handlers.DeleteAdmin)

	// Contact relay
	api.Post("/contact", handlers.Contact)

	// Team: public read, authenticated write
	app.Get("/team", handlers.ListTeamMembers)
	app.Post("/team", middleware.RequireAuth(), handlers.CreateTeamMember)
	app.Put("/team/:id", middleware.RequireAuth(), handlers.UpdateTeamMember)
	app.Delete("/team/:id", middleware.RequireAuth(), handlers.DeleteTeamMember)

	// Blogs: public read, authenticated write
	app.Get("/blogs", handlers.ListBlogPosts)
	app.Get("/blogs/:id", handlers.GetBlogPostByID)
	app.Post("/blogs", middleware.RequireAuth(), handlers.CreateBlogPost)
	app.Put("/blogs/:id", middleware.RequireAuth(), handlers.UpdateBlogPost)
	app.Delete("/blogs/:id", middleware.RequireAuth(), handlers.DeleteBlogPost)
}
