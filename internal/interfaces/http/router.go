package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fichaje-api/internal/application/auth"
	"github.com/jhoicas/fichaje-api/internal/application/clock"
	"github.com/jhoicas/fichaje-api/internal/application/directory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClockUC        *clock.ClockUseCase
	DirectoryUC    *directory.DirectoryUseCase
	PasswordMinLen int
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: el login ocurre antes de tener token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.PasswordMinLen)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/setup-password", authHandler.SetupPassword)
	authGroup.Post("/logout", authHandler.Logout)

	// Directorio (público: alimenta los selectores de la pantalla de login)
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)
	api.Get("/departments", directoryHandler.ListDepartments)
	api.Get("/users", directoryHandler.ListUsers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Fichajes (protegido; la identidad sale del token)
	clockGroup := protected.Group("/clock")
	clockHandler := NewClockHandler(deps.ClockUC)
	clockGroup.Get("/today", clockHandler.Today)
	clockGroup.Post("/events", clockHandler.RecordEvent)
	clockGroup.Get("/today/receipt", clockHandler.DayReceipt)
}
