package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Onboarding-api/internal/application/auth"
	"github.com/jhoicas/Onboarding-api/internal/application/onboarding"
	"github.com/jhoicas/Onboarding-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ConsultantUC *onboarding.ConsultantUseCase
	DocumentUC   *onboarding.DocumentUseCase
	ActivityUC   *onboarding.ActivityUseCase
	ProgressUC   *onboarding.ProgressUseCase
	OutreachUC   *onboarding.OutreachUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público; alta de usuarios solo para admin
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token de admin o recruiter)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleRecruiter))

	summaryHandler := NewSummaryHandler(deps.ProgressUC)
	protected.Get("/summary", summaryHandler.Get)

	consultantHandler := NewConsultantHandler(deps.ConsultantUC, deps.ProgressUC, deps.ActivityUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	outreachHandler := NewOutreachHandler(deps.OutreachUC)

	consultants := protected.Group("/consultants")
	consultants.Get("/", consultantHandler.List)
	consultants.Post("/", consultantHandler.Create)
	consultants.Get("/:id", consultantHandler.Get)
	consultants.Put("/:id/status", consultantHandler.UpdateStatus)
	consultants.Get("/:id/activities", consultantHandler.Activities)

	consultants.Get("/:id/documents", documentHandler.List)
	consultants.Post("/:id/documents", documentHandler.Create)
	consultants.Post("/:id/standard-documents", documentHandler.AddStandard)

	consultants.Post("/:id/generate-documents", outreachHandler.GenerateDocuments)
	consultants.Post("/:id/send-offer", outreachHandler.SendOffer)
	consultants.Post("/:id/send-reminder", outreachHandler.SendReminder)

	protected.Put("/documents/:id/status", documentHandler.UpdateStatus)
}
