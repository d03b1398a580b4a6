package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/workvibe-api/internal/application/activity"
	"github.com/jhoicas/workvibe-api/internal/application/auth"
	"github.com/jhoicas/workvibe-api/internal/application/feedback"
	"github.com/jhoicas/workvibe-api/internal/application/report"
	"github.com/jhoicas/workvibe-api/internal/application/stats"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	FeedbackUC *feedback.UseCase
	ReportUC   *report.UseCase
	StatsUC    *stats.UseCase
	ActivityUC *activity.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. El gate de autenticación es global:
// toda ruta fuera de la lista pública exige Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(AuthGate(deps.JWTSecret))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	// Feedback
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC, deps.ReportUC)
	app.Post("/feedback", feedbackHandler.Create)
	app.Get("/feedback", feedbackHandler.List)
	app.Put("/feedback/:id", feedbackHandler.Edit)
	app.Put("/feedback/:id/acknowledge", feedbackHandler.Acknowledge)
	app.Get("/feedback/:id/export-pdf", feedbackHandler.ExportPDF)
	app.Post("/feedback/request", feedbackHandler.Request)
	app.Put("/feedback_request/complete", feedbackHandler.CompleteRequest)

	// Panel del manager
	managerHandler := NewManagerHandler(deps.StatsUC, deps.FeedbackUC, deps.ActivityUC)
	app.Get("/manager/:id/employees", managerHandler.Employees)
	app.Get("/manager/:id/feedbacks/count", managerHandler.FeedbackCount)
	app.Get("/manager/:id/team/response-rate", managerHandler.TeamResponseRate)
	app.Get("/manager/:id/feedbacks/average-sentiment", managerHandler.AverageSentiment)
	app.Get("/manager/:id/feedbacks/pending-ack", managerHandler.PendingAck)
	app.Get("/manager/:id/feedbacks/sentiment-trends", managerHandler.SentimentTrends)
	app.Get("/manager/:id/feedbacks-given", managerHandler.FeedbacksGiven)
	app.Get("/manager/:id/activities", managerHandler.Activities)

	// Métricas del empleado
	employeeHandler := NewEmployeeHandler(deps.StatsUC, deps.FeedbackUC)
	app.Get("/employee/:id/feedbacks/count", employeeHandler.FeedbackCount)
	app.Get("/employee/:id/feedbacks/pending-ack", employeeHandler.PendingAck)
	app.Get("/employee/:id/feedbacks/ack-rate", employeeHandler.AckRate)
	app.Get("/employee/:id/feedbacks/average-sentiment", employeeHandler.AverageSentiment)
	app.Get("/employee/:name/feedbacks", employeeHandler.FeedbacksByName)

	// Bitácora
	activityHandler := NewActivityHandler(deps.ActivityUC)
	app.Post("/activity-log", activityHandler.Append)
}
