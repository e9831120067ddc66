package server

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"danawa-backend/internal/database"
	"danawa-backend/internal/handlers"
	"danawa-backend/internal/middleware"
	"danawa-backend/internal/spa"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Deps struct {
	Store    *database.Store
	Logger   *slog.Logger
	Resolver *spa.Resolver
	// Recorder defaults to a handlers.LogRecorder on Logger.
	Recorder handlers.ContactRecorder
	// AccessLog receives one line per request; nil disables it.
	AccessLog io.Writer
	Now       func() time.Time
}

// New assembles the application: API under /api, SPA resolution for every
// other GET.
func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "다나와 행신센터 API",
		ErrorHandler: errorHandler(d.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if d.AccessLog != nil {
		app.Use(middleware.AccessLog(d.AccessLog))
	}
	app.Use(middleware.CORS())

	recorder := d.Recorder
	if recorder == nil {
		recorder = handlers.LogRecorder{Logger: d.Logger}
	}

	contactHandler := handlers.NewContactHandler(recorder)
	portfolioHandler := handlers.NewPortfolioHandler(d.Store.Portfolio)
	reviewHandler := handlers.NewReviewHandler(d.Store.Reviews, d.Now)
	serviceHandler := handlers.NewServiceHandler(d.Store.Services)

	api := app.Group("/api")
	{
		// Contact
		api.Post("/contact", contactHandler.SubmitContact)

		// Portfolio
		api.Get("/portfolio", portfolioHandler.GetPortfolioItems)
		api.Get("/portfolio/:id", portfolioHandler.GetPortfolioItemByID)

		// Reviews
		api.Get("/reviews", reviewHandler.GetReviews)
		api.Post("/reviews", reviewHandler.CreateReview)

		// Services
		api.Get("/services", serviceHandler.GetServices)
		api.Get("/services/:id", serviceHandler.GetServiceByID)
	}

	app.Get("/*", spaHandler(d.Resolver))

	return app
}

func spaHandler(r *spa.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := r.Resolve(c.Path())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, res.ContentType)
		return c.Status(res.Status).Send(res.Body)
	}
}

// errorHandler renders errors that escaped a handler as {"error": msg}.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Any("error", err),
			)
		}
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
