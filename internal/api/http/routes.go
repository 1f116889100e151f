package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/clothing-suggestor/internal/store"
	"github.com/i474232898/clothing-suggestor/internal/suggestor"
	"github.com/i474232898/clothing-suggestor/internal/wardrobe"
	"github.com/i474232898/clothing-suggestor/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *suggestor.Service) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/recommendation", func(c *fiber.Ctx) error {
		entry, err := service.Latest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no recommendation has been made yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load recommendation")
		}
		return c.JSON(entry)
	})

	v1.Post("/recommendation/run", func(c *fiber.Ctx) error {
		var q runQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		entry, err := service.Run(c.UserContext(), suggestor.RunOptions{DryRun: q.DryRun})
		if err != nil {
			return runError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	})

	v1.Post("/recommendation/evaluate", func(c *fiber.Ctx) error {
		var snap weather.Snapshot
		if err := c.BodyParser(&snap); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid snapshot body")
		}
		if err := validate.Struct(snap); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		eval, err := service.Evaluate(snap)
		if err != nil {
			return runError(err)
		}
		return c.JSON(eval)
	})
}

// runQuery holds query parameters for the run endpoint.
type runQuery struct {
	DryRun bool
}

func (q *runQuery) bind(c *fiber.Ctx) error {
	switch c.Query("dry_run") {
	case "", "false", "0":
		q.DryRun = false
	case "true", "1":
		q.DryRun = true
	default:
		return errors.New("dry_run must be true or false")
	}
	return nil
}

// runError maps service errors onto HTTP status codes.
func runError(err error) error {
	switch {
	case errors.Is(err, wardrobe.ErrIndexOutOfRange),
		errors.Is(err, wardrobe.ErrMissingValue),
		errors.Is(err, wardrobe.ErrUnhandledBand):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, suggestor.ErrFetch):
		return fiber.NewError(fiber.StatusBadGateway, "failed to fetch weather data")
	case errors.Is(err, suggestor.ErrSend):
		return fiber.NewError(fiber.StatusBadGateway, "failed to send recommendation")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute recommendation")
	}
}
