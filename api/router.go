package api

import (
	"errors"
	"log/slog"
	"time"

	"cpu-scheduler-visualizer/internal/requests"
	"cpu-scheduler-visualizer/internal/responses"
	"cpu-scheduler-visualizer/internal/roster"
	"cpu-scheduler-visualizer/internal/schedulers"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// NewApp wires the v1 routes onto a fresh fiber app.
func NewApp(handler *SchedulerHandlerImpl, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler-visualizer",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(requestContext(logger))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)

		v1.Get("/processes", handler.ListProcesses)
		v1.Post("/processes", handler.AddProcess)
		v1.Delete("/processes", handler.ClearProcesses)
		v1.Post("/processes/simulate", handler.SimulateRoster)
		v1.Put("/processes/:id", handler.UpdateProcess)
		v1.Delete("/processes/:id", handler.DeleteProcess)
	}

	return app
}

func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

func requestIDFrom(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDKey).(string)
	return id
}

func requestContext(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := requestID()
		ctx.Locals(requestIDKey, id)
		ctx.Set("X-Request-ID", id)

		start := time.Now()
		err := ctx.Next()
		logger.Info("request",
			"request_id", id,
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
			"duration", time.Since(start))
		return err
	}
}

// errorHandler renders errors that escape a handler, such as unknown routes.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return ctx.Status(code).JSON(responses.ErrorResponse{RequestID: requestIDFrom(ctx), Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody),
		errors.Is(err, requests.ErrInvalidInput),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrInvalidBurst),
		errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return fiber.StatusBadRequest
	case errors.Is(err, roster.ErrProcessNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, schedulers.ErrEmptyRoster):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func (s *SchedulerHandlerImpl) respondError(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	resp := responses.ErrorResponse{RequestID: requestIDFrom(ctx), Error: err.Error()}
	var verr *requests.ValidationError
	if errors.As(err, &verr) {
		resp.Field = verr.Field
	}

	if status >= fiber.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", resp.RequestID, "error", err)
	} else {
		s.logger.Warn("request rejected", "request_id", resp.RequestID, "status", status, "error", err)
	}
	return ctx.Status(status).JSON(resp)
}
