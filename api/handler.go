package api

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cpu-scheduler-visualizer/config"
	"cpu-scheduler-visualizer/internal/core"
	"cpu-scheduler-visualizer/internal/requests"
	"cpu-scheduler-visualizer/internal/roster"
	"cpu-scheduler-visualizer/internal/schedulers"
	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type RosterHandler interface {
	ListProcesses(ctx *fiber.Ctx) error
	AddProcess(ctx *fiber.Ctx) error
	UpdateProcess(ctx *fiber.Ctx) error
	DeleteProcess(ctx *fiber.Ctx) error
	ClearProcesses(ctx *fiber.Ctx) error
	SimulateRoster(ctx *fiber.Ctx) error
}

var (
	_ SchedulerHandler = (*SchedulerHandlerImpl)(nil)
	_ RosterHandler    = (*SchedulerHandlerImpl)(nil)
)

// SchedulerHandlerImpl serves stateless simulations and the server-owned roster.
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger

	mu     sync.Mutex
	roster *roster.Roster
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		logger: logger.With("component", "api"),
		roster: roster.New(),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.respondError(ctx, bodyError(err))
	}
	specs, err := s.specs(request)
	if err != nil {
		return s.respondError(ctx, err)
	}
	quantum, err := s.quantum(request.TimeQuantum)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.Info("running all algorithms", "request_id", requestIDFrom(ctx), "processes", len(specs), "time_quantum", quantum)
	outcomes, err := schedulers.ScheduleAll(ctx.UserContext(), specs, quantum)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateCompareResponse(outcomes, quantum))
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return s.respondError(ctx, bodyError(err))
	}
	specs, err := s.specs(request)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return s.run(ctx, algorithm, specs, request.TimeQuantum)
}

// run simulates specs and writes the schedule response.
func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm schedulers.Algorithm, specs []core.ProcessSpec, requestedQuantum *int) error {
	quantum := 0
	if algorithm == schedulers.RoundRobin {
		var err error
		if quantum, err = s.quantum(requestedQuantum); err != nil {
			return s.respondError(ctx, err)
		}
	}

	s.logger.Info("running algorithm",
		"request_id", requestIDFrom(ctx),
		"algorithm", algorithm.String(),
		"processes", len(specs),
		"time_quantum", quantum)

	result, err := schedulers.Schedule(algorithm, specs, quantum)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(schedulers.GenerateResponse(algorithm, quantum, result))
}

func (s *SchedulerHandlerImpl) specs(request requests.ScheduleRequests) ([]core.ProcessSpec, error) {
	if len(request.Jobs) > s.config.MaxProcesses {
		return nil, &requests.ValidationError{
			Field:  "processes",
			Reason: fmt.Sprintf("at most %d processes allowed, got %d", s.config.MaxProcesses, len(request.Jobs)),
		}
	}
	return request.Specs()
}

// quantum falls back to the configured value when the request leaves it unset.
func (s *SchedulerHandlerImpl) quantum(requested *int) (int, error) {
	return requests.ResolveQuantum(requested, s.config.RoundRobinTimeQuantum)
}

var errInvalidBody = errors.New("invalid request format")

// bodyError keeps field errors raised while decoding and hides everything else
// behind errInvalidBody.
func bodyError(err error) error {
	if errors.Is(err, requests.ErrInvalidInput) {
		return err
	}
	return errInvalidBody
}
