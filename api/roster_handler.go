package api

import (
	"fmt"

	"cpu-scheduler-visualizer/internal/core"
	"cpu-scheduler-visualizer/internal/requests"
	"cpu-scheduler-visualizer/internal/responses"
	"cpu-scheduler-visualizer/internal/roster"
	"cpu-scheduler-visualizer/internal/schedulers"
	"github.com/gofiber/fiber/v2"
)

type simulateRequest struct {
	Algorithm   string `json:"algorithm"`
	TimeQuantum *int   `json:"time_quantum,omitempty"`
}

func rosterResponse(processes []core.ProcessSpec) responses.RosterResponse {
	out := make([]responses.RosterProcess, 0, len(processes))
	for _, p := range processes {
		out = append(out, rosterProcess(p))
	}
	return responses.RosterResponse{Processes: out}
}

func rosterProcess(p core.ProcessSpec) responses.RosterProcess {
	return responses.RosterProcess{
		ProcessId:   p.ProcessId,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Priority:    p.Priority,
	}
}

func fieldsOf(job requests.Job) roster.Fields {
	return roster.Fields{ArrivalTime: job.ArrivalTime, BurstTime: job.BurstTime, Priority: job.Priority}
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	s.mu.Lock()
	processes := s.roster.List()
	s.mu.Unlock()
	return ctx.JSON(rosterResponse(processes))
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return s.respondError(ctx, bodyError(err))
	}

	s.mu.Lock()
	if s.roster.Len() >= s.config.MaxProcesses {
		s.mu.Unlock()
		return s.respondError(ctx, &requests.ValidationError{
			Field:  "processes",
			Reason: fmt.Sprintf("roster is full (%d processes)", s.config.MaxProcesses),
		})
	}
	p, err := s.roster.Add(fieldsOf(job))
	s.mu.Unlock()
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.Debug("process added", "request_id", requestIDFrom(ctx), "process_id", p.ProcessId)
	return ctx.Status(fiber.StatusCreated).JSON(rosterProcess(p))
}

func (s *SchedulerHandlerImpl) UpdateProcess(ctx *fiber.Ctx) error {
	var job requests.Job
	if err := ctx.BodyParser(&job); err != nil {
		return s.respondError(ctx, bodyError(err))
	}

	s.mu.Lock()
	p, err := s.roster.Update(ctx.Params("id"), fieldsOf(job))
	s.mu.Unlock()
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(rosterProcess(p))
}

func (s *SchedulerHandlerImpl) DeleteProcess(ctx *fiber.Ctx) error {
	s.mu.Lock()
	err := s.roster.Delete(ctx.Params("id"))
	s.mu.Unlock()
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) ClearProcesses(ctx *fiber.Ctx) error {
	s.mu.Lock()
	s.roster.Clear()
	s.mu.Unlock()
	return ctx.SendStatus(fiber.StatusNoContent)
}

// SimulateRoster runs one algorithm on a snapshot of the roster.
func (s *SchedulerHandlerImpl) SimulateRoster(ctx *fiber.Ctx) error {
	var request simulateRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.respondError(ctx, bodyError(err))
	}
	algorithm, err := schedulers.ParseAlgorithm(request.Algorithm)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.mu.Lock()
	specs := s.roster.List()
	s.mu.Unlock()

	return s.run(ctx, algorithm, specs, request.TimeQuantum)
}
