package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/util"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	log    *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, log *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

// AllAlgorithms runs every policy over the same request.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, opts, err := s.parse(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	all := make([]responses.ScheduleResponse, 0, len(schedulers.Policies()))
	for _, policy := range schedulers.Policies() {
		response, err := s.run(policy, request, opts)
		if err != nil {
			return badRequest(ctx, err)
		}
		all = append(all, response)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	type policy struct {
		Name         string `json:"name"`
		Title        string `json:"title"`
		NeedsQuantum bool   `json:"needs_quantum"`
	}
	out := make([]policy, 0, len(schedulers.Policies()))
	for _, p := range schedulers.Policies() {
		out = append(out, policy{Name: string(p), Title: p.Title(), NeedsQuantum: p.NeedsQuantum()})
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, opts, err := s.parse(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := s.run(policy, request, opts)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequest, schedulers.Options, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return request, schedulers.Options{}, errors.New("invalid request format")
	}
	if request.TimeQuantum < 0 {
		return request, schedulers.Options{}, schedulers.ErrInvalidQuantum
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return request, schedulers.Options{
		Quantum:  request.TimeQuantum,
		EmitIdle: s.config.EmitIdle,
		Logger:   s.log,
	}, nil
}

func (s *SchedulerHandlerImpl) run(policy schedulers.Policy, request requests.ScheduleRequest, opts schedulers.Options) (responses.ScheduleResponse, error) {
	processes, err := request.ToProcesses()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if len(processes) == 0 {
		return responses.ScheduleResponse{}, util.ErrNoProcesses
	}
	result, err := schedulers.Run(policy, processes, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(result, opts.Quantum)
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
}
