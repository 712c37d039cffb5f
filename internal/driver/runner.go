package driver

import (
	"context"
	"log/slog"

	"cpu-scheduler/internal/client"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

// Runner executes one policy over a process set.
type Runner interface {
	Simulate(ctx context.Context, policy schedulers.Policy, processes []core.Process, quantum int) (responses.ScheduleResponse, error)
}

// Local runs the simulation in-process.
type Local struct {
	EmitIdle bool
	Logger   *slog.Logger
}

func (l Local) Simulate(_ context.Context, policy schedulers.Policy, processes []core.Process, quantum int) (responses.ScheduleResponse, error) {
	result, err := schedulers.Run(policy, processes, schedulers.Options{
		Quantum:  quantum,
		EmitIdle: l.EmitIdle,
		Logger:   l.Logger,
	})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateResponse(result, quantum)
}

// Remote delegates the simulation to a scheduler API server.
type Remote struct {
	Client *client.Client
}

func (r Remote) Simulate(ctx context.Context, policy schedulers.Policy, processes []core.Process, quantum int) (responses.ScheduleResponse, error) {
	response, err := r.Client.Simulate(ctx, policy, requests.NewScheduleRequest(processes, quantum))
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return *response, nil
}
