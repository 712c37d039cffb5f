package schedulers

import (
	"io"
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// Options tune a single run.
type Options struct {
	// Quantum is the round-robin time slice. Other policies ignore it.
	Quantum int
	// EmitIdle records idle intervals on the timeline for every policy.
	EmitIdle bool
	Logger   *slog.Logger
}

// DefaultOptions emits idle events and uses a quantum of 2.
func DefaultOptions() Options {
	return Options{Quantum: 2, EmitIdle: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result is the outcome of one policy run. Processes keep the caller's order.
type Result struct {
	Policy    Policy
	Processes []core.Process
	Timeline  *core.Timeline
}

// strategy is what distinguishes one policy from another; everything else is
// shared by simulate.
type strategy struct {
	// pick returns the index of the ready process to dispatch. Ties must resolve to
	// the lowest index, which is admission order.
	pick func(ready []*core.Process) int
	// slice is how many ticks the dispatched process runs before the next decision.
	slice func(p *core.Process) int
	// rotate moves an unfinished process to the back of the ready queue, behind
	// anything that arrived while it ran.
	rotate bool
}

// pickHead dispatches in admission order.
func pickHead(ready []*core.Process) int {
	return 0
}

// pickMin returns a picker that selects the first process for which no other ready
// process is strictly less.
func pickMin(less func(a, b *core.Process) bool) func([]*core.Process) int {
	return func(ready []*core.Process) int {
		best := 0
		for i := 1; i < len(ready); i++ {
			if less(ready[i], ready[best]) {
				best = i
			}
		}
		return best
	}
}

// toCompletion runs the dispatched process for its whole remaining burst.
func toCompletion(p *core.Process) int {
	return p.RemainingTime
}

// oneTick re-evaluates the choice at every tick boundary.
func oneTick(*core.Process) int {
	return 1
}

// simulate drives the shared clock. processes must already be reset.
func simulate(processes []core.Process, s strategy, opts Options) *core.Timeline {
	log := opts.logger()
	timeline := core.NewTimeline()

	pending := make([]*core.Process, len(processes))
	for i := range processes {
		pending[i] = &processes[i]
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	var (
		ready    = make([]*core.Process, 0, len(pending))
		now      int
		next     int
		finished int
	)
	admit := func() {
		for next < len(pending) && pending[next].ArrivalTime <= now {
			log.Debug("process admitted", "pid", pending[next].ID, "tick", now)
			ready = append(ready, pending[next])
			next++
		}
	}

	for finished < len(pending) {
		admit()
		if len(ready) == 0 {
			arrival := pending[next].ArrivalTime
			if opts.EmitIdle {
				timeline.Idle(now, arrival-now)
			}
			log.Debug("cpu idle", "from", now, "to", arrival)
			now = arrival
			continue
		}

		i := s.pick(ready)
		p := ready[i]
		p.Dispatch(now)
		ran := p.Execute(s.slice(p))
		timeline.Run(p.ID, now, ran)
		now += ran

		if p.Done() {
			p.Complete(now)
			ready = append(ready[:i], ready[i+1:]...)
			finished++
			log.Debug("process completed", "pid", p.ID, "tick", now,
				"turnaround", p.TurnaroundTime, "waiting", p.WaitingTime)
			continue
		}
		if s.rotate {
			ready = append(ready[:i], ready[i+1:]...)
			admit()
			ready = append(ready, p)
		}
	}
	return timeline
}

func run(policy Policy, processes []core.Process, s strategy, opts Options) *Result {
	procs := core.Clone(processes)
	opts.logger().Info("running scheduling policy", "policy", string(policy), "processes", len(procs))
	return &Result{
		Policy:    policy,
		Processes: procs,
		Timeline:  simulate(procs, s, opts),
	}
}
