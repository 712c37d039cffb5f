package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/client"
	"cpu-scheduler/internal/driver"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/logger"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type options struct {
	configPath string
	input      string
	policy     string
	quantum    int
	format     string
	server     string
	serve      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to the YAML config (default ./config.yaml if present)")
	flag.StringVar(&opts.input, "input", "", "process file; without it the simulator prompts interactively")
	flag.StringVar(&opts.policy, "policy", "fcfs", "fcfs, sjf, srtf, priority, priority-preemptive, rr or all")
	flag.IntVar(&opts.quantum, "quantum", 0, "round robin time quantum (default from config)")
	flag.StringVar(&opts.format, "format", "", "output format: table or yaml (default from config)")
	flag.StringVar(&opts.server, "server", "", "run simulations on a remote scheduler API at this base URL")
	flag.BoolVar(&opts.serve, "serve", false, "start the scheduler HTTP API")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Build(cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, cfg, log); err != nil {
		log.Error("scheduler failed", logger.ErrAttr(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, cfg *config.SchedulerConfig, log *slog.Logger) error {
	if opts.serve {
		return serve(ctx, cfg, log)
	}

	if opts.format == "" {
		opts.format = cfg.OutputFormat
	}
	if opts.quantum == 0 {
		opts.quantum = cfg.RoundRobinTimeQuantum
	}
	width := report.TerminalWidth(cfg.OutputWidth)

	var runner driver.Runner = driver.Local{EmitIdle: cfg.EmitIdle, Logger: log}
	if opts.server != "" {
		runner = driver.Remote{Client: client.New(opts.server, nil)}
	}

	if opts.input == "" {
		d := driver.New(os.Stdin, os.Stdout, runner, log)
		d.Format = opts.format
		d.Width = width
		return d.Run(ctx)
	}

	processes, err := loader.Load(opts.input)
	if err != nil {
		return err
	}
	policies := schedulers.Policies()
	if opts.policy != "all" {
		policy, err := schedulers.ParsePolicy(opts.policy)
		if err != nil {
			return err
		}
		policies = []schedulers.Policy{policy}
	}

	runs := make([]responses.ScheduleResponse, 0, len(policies))
	for _, policy := range policies {
		response, err := runner.Simulate(ctx, policy, processes, opts.quantum)
		if err != nil {
			return err
		}
		runs = append(runs, response)
	}
	return report.Render(os.Stdout, opts.format, width, runs...)
}

func serve(ctx context.Context, cfg *config.SchedulerConfig, log *slog.Logger) error {
	app := api.NewRouter(api.NewSchedulerHandlerImpl(cfg, log))

	go func() {
		<-ctx.Done()
		log.Info("shutting down scheduler api")
		_ = app.Shutdown()
	}()

	log.Info("scheduler api listening", "port", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
