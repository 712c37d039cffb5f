// Package driver implements the interactive prompt: input file, policy, quantum.
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

var ErrInvalidChoice = errors.New("invalid choice")

type Driver struct {
	in     *bufio.Reader
	out    io.Writer
	runner Runner
	log    *slog.Logger

	// Format and Width control how results are rendered.
	Format string
	Width  int
}

func New(in io.Reader, out io.Writer, runner Runner, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		in:     bufio.NewReader(in),
		out:    out,
		runner: runner,
		log:    log,
		Format: "table",
		Width:  80,
	}
}

// Run asks for an input file and a policy, simulates it and prints the results.
// Nothing is printed beyond the prompts when any answer is invalid.
func (d *Driver) Run(ctx context.Context) error {
	path, err := d.ask("Enter the path to the input file: ")
	if err != nil {
		return err
	}
	processes, err := loader.Load(path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(d.out, "Successfully read %d processes.\n\n", len(processes))

	policy, err := d.choosePolicy()
	if err != nil {
		return err
	}

	var quantum int
	if policy.NeedsQuantum() {
		if quantum, err = d.askQuantum(); err != nil {
			return err
		}
	}

	d.log.Debug("starting simulation", "policy", string(policy), "processes", len(processes), "quantum", quantum)
	response, err := d.runner.Simulate(ctx, policy, processes, quantum)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(d.out)
	return report.Render(d.out, d.Format, d.Width, response)
}

func (d *Driver) choosePolicy() (schedulers.Policy, error) {
	policies := schedulers.Policies()
	_, _ = fmt.Fprintln(d.out, "Select Scheduling Algorithm:")
	for i, p := range policies {
		_, _ = fmt.Fprintf(d.out, "%d. %s Scheduling\n", i+1, p.Title())
	}

	answer, err := d.ask(fmt.Sprintf("Enter your choice (1-%d): ", len(policies)))
	if err != nil {
		return "", err
	}
	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(policies) {
		return "", fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
	}
	return policies[choice-1], nil
}

func (d *Driver) askQuantum() (int, error) {
	answer, err := d.ask("Enter the time quantum for Round Robin Scheduling: ")
	if err != nil {
		return 0, err
	}
	quantum, err := strconv.Atoi(answer)
	if err != nil || quantum <= 0 {
		return 0, fmt.Errorf("%w, got %q", schedulers.ErrInvalidQuantum, answer)
	}
	return quantum, nil
}

func (d *Driver) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(d.out, prompt)
	line, err := d.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
