package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"cpu-scheduler/internal/core"
)

const (
	ticksWidth   = 2
	maxCellWidth = 24
	minWidth     = 16
)

// TerminalWidth returns the width of the terminal on stdout, or fallback when
// stdout is not a terminal.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

type ganttCell struct {
	event core.Event
	width int
}

// WriteGantt draws the events as labelled boxes with tick boundaries underneath,
// starting a new band whenever the next box would overflow width.
//
//	+------+----+
//	|  P1  | P2 |
//	+------+----+
//	0      3    5
func WriteGantt(w io.Writer, events []core.Event, width int) {
	merged := core.Merge(events)
	if len(merged) == 0 {
		_, _ = fmt.Fprintln(w, "No Gantt chart to display.")
		return
	}
	width = max(width, minWidth)

	_, _ = fmt.Fprintln(w, "Gantt Chart:")
	var band []ganttCell
	bandWidth := 1
	for _, e := range merged {
		c := ganttCell{event: e, width: cellWidth(e, width)}
		if len(band) > 0 && bandWidth+c.width+1 > width {
			writeBand(w, band)
			band, bandWidth = nil, 1
		}
		band = append(band, c)
		bandWidth += c.width + 1
	}
	writeBand(w, band)
}

func cellWidth(e core.Event, width int) int {
	label := e.Label()
	cell := min(e.Duration*ticksWidth, maxCellWidth)
	cell = max(cell, len(label)+2, len(strconv.Itoa(e.Start))+1)
	// a lone box must still fit between its two borders
	return min(cell, width-2)
}

func writeBand(w io.Writer, band []ganttCell) {
	var border, labels, ticks strings.Builder
	border.WriteString("+")
	labels.WriteString("|")
	for _, c := range band {
		border.WriteString(strings.Repeat("-", c.width) + "+")
		labels.WriteString(center(c.event.Label(), c.width) + "|")

		start := strconv.Itoa(c.event.Start)
		ticks.WriteString(start + strings.Repeat(" ", max(c.width+1-len(start), 1)))
	}
	ticks.WriteString(strconv.Itoa(band[len(band)-1].event.End()))

	_, _ = fmt.Fprintln(w, border.String())
	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintln(w, border.String())
	_, _ = fmt.Fprintln(w, strings.TrimRight(ticks.String(), " "))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
