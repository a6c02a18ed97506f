package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"cpu-scheduler-visualizer/internal/responses"
	"github.com/mattn/go-runewidth"
)

const (
	minUnitWidth = 2
	maxUnitWidth = 8

	// maxChartColumns caps a chart drawn at a fixed number of columns per unit.
	maxChartColumns = 240
)

// unitWidth is the number of columns per time unit, scaled so the chart fits
// width where possible.
func unitWidth(span, width int) int {
	if span <= 0 {
		return maxUnitWidth
	}
	return max(minUnitWidth, min(maxUnitWidth, width/span))
}

// Gantt draws segments as a bar line plus a tick line. Segments must be in
// chronological order; gaps between them are drawn as idle dots.
//
//	|   P1    | P2  |
//	0         5     8
func Gantt(w io.Writer, segments []responses.GanttSegment, width int) error {
	if len(segments) == 0 {
		_, err := fmt.Fprintln(w, "(empty gantt)")
		return err
	}

	origin := segments[0].Start
	end := segments[len(segments)-1].End
	cols := columns(segments, width)
	col := func(t int) int { return cols[t] }

	var bars strings.Builder
	ticks := newTickLine(col(end), end)
	cursor := origin
	for _, s := range segments {
		if s.Start > cursor {
			ticks.place(col(cursor), cursor)
			bars.WriteString("|")
			bars.WriteString(dim.Sprint(strings.Repeat(".", col(s.Start)-col(cursor)-1)))
		}
		ticks.place(col(s.Start), s.Start)
		bars.WriteString("|")
		bars.WriteString(cell(s.ProcessId, col(s.End)-col(s.Start)-1))
		cursor = s.End
	}
	bars.WriteString("|")
	ticks.place(col(end), end)

	if _, err := fmt.Fprintln(w, bars.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, ticks.String())
	return err
}

// columns maps every segment boundary to its column. Short timelines use a
// fixed number of columns per unit. When that would exceed the column cap,
// each interval gets a share of width proportional to its length instead,
// never narrower than minUnitWidth.
func columns(segments []responses.GanttSegment, width int) map[int]int {
	seen := make(map[int]bool, 2*len(segments))
	times := make([]int, 0, 2*len(segments))
	for _, s := range segments {
		for _, t := range []int{s.Start, s.End} {
			if !seen[t] {
				seen[t] = true
				times = append(times, t)
			}
		}
	}
	sort.Ints(times)

	span := times[len(times)-1] - times[0]
	unit := unitWidth(span, width)
	fixed := span <= max(width, maxChartColumns)/unit

	cols := make(map[int]int, len(times))
	c := 0
	cols[times[0]] = c
	for i := 1; i < len(times); i++ {
		d := times[i] - times[i-1]
		if fixed {
			c += d * unit
		} else {
			c += max(minUnitWidth, int(float64(d)/float64(span)*float64(width)))
		}
		cols[times[i]] = c
	}
	return cols
}

// cell centers a colored label in width columns, truncating long labels.
// Widths are display widths, so wide and multi-byte ids stay aligned.
func cell(label string, width int) string {
	if runewidth.StringWidth(label) > width {
		label = runewidth.Truncate(label, width, "")
	}
	w := runewidth.StringWidth(label)
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + colorFor(label).Sprint(label) + strings.Repeat(" ", right)
}

type tickLine struct {
	buf  []byte
	next int
}

func newTickLine(lastCol, end int) *tickLine {
	return &tickLine{buf: []byte(strings.Repeat(" ", lastCol+len(strconv.Itoa(end))+1))}
}

// place writes t at col unless it would collide with the previous label.
func (l *tickLine) place(col, t int) {
	if col < l.next {
		return
	}
	label := strconv.Itoa(t)
	copy(l.buf[col:], label)
	l.next = col + len(label) + 1
}

func (l *tickLine) String() string {
	return strings.TrimRight(string(l.buf), " ")
}
