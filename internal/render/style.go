package render

import "github.com/fatih/color"

var (
	bold = color.New(color.Bold)
	dim  = color.New(color.Faint)
)

// processColors is the gantt palette; a process keeps its color across runs.
var processColors = []*color.Color{
	color.New(color.Bold, color.FgCyan),
	color.New(color.Bold, color.FgRed),
	color.New(color.Bold, color.FgYellow),
	color.New(color.Bold, color.FgGreen),
	color.New(color.Bold, color.FgMagenta),
	color.New(color.Bold, color.FgHiBlue),
	color.New(color.Bold, color.FgHiRed),
	color.New(color.Bold, color.FgWhite),
}

func colorFor(processID string) *color.Color {
	var h uint32
	for _, c := range processID {
		h = h*31 + uint32(c)
	}
	return processColors[h%uint32(len(processColors))]
}
