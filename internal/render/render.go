// Package render draws fixed-capacity arrays for the terminal. It only reads
// slot snapshots; it never touches an Array directly.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcodamonte/staticarrays/fixedarray"
)

// Options controls the drawing style.
type Options struct {
	Plain       bool // ASCII cells, no colors or borders
	ShowIndices bool // slot numbers above the cells
}

var (
	cellStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	presentCell  = cellStyle.BorderForeground(lipgloss.Color("63"))
	emptyCell    = cellStyle.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240"))
	indexStyle   = lipgloss.NewStyle().Faint(true).Align(lipgloss.Center)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// Slots renders one cell per slot. Empty slots show "_".
//
// Plain output for capacity 5, length 4:
//
//	 0   1   2   3   4
//	[1] [2] [3] [4] [_]
func Slots[T fixedarray.Element](slots []fixedarray.Slot[T], o Options) string {
	if len(slots) == 0 {
		return "[]"
	}

	labels := make([]string, len(slots))
	width := len(fmt.Sprint(len(slots) - 1))
	for i, s := range slots {
		labels[i] = s.String()
		width = max(width, lipgloss.Width(labels[i]))
	}

	if o.Plain {
		return plain(labels, width, o.ShowIndices)
	}
	return styled(slots, labels, width, o.ShowIndices)
}

func plain(labels []string, width int, indices bool) string {
	var sb strings.Builder
	if indices {
		idx := make([]string, len(labels))
		for i := range labels {
			idx[i] = fmt.Sprintf(" %*d ", width, i)
		}
		sb.WriteString(strings.TrimRight(strings.Join(idx, " "), " "))
		sb.WriteByte('\n')
	}
	cells := make([]string, len(labels))
	for i, l := range labels {
		cells[i] = fmt.Sprintf("[%*s]", width, l)
	}
	sb.WriteString(strings.Join(cells, " "))
	return sb.String()
}

func styled[T fixedarray.Element](slots []fixedarray.Slot[T], labels []string, width int, indices bool) string {
	cols := make([]string, len(slots))
	for i, s := range slots {
		style := presentCell
		if !s.Present {
			style = emptyCell
		}
		cell := style.Width(width + 2).Align(lipgloss.Center).Render(labels[i])
		if indices {
			idx := indexStyle.Width(lipgloss.Width(cell)).Render(fmt.Sprint(i))
			cell = lipgloss.JoinVertical(lipgloss.Center, idx, cell)
		}
		cols[i] = cell
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, cols...)
}

// Section renders a walkthrough heading.
func Section(title string, o Options) string {
	line := fmt.Sprintf("━━━ %s ━━━", title)
	if o.Plain {
		return line
	}
	return sectionStyle.Render(line)
}

// Summary renders the length, capacity and work counters on one line.
func Summary(length, capacity int, st fixedarray.Stats) string {
	return fmt.Sprintf("len=%d cap=%d reads=%d writes=%d shifts=%d rejected=%d",
		length, capacity, st.Reads, st.Writes, st.Shifts, st.Rejected)
}
