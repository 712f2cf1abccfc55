// Package report prints search results in the plain layout shared by all
// puzzle solvers:
//
//	Total configs: 11
//	Unique configs: 7
//	Step 0: 6
//	Step 1: 7
//
// or "No solution". Multi-line states (boards) start on the line after
// their step label. Headings are styled with lipgloss; styling degrades to
// plain text when w is not a terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/puzzlesolver/bfs"
)

// NoSolution is printed when the goal is unreachable.
const NoSolution = "No solution"

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	fail  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		label: r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		fail:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
	}
}

// Write prints the outcome of one search. title is printed first when
// non-empty, e.g. "Hours: 12, Start: 6, End: 12" or a file name followed
// by the starting board.
func Write[S fmt.Stringer](w io.Writer, title string, res *bfs.Result[S]) error {
	st := newStyles(w)
	var sb strings.Builder
	// lines are styled one at a time; Render pads multi-line blocks
	if title != "" {
		for _, line := range strings.Split(strings.TrimSuffix(title, "\n"), "\n") {
			sb.WriteString(st.title.Render(line))
			sb.WriteByte('\n')
		}
	}
	if res == nil || !res.Found {
		sb.WriteString(st.fail.Render(NoSolution))
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	}

	fmt.Fprintf(&sb, "%s %d\n", st.label.Render("Total configs:"), res.Generated)
	fmt.Fprintf(&sb, "%s %d\n", st.label.Render("Unique configs:"), res.Unique)
	for i, s := range res.Path {
		text := s.String()
		label := st.label.Render("Step " + strconv.Itoa(i) + ":")
		if strings.Contains(text, "\n") {
			sb.WriteString(label)
			sb.WriteByte('\n')
			sb.WriteString(text)
			if !strings.HasSuffix(text, "\n") {
				sb.WriteByte('\n')
			}
			continue
		}
		fmt.Fprintf(&sb, "%s %s\n", label, text)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Summary is one row of a batch report.
type Summary struct {
	Name      string
	Kind      string
	Found     bool
	Steps     int
	Generated int
	Unique    int
	Elapsed   time.Duration
	Err       error
}

// WriteSummary prints a table with one row per batch job, in order.
func WriteSummary(w io.Writer, rows []Summary) error {
	st := newStyles(w)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("JOB", "KIND", "RESULT", "STEPS", "GENERATED", "UNIQUE", "ELAPSED")
	for _, r := range rows {
		result, steps := "solved", strconv.Itoa(r.Steps)
		switch {
		case r.Err != nil:
			result, steps = "error: "+r.Err.Error(), "-"
		case !r.Found:
			result, steps = "no solution", "-"
		}
		t.Row(r.Name, r.Kind, result, steps,
			strconv.Itoa(r.Generated), strconv.Itoa(r.Unique), r.Elapsed.Round(time.Microsecond).String())
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", st.title.Render("Batch results"), t.String())
	return err
}
