package ui

import (
	"fmt"
	"strings"

	"caveconv/top/survey"
	"caveconv/top/tdraw"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	DefaultPageSize = 20
	headerLines     = 6
)

// ShotBrowser lists the grouped shots of a graph, one page at a time.
type ShotBrowser struct {
	title        string
	summary      survey.Summary
	rows         []survey.GroupedShot
	inViewport   int
	outlineCount int
	offset       int
	pageSize     int
	quitting     bool
}

func CreateShotBrowser(title string, graph *survey.Graph, viewport tdraw.Bounds) ShotBrowser {
	outline := graph.Outline()
	return ShotBrowser{
		title:        title,
		summary:      graph.Summary(),
		rows:         graph.GroupedShots(),
		inViewport:   len(outline.Query(viewport)),
		outlineCount: len(outline.Elements),
		pageSize:     DefaultPageSize,
	}
}

func (s ShotBrowser) maxOffset() int {
	return lo.Max([]int{len(s.rows) - s.pageSize, 0})
}

func (s ShotBrowser) scroll(delta int) ShotBrowser {
	s.offset = lo.Clamp(s.offset+delta, 0, s.maxOffset())
	return s
}

func (s ShotBrowser) Init() tea.Cmd {
	return nil
}

func (s ShotBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			s.quitting = true
			return s, tea.Quit
		case "up", "k":
			return s.scroll(-1), nil
		case "down", "j":
			return s.scroll(1), nil
		case "pgup", "b":
			return s.scroll(-s.pageSize), nil
		case "pgdown", " ", "f":
			return s.scroll(s.pageSize), nil
		case "home", "g":
			return s.scroll(-len(s.rows)), nil
		case "end", "G":
			return s.scroll(len(s.rows)), nil
		}
	case tea.WindowSizeMsg:
		s.pageSize = lo.Max([]int{msg.Height - headerLines, 1})
		return s.scroll(0), nil
	}
	return s, nil
}

func (s ShotBrowser) View() string {
	if s.quitting {
		return ""
	}
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("CAVECONV  %s\n", s.title))
	builder.WriteString(fmt.Sprintf(
		"%d trips, %d shots (%d splays), %d legs, %.2f m surveyed; %d of %d outline elements in view\n\n",
		s.summary.NumTrips, s.summary.NumShots, s.summary.NumSplays,
		s.summary.NumLegs, s.summary.TotalDistance, s.inViewport, s.outlineCount,
	))
	builder.WriteString(fmt.Sprintf("%-10s %-10s %9s %8s %8s  %s\n", "from", "to", "tape", "compass", "clino", "comment"))

	end := lo.Min([]int{s.offset + s.pageSize, len(s.rows)})
	for _, row := range s.rows[s.offset:end] {
		builder.WriteString(fmt.Sprintf(
			"%-10s %-10s %9.3f %8.2f %8.2f  %s\n",
			row.From, row.To, row.Distance, row.Azimuth, row.Inclination, row.Comment,
		))
	}
	builder.WriteString(fmt.Sprintf("\n%d-%d of %d  (up/down, pgup/pgdown, q to quit)\n", lo.Min([]int{s.offset + 1, end}), end, len(s.rows)))
	return builder.String()
}
