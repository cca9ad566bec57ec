package ui

import (
	"caveconv/top/survey"
	"caveconv/top/tdraw"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(title string, graph *survey.Graph, viewport tdraw.Bounds) error {
	browser := CreateShotBrowser(title, graph, viewport)
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
