package ui

import (
	"testing"

	"caveconv/top/survey"
	"caveconv/top/tdraw"
	"caveconv/top/tid"
	"caveconv/top/tshot"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGraph(numLegs int) *survey.Graph {
	graph := survey.NewGraph()
	for i := 0; i < numLegs; i++ {
		graph.AddShot(tshot.Shot{
			From:     tid.Composite(1, uint16(i)),
			To:       tid.Composite(1, uint16(i+1)),
			Distance: 1,
		})
	}
	graph.SetOutline(tdraw.NewDrawing(
		tdraw.Mapping{Scale: 100},
		[]tdraw.Element{
			tdraw.CrossSection{Pos: tdraw.Point{X: 10, Y: 10}},
			tdraw.CrossSection{Pos: tdraw.Point{X: 90000, Y: 90000}},
		},
	))
	return graph
}

func pressKey(model tea.Model, keyType tea.KeyType) tea.Model {
	model, _ = model.Update(tea.KeyMsg{Type: keyType})
	return model
}

func TestShotBrowser_View(t *testing.T) {
	browser := CreateShotBrowser("cave.top", createGraph(3), tdraw.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100})
	view := browser.View()

	assert.Contains(t, view, "CAVECONV  cave.top")
	assert.Contains(t, view, "3 legs, 3.00 m surveyed; 1 of 2 outline elements in view")
	assert.Contains(t, view, "1.0")
	assert.Contains(t, view, "1-3 of 3")
}

func TestShotBrowser_Scroll(t *testing.T) {
	var model tea.Model = CreateShotBrowser("cave.top", createGraph(50), tdraw.Bounds{})

	model = pressKey(model, tea.KeyDown)
	assert.Equal(t, 1, model.(ShotBrowser).offset)
	model = pressKey(model, tea.KeyUp)
	model = pressKey(model, tea.KeyUp)
	assert.Equal(t, 0, model.(ShotBrowser).offset)
	model = pressKey(model, tea.KeyPgDown)
	model = pressKey(model, tea.KeyPgDown)
	model = pressKey(model, tea.KeyPgDown)
	assert.Equal(t, 30, model.(ShotBrowser).offset)
	assert.Contains(t, model.View(), "31-50 of 50")

	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 16})
	assert.Equal(t, 10, model.(ShotBrowser).pageSize)
}

func TestShotBrowser_Quit(t *testing.T) {
	var model tea.Model = CreateShotBrowser("cave.top", createGraph(1), tdraw.Bounds{})
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, "", model.View())
}
