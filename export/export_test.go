package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"caveconv/top/survey"
	"caveconv/top/tdraw"
	"caveconv/top/tid"
	"caveconv/top/tref"
	"caveconv/top/tshot"
	"caveconv/top/ttrip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func createGraph() *survey.Graph {
	graph := survey.NewGraph()
	graph.AddTrip(ttrip.Trip{
		Time:        time.Date(2005, time.July, 1, 0, 0, 0, 0, time.UTC),
		Comment:     "first\ntrip",
		Declination: 4.5,
	})
	comment := "powtorzony"
	graph.AddShot(tshot.Shot{
		From:        tid.Composite(1, 0),
		To:          tid.Composite(1, 1),
		Distance:    7.196,
		Azimuth:     71.54,
		Inclination: 41.78,
		Flags:       tshot.FlagComment,
		Comment:     &comment,
	})
	graph.AddShot(tshot.Shot{
		From:        tid.Composite(1, 1),
		To:          tid.Undefined(),
		Distance:    1.5,
		Azimuth:     10,
		Inclination: -3,
		IsSplay:     true,
		TripIndex:   tshot.NoTrip,
	})
	graph.AddReference(tref.Reference{
		Station:  tid.Composite(1, 0),
		East:     412000123,
		North:    5512000000,
		Altitude: 1450000,
		Comment:  "entrance",
	})
	graph.SetOutline(tdraw.NewDrawing(
		tdraw.Mapping{Scale: 200},
		[]tdraw.Element{
			tdraw.Polygon{Points: []tdraw.Point{{X: 1, Y: 2}}, Color: tdraw.ColorRed},
			tdraw.CrossSection{Station: tid.Composite(1, 1), Direction: -1},
		},
	))
	return graph
}

func TestSurvex(t *testing.T) {
	buf := bytes.Buffer{}
	err := Survex(&buf, createGraph(), "Jaskinia Mała", Options{})
	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "*begin Jaskinia_Ma_a")
	assert.Contains(t, output, "*end Jaskinia_Ma_a")
	assert.Contains(t, output, "*date 2005.07.01")
	assert.Contains(t, output, "*calibrate declination 4.50")
	assert.Contains(t, output, "; trip 0: 2005-07-01 first trip")
	assert.Contains(t, output, "*data normal from to tape compass clino")
	assert.Contains(t, output, "1.0 1.1 7.196 71.54 41.78 ; powtorzony")
	assert.Contains(t, output, "*fix 1.0 412000.123 5512000.000 1450.000 ; entrance")
	assert.NotContains(t, output, "*flags splay")
}

func TestSurvex_Splays(t *testing.T) {
	buf := bytes.Buffer{}
	err := Survex(&buf, createGraph(), "cave", Options{IncludeSplays: true})
	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "*flags splay")
	assert.Contains(t, output, "1.1 - 1.500 10.00 -3.00")
	assert.Contains(t, output, "*flags not splay")
}

func TestSurvex_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tmpl")
	text := `{{.Name}} {{len .GroupedShots}} {{metres .Summary.TotalDistance}}`
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	buf := bytes.Buffer{}
	err := Survex(&buf, createGraph(), "x", Options{Template: path})
	require.NoError(t, err)
	assert.Equal(t, "x 1 7.196", buf.String())

	err = Survex(&buf, createGraph(), "x", Options{Template: path + ".missing"})
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, JSON(&buf, createGraph(), "cave"))

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "cave", decoded["name"])

	shots := decoded["shots"].([]any)
	require.Len(t, shots, 2)
	first := shots[0].(map[string]any)
	assert.Equal(t, "1.0", first["from"])
	assert.Equal(t, "powtorzony", first["comment"])
	second := shots[1].(map[string]any)
	assert.Equal(t, "", second["to"])
	assert.Nil(t, second["comment"])

	elements := decoded["outline"].(map[string]any)["elements"].([]any)
	require.Len(t, elements, 2)
	assert.Equal(t, "polygon", elements[0].(map[string]any)["type"])
	assert.Equal(t, "red", elements[0].(map[string]any)["color"])
	assert.Equal(t, "cross_section", elements[1].(map[string]any)["type"])
	assert.Equal(t, "1.1", elements[1].(map[string]any)["station"])
	assert.Equal(t, float64(-1), elements[1].(map[string]any)["direction"])
}

func TestMsgPack(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, MsgPack(&buf, createGraph(), "cave"))

	decoded := map[string]any{}
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "cave", decoded["name"])
	summary := decoded["summary"].(map[string]any)
	assert.EqualValues(t, 2, summary["num_shots"])
	assert.EqualValues(t, 1, summary["num_splays"])
}

func TestWrite(t *testing.T) {
	for _, format := range Formats {
		buf := bytes.Buffer{}
		assert.NoError(t, Write(&buf, format, createGraph(), "cave", Options{}), format)
		assert.NotZero(t, buf.Len(), format)
	}
	err := Write(&bytes.Buffer{}, Format("xml"), createGraph(), "cave", Options{})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, format)

	_, err = ParseFormat("dxf")
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "dxf"))
}

func TestSurvexName(t *testing.T) {
	assert.Equal(t, "cave", SurvexName("  "))
	assert.Equal(t, "my_cave-2", SurvexName("my cave-2"))
}
