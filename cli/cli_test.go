package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"caveconv/top/toptest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopFile(t *testing.T) string {
	bs := toptest.NewFile().
		Int32(1).
		Trip(toptest.Trip{
			Time:        time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC),
			Comment:     "l;';l';",
			Declination: 66,
		}).
		Int32(3).
		Shot(toptest.Shot{From: toptest.CompositeID(1, 0), To: toptest.CompositeID(1, 1), DistanceMM: 2500, Azimuth: 90}).
		Shot(toptest.Shot{From: toptest.CompositeID(1, 1), To: toptest.CompositeID(1, 0), DistanceMM: 2500, Azimuth: 270}).
		Shot(toptest.Shot{From: toptest.CompositeID(1, 1), To: toptest.Undefined, DistanceMM: 800, TripIndex: -1}).
		Int32(0).
		EmptyTail().
		Bytes()
	path := filepath.Join(t.TempDir(), "cave.top")
	require.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "cave", DefaultName("/tmp/out/cave.svx"))
	assert.Equal(t, "cave", DefaultName("cave.backup.svx"))
	assert.Equal(t, "cave", DefaultName("cave"))
}

func TestCheckTopFile(t *testing.T) {
	assert.NoError(t, CheckTopFile(writeTopFile(t)))

	err := CheckTopFile(filepath.Join(t.TempDir(), "missing.top"))
	assert.True(t, errors.Is(err, ErrSourceMissing), err)

	other := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0644))
	err = CheckTopFile(other)
	assert.True(t, errors.Is(err, ErrNotTopFile), err)
}

func TestStartConverting(t *testing.T) {
	from := writeTopFile(t)
	to := filepath.Join(t.TempDir(), "jaskinia.svx")

	err := StartConverting(ConvertCmd{From: from, To: to}, DefaultConfig())
	require.NoError(t, err)
	output, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Contains(t, string(output), "*begin jaskinia")
	assert.Contains(t, string(output), "1.0 1.1 2.500 90.00 0.00")
	assert.NotContains(t, string(output), "*flags splay")

	err = StartConverting(ConvertCmd{From: from, To: to}, DefaultConfig())
	assert.True(t, errors.Is(err, ErrDestExists), err)

	err = StartConverting(ConvertCmd{From: from, To: to, Force: true, Splays: true, Name: "other"}, DefaultConfig())
	require.NoError(t, err)
	output, err = os.ReadFile(to)
	require.NoError(t, err)
	assert.Contains(t, string(output), "*begin other")
	assert.Contains(t, string(output), "*flags splay")
}

func TestStartConverting_Formats(t *testing.T) {
	from := writeTopFile(t)
	config := DefaultConfig()
	config.Format = "json"

	to := filepath.Join(t.TempDir(), "cave.json")
	require.NoError(t, StartConverting(ConvertCmd{From: from, To: to}, config))
	output, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Contains(t, string(output), `"name": "cave"`)

	to = filepath.Join(t.TempDir(), "cave.mp")
	require.NoError(t, StartConverting(ConvertCmd{From: from, To: to, Format: "msgpack"}, config))
	assert.True(t, CheckExistence(to))

	err = StartConverting(ConvertCmd{From: from, To: filepath.Join(t.TempDir(), "x"), Format: "dxf"}, config)
	assert.Error(t, err)
}

func TestStartInfo(t *testing.T) {
	buf := bytes.Buffer{}
	require.NoError(t, StartInfo(InfoCmd{From: writeTopFile(t)}, &buf))
	output := buf.String()

	assert.Contains(t, output, "trips:          1\n")
	assert.Contains(t, output, "shots:          3 (1 splays)\n")
	assert.Contains(t, output, "legs:           1\n")
	assert.Contains(t, output, "stations:       2\n")
	assert.Contains(t, output, "total distance: 2.50 m\n")
	assert.Contains(t, output, `trip 0:         2020-05-01, declination 66.00, 2 shots "l;';l';"`)
}

func TestRun(t *testing.T) {
	err := Run(Args{}, &bytes.Buffer{})
	assert.Error(t, err)

	buf := bytes.Buffer{}
	err = Run(Args{Info: &InfoCmd{From: writeTopFile(t)}}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "legs:           1")

	err = Run(Args{Config: filepath.Join(t.TempDir(), "missing.yaml"), Info: &InfoCmd{}}, &buf)
	assert.Error(t, err)
}
