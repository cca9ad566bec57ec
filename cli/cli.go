package cli

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"caveconv/export"
	"caveconv/top"
	"caveconv/top/theader"
	"caveconv/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Config      string          `help:"path to a YAML config file" placeholder:"caveconv.yaml"`
		Verbose     bool            `arg:"-v" help:"log decoding details"`
		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"convert a .top file"`
		Info        *InfoCmd        `arg:"subcommand:info" help:"print a summary of a .top file"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse a .top file"`
	}
	ConvertCmd struct {
		From   string `arg:"required" help:"path to source file" placeholder:"cave.top"`
		To     string `arg:"required" help:"path to destination file" placeholder:"cave.svx"`
		Format string `help:"survex, json or msgpack"`
		Name   string `help:"cave name, defaults to the destination file name"`
		Force  bool   `help:"overwrite the destination file"`
		Splays bool   `help:"include splay shots in Survex output"`
	}
	InfoCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"cave.top"`
	}
	InteractiveCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"cave.top"`
	}
)

var (
	ErrSourceMissing = errors.New("source file does not exist")
	ErrDestExists    = errors.New("destination file existed, use --force to allow overwriting")
	ErrNotTopFile    = errors.New("source is not a PocketTopo version 3 file")
)

var logger = log.New(os.Stderr, "caveconv: ", 0)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Read PocketTopo (.top) cave surveys and convert them",
			"to Survex, JSON or msgpack.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// CheckTopFile sniffs the header so that obviously wrong input fails
// before decoding.
func CheckTopFile(path string) error {
	if !CheckExistence(path) {
		return errors.Wrap(ErrSourceMissing, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "CheckTopFile error: open %s", path)
	}
	defer file.Close()

	header := make([]byte, theader.DefaultHeaderSize)
	if _, err := io.ReadFull(file, header); err != nil || !theader.IsValidMagicNumber(header) {
		return errors.Wrap(ErrNotTopFile, path)
	}
	return nil
}

// DefaultName is the destination base name up to its first dot.
func DefaultName(to string) string {
	return strings.Split(filepath.Base(to), ".")[0]
}

func StartConverting(cmd ConvertCmd, config Config) error {
	if err := CheckTopFile(cmd.From); err != nil {
		return err
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		return errors.Wrap(ErrDestExists, cmd.To)
	}

	formatName := config.Format
	if cmd.Format != "" {
		formatName = cmd.Format
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	name := config.Name
	if cmd.Name != "" {
		name = cmd.Name
	}
	if name == "" {
		name = DefaultName(cmd.To)
	}

	graph, err := top.DecodeFile(cmd.From)
	if err != nil {
		return err
	}
	buf := bytes.Buffer{}
	opts := export.Options{
		Template:      config.Template,
		IncludeSplays: config.IncludeSplays || cmd.Splays,
	}
	if err := export.Write(&buf, format, graph, name, opts); err != nil {
		return err
	}
	if err := os.WriteFile(cmd.To, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "StartConverting error: write %s", cmd.To)
	}
	logger.Printf("exported %s to %s as %s", cmd.From, cmd.To, format)
	return nil
}

func StartInfo(cmd InfoCmd, w io.Writer) error {
	if err := CheckTopFile(cmd.From); err != nil {
		return err
	}
	graph, err := top.DecodeFile(cmd.From)
	if err != nil {
		return err
	}
	summary := graph.Summary()
	fmt.Fprintf(w, "file:           %s\n", cmd.From)
	fmt.Fprintf(w, "trips:          %d\n", summary.NumTrips)
	fmt.Fprintf(w, "shots:          %d (%d splays)\n", summary.NumShots, summary.NumSplays)
	fmt.Fprintf(w, "legs:           %d\n", summary.NumLegs)
	fmt.Fprintf(w, "stations:       %d\n", summary.NumStations)
	fmt.Fprintf(w, "references:     %d\n", summary.NumReferences)
	fmt.Fprintf(w, "total distance: %.2f m\n", summary.TotalDistance)
	for i, trip := range graph.Trips() {
		fmt.Fprintf(
			w, "trip %d:         %s, declination %.2f, %d shots %q\n",
			i, trip.Time.Format("2006-01-02"), trip.Declination, len(graph.ShotsForTrip(i)), trip.Comment,
		)
	}
	return nil
}

func StartInteractive(cmd InteractiveCmd, config Config) error {
	if err := CheckTopFile(cmd.From); err != nil {
		return err
	}
	graph, err := top.DecodeFile(cmd.From)
	if err != nil {
		return err
	}
	viewport := graph.Overview().Viewport(config.ViewportWidthMM, config.ViewportHeightMM)
	return ui.Start(filepath.Base(cmd.From), graph, viewport)
}

func Run(args Args, stdout io.Writer) error {
	config, err := LoadConfig(args.Config)
	if err != nil {
		return err
	}
	if args.Verbose {
		top.SetLogger(log.New(os.Stderr, "caveconv: top: ", log.LstdFlags))
	}

	switch {
	case args.Convert != nil:
		return StartConverting(*args.Convert, config)
	case args.Info != nil:
		return StartInfo(*args.Info, stdout)
	case args.Interactive != nil:
		return StartInteractive(*args.Interactive, config)
	default:
		return errors.New("missing subcommand: convert, info or interactive")
	}
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.Fail("missing subcommand")
	}

	if err := Run(args, os.Stdout); err != nil {
		logger.Fatalf("%v", err)
	}
}
