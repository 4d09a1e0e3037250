package cmd

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/go-drift/flit/pkg/engine"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/render/cells"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Draw a scene in the terminal",
		Long: `Draw one frame of a scene as text.

The frame is laid out at the configured size and scaled onto a character
grid. When stdout is a terminal the grid fills it; otherwise it is 80x24
unless --cols and --rows are given. --verbose logs a failed frame to
stderr.`,
		Usage: "flit preview [--scene path] [--cols N] [--rows N] [--verbose]",
		Run:   runPreview,
	})
}

const (
	defaultCols = 80
	defaultRows = 24
)

type previewOptions struct {
	scene      string
	cols, rows int
	verbose    bool
}

func parsePreviewArgs(args []string) (previewOptions, error) {
	var opts previewOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--scene":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scene requires a file path")
			}
			opts.scene = args[i+1]
			i++
		case "--cols", "--rows":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a number", args[i])
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("%s: invalid value %q", args[i], args[i+1])
			}
			if args[i] == "--cols" {
				opts.cols = n
			} else {
				opts.rows = n
			}
			i++
		case "--verbose":
			opts.verbose = true
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

// gridSize picks the grid dimensions: explicit values first, then the
// terminal size, then 80x24.
func gridSize(opts previewOptions, fd int) (cols, rows int) {
	cols, rows = defaultCols, defaultRows
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 1 {
			// Leave a line for the prompt.
			cols, rows = w, h-1
		}
	}
	if opts.cols > 0 {
		cols = opts.cols
	}
	if opts.rows > 0 {
		rows = opts.rows
	}
	return cols, rows
}

func runPreview(args []string) error {
	opts, err := parsePreviewArgs(args)
	if err != nil {
		return err
	}
	res, widget, err := resolveProject(opts.scene)
	if err != nil {
		return err
	}

	cols, rows := gridSize(opts, int(os.Stdout.Fd()))
	cell := cellSize(res.Viewport, cols, rows)
	r := cells.New(cols, rows, cell.Width, cell.Height)
	driver, err := engine.NewDriver(r, res.Viewport, append(res.DriverOptions(), engine.WithHandler(frameHandler(opts.verbose)))...)
	if err != nil {
		return err
	}
	if err := driver.Frame(widget); err != nil {
		return err
	}
	fmt.Println(r.String())
	return nil
}

// cellSize is the pixel extent one grid cell covers.
func cellSize(viewport graphics.Size, cols, rows int) graphics.Size {
	return graphics.Size{Width: viewport.Width / float64(cols), Height: viewport.Height / float64(rows)}
}
