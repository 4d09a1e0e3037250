package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/go-drift/flit/cmd/flit/internal/config"
	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/engine"
	"github.com/go-drift/flit/pkg/errors"
	"github.com/go-drift/flit/pkg/graphics"
	"github.com/go-drift/flit/pkg/render/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to PNG",
		Long: `Render one frame of a scene to a PNG file.

The frame size, margin, theme and scene come from flit.yaml when present.
Flags override them. --size may be repeated; each size is rendered in
parallel into its own file, named after --out with the size appended.

Use --out - to write the PNG to stdout (refused when stdout is a terminal).
--font replaces the bundled Go Regular font with a TrueType or OpenType
file. --verbose logs failed frames with their stack traces to stderr.`,
		Usage: "flit render [--out file.png] [--size WxH]... [--scene path] [--font file.ttf] [--verbose]",
		Run:   runRender,
	})
}

const defaultOutput = "flit.png"

type renderOptions struct {
	out     string
	sizes   []graphics.Size
	scene   string
	font    string
	verbose bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{out: defaultOutput}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", args[i])
			}
			opts.out = args[i+1]
			i++
		case "--size":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--size requires WxH")
			}
			size, err := parseSize(args[i+1])
			if err != nil {
				return opts, err
			}
			opts.sizes = append(opts.sizes, size)
			i++
		case "--scene":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scene requires a file path")
			}
			opts.scene = args[i+1]
			i++
		case "--font":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--font requires a file path")
			}
			opts.font = args[i+1]
			i++
		case "--verbose":
			opts.verbose = true
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	if opts.out == "-" && len(opts.sizes) > 1 {
		return opts, fmt.Errorf("cannot write %d frames to stdout", len(opts.sizes))
	}
	return opts, nil
}

// parseSize parses WxH with positive integer extents.
func parseSize(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("invalid size %q: want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return graphics.Size{}, fmt.Errorf("invalid size %q: width must be a positive integer", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return graphics.Size{}, fmt.Errorf("invalid size %q: height must be a positive integer", s)
	}
	return graphics.Size{Width: float64(width), Height: float64(height)}, nil
}

// outputPath returns the file a frame of the given size is written to.
// With several sizes each file gets a "-WxH" suffix.
func outputPath(out string, size graphics.Size, multi bool) string {
	if !multi {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%dx%d%s", strings.TrimSuffix(out, ext), int(size.Width), int(size.Height), ext)
}

// resolveProject loads flit.yaml from the project root and applies a scene
// override.
func resolveProject(scenePath string) (*config.Resolved, core.Widget, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, nil, err
	}
	res, err := config.Resolve(root)
	if err != nil {
		return nil, nil, err
	}
	if scenePath != "" {
		res.ScenePath = scenePath
	}
	widget, err := res.LoadScene()
	if err != nil {
		return nil, nil, err
	}
	return res, widget, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	if opts.out == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write PNG data to a terminal; use --out file.png")
	}

	res, widget, err := resolveProject(opts.scene)
	if err != nil {
		return err
	}
	sizes := opts.sizes
	if len(sizes) == 0 {
		sizes = []graphics.Size{res.Viewport}
	}
	face, err := loadFont(opts.font)
	if err != nil {
		return err
	}
	handler := frameHandler(opts.verbose)

	if opts.out == "-" {
		r, err := renderFrame(res, widget, sizes[0], face, handler)
		if err != nil {
			return err
		}
		defer r.Close()
		return r.Encode(os.Stdout)
	}

	var frames errgroup.Group
	multi := len(sizes) > 1
	for _, size := range sizes {
		path := outputPath(opts.out, size, multi)
		frames.Go(func() error {
			r, err := renderFrame(res, widget, size, face, handler)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			defer r.Close()
			if err := r.Save(path); err != nil {
				return err
			}
			fmt.Printf("Rendered %s (%s)\n", path, size)
			return nil
		})
	}
	return frames.Wait()
}

// frameHandler returns the handler failed frames are reported to. The
// error is returned to the caller either way, so reporting is off unless
// verbose.
func frameHandler(verbose bool) errors.ErrorHandler {
	if !verbose {
		return nil
	}
	return &errors.LogHandler{Verbose: true}
}

// loadFont parses the font file at path. An empty path selects the bundled
// font.
func loadFont(path string) (*opentype.Font, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return raster.ParseFont(data)
}

// renderFrame draws one frame of widget at size into a new raster canvas.
// A nil face selects the bundled font.
func renderFrame(res *config.Resolved, widget core.Widget, size graphics.Size, face *opentype.Font, h errors.ErrorHandler) (*raster.Renderer, error) {
	fonts, err := raster.NewFontManager(face)
	if err != nil {
		return nil, err
	}
	r, err := raster.NewWithFonts(int(size.Width), int(size.Height), fonts)
	if err != nil {
		fonts.Close()
		return nil, err
	}
	driver, err := engine.NewDriver(r, size, append(res.DriverOptions(), engine.WithHandler(h))...)
	if err != nil {
		r.Close()
		return nil, err
	}
	if err := driver.Frame(widget); err != nil {
		r.Close()
		return nil, err
	}
	if err := r.Err(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}
