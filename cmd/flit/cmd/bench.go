package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-drift/flit/pkg/core"
	"github.com/go-drift/flit/pkg/engine"
	"github.com/go-drift/flit/pkg/render/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "bench",
		Short: "Time repeated frames of a scene",
		Long: `Build a scene repeatedly and report frame statistics.

Every frame clears the canvas and rebuilds the whole tree. --json prints
the frame timeline instead of the summary line. --verbose logs the first
failed frame to stderr.`,
		Usage: "flit bench [--frames N] [--scene path] [--json] [--verbose]",
		Run:   runBench,
	})
}

const defaultBenchFrames = 100

type benchOptions struct {
	frames  int
	scene   string
	json    bool
	verbose bool
}

func parseBenchArgs(args []string) (benchOptions, error) {
	opts := benchOptions{frames: defaultBenchFrames}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--frames":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--frames requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("--frames: invalid value %q", args[i+1])
			}
			opts.frames = n
			i++
		case "--scene":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scene requires a file path")
			}
			opts.scene = args[i+1]
			i++
		case "--json":
			opts.json = true
		case "--verbose":
			opts.verbose = true
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runBench(args []string) error {
	opts, err := parseBenchArgs(args)
	if err != nil {
		return err
	}
	res, widget, err := resolveProject(opts.scene)
	if err != nil {
		return err
	}

	r, err := raster.New(int(res.Viewport.Width), int(res.Viewport.Height))
	if err != nil {
		return err
	}
	defer r.Close()

	trace := engine.NewFrameTraceBuffer(opts.frames, 0)
	driver, err := engine.NewDriver(r, res.Viewport, append(res.DriverOptions(),
		engine.WithTrace(trace),
		engine.WithHandler(frameHandler(opts.verbose)),
	)...)
	if err != nil {
		return err
	}
	if err := driver.Run(opts.frames, func(int) core.Widget { return widget }); err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(driver.Timeline())
	}
	fmt.Println(driver.Stats())
	return nil
}
