package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ironsheep/maze-solver/internal/config"
	"github.com/ironsheep/maze-solver/internal/imaging"
	"github.com/ironsheep/maze-solver/internal/maze"
	"github.com/ironsheep/maze-solver/internal/render"
	"github.com/ironsheep/maze-solver/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("maze-solver %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp(os.Stdout)
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-solver: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg, os.Stderr)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		log.Debug().Str("version", Version).Str("commit", GitCommit).Msg("starting MCP server")
		if err := server.New(cfg).Run(); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], cfg, os.Stdout)
	stop()
	os.Exit(code)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "maze-solver - find the shortest path through a black and white maze image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  maze-solver [flags] <image>    Solve a maze and save the annotated image")
	fmt.Fprintln(w, "  maze-solver serve              Run the MCP server over stdin/stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs, _ := newFlagSet(config.Default(), w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s=debug        Log level (debug, info, warn, error)\n", config.EnvLogLevel)
	fmt.Fprintf(w, "  %s=10        Default rows scanned for endpoint markers\n", config.EnvRowsToScan)
	fmt.Fprintf(w, "  %s=0            Default binarization threshold (0 = strict)\n", config.EnvThreshold)
	fmt.Fprintf(w, "  %s=0            Default search step budget (0 = unlimited)\n", config.EnvMaxSteps)
}

// setupLogging sends human-readable logs to w; stdout is reserved for results
// and the MCP protocol.
func setupLogging(cfg config.Config, w io.Writer) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
}

// cliOptions are the parsed solve flags.
type cliOptions struct {
	rows         *int
	out          *string
	scale        *int
	threshold    *int
	includeStart *bool
	maxSteps     *int
}

func newFlagSet(cfg config.Config, w io.Writer) (*flag.FlagSet, *cliOptions) {
	fs := flag.NewFlagSet("maze-solver", flag.ContinueOnError)
	fs.SetOutput(w)
	o := &cliOptions{
		rows:         fs.Int("rows", cfg.RowsToScan, "rows scanned at the top and bottom edges for endpoint markers"),
		out:          fs.String("out", "", "output image path (default <image>_solved.png)"),
		scale:        fs.Int("scale", 1, "integer upscale factor for the output image"),
		threshold:    fs.Int("threshold", cfg.Threshold, "binarization threshold 1-255; 0 requires a strictly black/white image"),
		includeStart: fs.Bool("include-start", false, "include the start point in the reported path"),
		maxSteps:     fs.Int("max-steps", cfg.MaxSteps, "search step budget; 0 means unlimited"),
	}
	return fs, o
}

// outputPath derives "<dir>/<name>_solved.png" from the input image path.
func outputPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_solved.png"
}

// run solves one maze image and returns the process exit code. Missing
// endpoints and unconnected mazes are reported results, not failures.
func run(ctx context.Context, args []string, cfg config.Config, stdout io.Writer) int {
	fs, o := newFlagSet(cfg, os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: maze-solver [flags] <image>")
		return 2
	}
	in := fs.Arg(0)
	out := *o.out
	if out == "" {
		out = outputPath(in)
	}

	cache := imaging.NewImageCache()
	g, err := imaging.LoadGrid(cache, in, imaging.DecodeOptions{Threshold: *o.threshold})
	if err != nil {
		log.Error().Err(err).Str("image", in).Msg("failed to load maze")
		return 1
	}
	log.Debug().Int("width", g.Width()).Int("height", g.Height()).Int("passable", g.PassableCount()).Msg("decoded grid")

	began := time.Now()
	sol, err := maze.Solve(ctx, g, maze.SolveOptions{
		RowsToScan:   *o.rows,
		IncludeStart: *o.includeStart,
		MaxSteps:     *o.maxSteps,
	})
	switch {
	case errors.Is(err, maze.ErrEndpointNotFound):
		log.Debug().Err(err).Msg("endpoint scan failed")
		fmt.Fprintln(stdout, "Could not determine the starting or ending points!")
		return 0
	case errors.Is(err, maze.ErrPathNotFound):
		// endpoints are still reported and drawn
	case err != nil:
		log.Error().Err(err).Str("image", in).Msg("search failed")
		return 1
	}

	fmt.Fprintf(stdout, "Starting Point: %v\n", sol.Start)
	fmt.Fprintf(stdout, "Ending Point: %v\n", sol.End)
	if len(sol.Path) == 0 {
		fmt.Fprintln(stdout, "No path exists between the starting and ending points!")
	} else {
		fmt.Fprintf(stdout, "Path Length: %d\n", sol.Length)
	}
	log.Info().Int("length", sol.Length).Int("visited", sol.Visited).Dur("elapsed", time.Since(began)).Msg("search done")

	base, err := cache.Load(in)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload image")
		return 1
	}
	style := render.DefaultStyle()
	style.Scale = *o.scale
	img, err := render.Overlay(base, sol.Path, sol.Start, sol.End, style)
	if err != nil {
		log.Error().Err(err).Msg("failed to render solution")
		return 1
	}
	if err := render.Save(img, out); err != nil {
		log.Error().Err(err).Msg("failed to save solution")
		return 1
	}
	fmt.Fprintf(stdout, "Solution saved to %s\n", out)
	return 0
}
