package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilepath/coord"
)

var errUsage = errors.New("usage")

// coordList collects repeated -from flags.
type coordList []coord.Coord

func (l *coordList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c.X, c.Y)
	}
	return strings.Join(parts, " ")
}

func (l *coordList) Set(s string) error {
	c, err := parseCoord(s)
	if err != nil {
		return err
	}
	*l = append(*l, c)
	return nil
}

// coordFlag is a single optional coordinate.
type coordFlag struct {
	c   coord.Coord
	set bool
}

func (f *coordFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.c.X, f.c.Y)
}

func (f *coordFlag) Set(s string) error {
	c, err := parseCoord(s)
	if err != nil {
		return err
	}
	f.c, f.set = c, true
	return nil
}

// parseCoord parses "x,y".
func parseCoord(s string) (coord.Coord, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return coord.Coord{}, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return coord.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return coord.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return coord.New(x, y), nil
}

// config holds the parsed command line.
type config struct {
	gridPath         string
	queryPath        string
	sourcesPath      string
	mode             string
	from             coordList
	to               coordFlag
	endOnUnstoppable bool
	maxExpansions    int
	format           string
	verbose          bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("tilepath", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.gridPath, "grid", "", "Grid description file (.json, .yaml, .yml)")
	fs.StringVar(&cfg.queryPath, "query", "", "Query file holding grid, start, end, sources and options")
	fs.StringVar(&cfg.sourcesPath, "sources", "", "File with a list of {x, y} area sources")
	fs.StringVar(&cfg.mode, "mode", "path", "Query mode: path, area or components")
	fs.Var(&cfg.from, "from", "Start (path) or source (area) as x,y; repeatable")
	fs.Var(&cfg.to, "to", "Target as x,y (path mode)")
	fs.BoolVar(&cfg.endOnUnstoppable, "end-on-unstoppable", false, "Allow the path to end on an unstoppable cell")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "Abort after this many expanded nodes (0 = unlimited)")
	fs.StringVar(&cfg.format, "format", "text", "Output format: text, csv, json or yaml")
	fs.BoolVar(&cfg.verbose, "v", false, "Debug logging on stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if (cfg.gridPath == "") == (cfg.queryPath == "") {
		return nil, fmt.Errorf("%w: exactly one of -grid or -query is required", errUsage)
	}
	switch cfg.mode {
	case "path", "area", "components":
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", errUsage, cfg.mode)
	}
	switch cfg.format {
	case "text", "csv", "json", "yaml":
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errUsage, cfg.format)
	}

	return cfg, nil
}
