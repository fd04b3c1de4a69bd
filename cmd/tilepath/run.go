package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/tilepath/coord"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/gridio"
	"github.com/katalvlaran/tilepath/search"
)

// request is a fully resolved query.
type request struct {
	grid    *grid.Grid
	start   *coord.Coord
	end     *coord.Coord
	sources []coord.Coord
	opts    []search.Option
}

// result is the structured output of one query.
type result struct {
	Mode       string          `json:"mode" yaml:"mode"`
	Path       []coord.Coord   `json:"path,omitempty" yaml:"path,omitempty"`
	Cost       int             `json:"cost,omitempty" yaml:"cost,omitempty"`
	Expanded   int             `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Area       []coord.Coord   `json:"area,omitempty" yaml:"area,omitempty"`
	Components [][]coord.Coord `json:"components,omitempty" yaml:"components,omitempty"`
}

// stepRow is one CSV line of a path or area listing.
type stepRow struct {
	Step int `csv:"step"`
	X    int `csv:"x"`
	Y    int `csv:"y"`
}

// componentRow is one CSV line of a component listing.
type componentRow struct {
	Component int `csv:"component"`
	X         int `csv:"x"`
	Y         int `csv:"y"`
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.New(slog.NewTextHandler(stderr, nil)).Error("invalid arguments", "error", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	req, err := loadRequest(cfg, logger)
	if err != nil {
		logger.Error("failed to load input", "error", err)
		return 1
	}

	res, err := execute(cfg.mode, req)
	if err != nil {
		logger.Error("query failed", "mode", cfg.mode, "error", err)
		return 1
	}

	if err := render(stdout, cfg.format, res); err != nil {
		logger.Error("failed to write output", "format", cfg.format, "error", err)
		return 1
	}
	return 0
}

// loadRequest resolves the grid and query inputs. Flags override values
// taken from a query file.
func loadRequest(cfg *config, logger *slog.Logger) (*request, error) {
	var (
		desc *gridio.Description
		req  = &request{}
		opts gridio.Options
	)

	if cfg.queryPath != "" {
		q, err := gridio.LoadQuery(cfg.queryPath)
		if err != nil {
			return nil, err
		}
		desc = &q.Grid
		req.start, req.end = q.Start, q.End
		req.sources = q.Sources
		opts = q.Options
	} else {
		d, err := gridio.LoadFile(cfg.gridPath)
		if err != nil {
			return nil, err
		}
		desc = d
	}

	g, err := desc.Build()
	if err != nil {
		return nil, err
	}
	req.grid = g

	if len(cfg.from) > 0 {
		c := cfg.from[0]
		req.start = &c
		req.sources = append([]coord.Coord(nil), cfg.from...)
	}
	if cfg.sourcesPath != "" {
		cs, err := gridio.LoadCoords(cfg.sourcesPath)
		if err != nil {
			return nil, err
		}
		req.sources = append(req.sources, cs...)
	}
	if cfg.to.set {
		c := cfg.to.c
		req.end = &c
	}
	if cfg.endOnUnstoppable {
		opts.EndOnUnstoppable = true
	}

	req.opts = append(opts.SearchOptions(),
		search.WithMaxExpansions(cfg.maxExpansions),
		search.WithLogger(logger),
	)
	logger.Debug("grid loaded",
		"rows", g.Rows(),
		"topology", g.Topology().String(),
		"walkable", g.WalkableTiles(),
	)

	return req, nil
}

// execute runs the query selected by mode.
func execute(mode string, req *request) (*result, error) {
	res := &result{Mode: mode}
	switch mode {
	case "path":
		if req.start == nil || req.end == nil {
			return nil, fmt.Errorf("%w: path mode needs a start and a target", errUsage)
		}
		pr, err := search.ShortestPath(req.grid, *req.start, *req.end, req.opts...)
		if err != nil {
			return nil, err
		}
		res.Path, res.Cost, res.Expanded = pr.Path, pr.Cost, pr.Expanded

	case "area":
		area, err := search.FindWalkableArea(req.grid, req.sources, req.opts...)
		if err != nil {
			return nil, err
		}
		res.Area = area

	case "components":
		comps, err := gridgraph.Components(req.grid)
		if err != nil {
			return nil, err
		}
		res.Components = comps

	default:
		return nil, fmt.Errorf("%w: unknown mode %q", errUsage, mode)
	}
	return res, nil
}

// render writes res to w in the requested format.
func render(w io.Writer, format string, res *result) error {
	switch format {
	case "json":
		return gridio.Encode(w, gridio.JSON, res)
	case "yaml":
		return gridio.Encode(w, gridio.YAML, res)
	case "csv":
		return renderCSV(w, res)
	default:
		return renderText(w, res)
	}
}

func renderText(w io.Writer, res *result) error {
	var err error
	switch res.Mode {
	case "path":
		_, err = fmt.Fprintf(w, "path: %v\ncost: %d\n", res.Path, res.Cost)
	case "area":
		_, err = fmt.Fprintf(w, "area: %v\n", res.Area)
	case "components":
		for i, comp := range res.Components {
			if _, err = fmt.Fprintf(w, "component %d: %v\n", i, comp); err != nil {
				return err
			}
		}
	}
	return err
}

func renderCSV(w io.Writer, res *result) error {
	if res.Mode == "components" {
		rows := []componentRow{}
		for i, comp := range res.Components {
			for _, c := range comp {
				rows = append(rows, componentRow{Component: i, X: c.X, Y: c.Y})
			}
		}
		return gocsv.Marshal(rows, w)
	}

	cells := res.Path
	first := 1
	if res.Mode == "area" {
		cells, first = res.Area, 0
	}
	rows := make([]stepRow, len(cells))
	for i, c := range cells {
		rows[i] = stepRow{Step: first + i, X: c.X, Y: c.Y}
	}
	return gocsv.Marshal(rows, w)
}
