package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/phroun/orgtree"
	"github.com/phroun/orgtree/internal/chart"
)

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// loadTree builds the tree described by the chart file named in the first
// positional argument.
func loadTree(cctx *cli.Context) (*orgtree.Tree, error) {
	path := cctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("need to provide chart file path as an argument")
	}
	c, err := chart.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("chart loaded", "path", path, "reports", len(c.Reports))
	return c.Build(slog.Default())
}

func printOrder(w io.Writer, tree *orgtree.Tree, o orgtree.Order) {
	fmt.Fprintf(w, "%-10s %q\n", o.String()+":", orgtree.Traverse(tree.Root(), o))
}
