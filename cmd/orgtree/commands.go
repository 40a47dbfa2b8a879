package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/phroun/orgtree"
	"github.com/phroun/orgtree/internal/chart"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "build the reference hierarchy and print all three traversals",
	Action: runDemo,
}

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "draw the hierarchy described by a chart file",
	ArgsUsage: `<chart-file>`,
	Action:    runShow,
}

var cmdTraverse = &cli.Command{
	Name:      "traverse",
	Aliases:   []string{"walk"},
	Usage:     "print traversals of the hierarchy described by a chart file",
	ArgsUsage: `<chart-file>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "order",
			Aliases: []string{"o"},
			Usage:   "pre, in, post, or all",
			Value:   "all",
		},
	},
	Action: runTraverse,
}

var cmdFind = &cli.Command{
	Name:      "find",
	Usage:     "show a member and their direct reports",
	ArgsUsage: `<chart-file> <name>`,
	Action:    runFind,
}

func runDemo(cctx *cli.Context) error {
	tree, err := chart.Demo().Build(slog.Default())
	if err != nil {
		return err
	}
	for _, o := range orgtree.Orders {
		printOrder(cctx.App.Writer, tree, o)
	}
	return nil
}

func runShow(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, chart.Diagram(tree))
	return nil
}

func runTraverse(cctx *cli.Context) error {
	orders := orgtree.Orders
	if s := cctx.String("order"); s != "all" {
		o, err := orgtree.ParseOrder(s)
		if err != nil {
			return err
		}
		orders = []orgtree.Order{o}
	}

	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		printOrder(cctx.App.Writer, tree, o)
	}
	return nil
}

func runFind(cctx *cli.Context) error {
	name := cctx.Args().Get(1)
	if name == "" {
		return fmt.Errorf("need to provide a member name as the second argument")
	}
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	n, ok := tree.Lookup(name)
	if !ok {
		return fmt.Errorf("no member named %q", name)
	}
	w := cctx.App.Writer
	fmt.Fprintln(w, n.Name())
	for _, side := range []orgtree.Side{orgtree.Left, orgtree.Right} {
		report := "(none)"
		if c := n.Child(side); c != nil {
			report = c.Name()
		}
		fmt.Fprintf(w, "  %-6s %s\n", side+":", report)
	}
	return nil
}
