// orgtree builds reporting hierarchies from chart files and prints their
// traversals.
package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {

	app := cli.App{
		Name:      "orgtree",
		Usage:     "reporting hierarchy tool",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (error, warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"ORGTREE_LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, cctx.App.ErrWriter)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdShow,
		cmdTraverse,
		cmdFind,
	}
	return app.Run(args)
}
