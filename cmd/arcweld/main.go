package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point for the command line tool. It's separated from
// run and application to make both easier to exercise in tests.
func main() {
	run(os.Args)
}

// run is separated from main for debugging's sake.
func run(args []string) {
	app := application()
	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

// application defines the arcweld command line app: its name, usage, and
// the weld/diff subcommands. Argument wiring stops here; the subcommand
// bodies live in commands.go.
func application() *cli.App {
	app := &cli.App{
		Name:  "arcweld",
		Usage: "Weld straight-line CAD geometry into circular arcs.",

		Commands: []*cli.Command{
			{
				Name:      "weld",
				Usage:     "Weld a drawing's collinear-on-a-circle line runs into arcs.",
				ArgsUsage: "<input> <output>",

				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "resolution",
						Usage: "Maximum perpendicular deviation (drawing units) a point may have from a candidate arc.",
					},
					&cli.Float64Flag{
						Name:  "max-radius",
						Usage: "Largest radius a fitted arc may have before a run is left as lines.",
					},
					&cli.IntFlag{
						Name:  "min-segments",
						Usage: "Minimum number of line segments a run must contain before it can become an arc.",
					},
					&cli.StringFlag{
						Name:  "checksum",
						Usage: "Print a digest of the welded output to stderr using the named hash (md5, sha256, sha512, sha3-256, ripemd160, blake2b-256, blake2s-256, blake3).",
					},
				},

				Action: func(c *cli.Context) error {
					return weldCommand(c)
				},
			},
			{
				Name:      "diff",
				Usage:     "Show a unified diff between the canonical serialization of two drawings.",
				ArgsUsage: "<a> <b>",

				Action: func(c *cli.Context) error {
					return diffCommand(c)
				},
			},
		},
	}

	return app
}
