package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/bitvec <command> <flags>

var commands = []*cli.Command{
	&EvalCmd,
	&FillCmd,
	&InfoCmd,
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "bitvec",
		Usage:    "bit vector toolbox",
		Commands: commands,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
