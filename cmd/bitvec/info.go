package main

import (
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

var InfoCmd = cli.Command{
	Action: doInfo,
	Name:   "info",
	Usage:  "print the size limits of this platform",
}

func doInfo(context *cli.Context) error {
	w := context.App.Writer
	fmt.Fprintf(w, "max size:       %d bits\n", bitvec.MaxSize)
	fmt.Fprintf(w, "max capacity:   %d bytes\n", bitvec.MaxCapacity)
	fmt.Fprintf(w, "mid capacity:   %d bytes\n", bitvec.MidCapacity)
	fmt.Fprintf(w, "small capacity: %d bytes\n", bitvec.SmallCapacity)
	fmt.Fprintf(w, "growth step:    %d bytes\n", bitvec.GrowthStep)
	fmt.Fprintf(w, "host memory:    %d bytes total, %d bytes free\n", memory.TotalMemory(), memory.FreeMemory())
	return nil
}
