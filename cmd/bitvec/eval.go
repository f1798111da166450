package main

import (
	"fmt"

	"github.com/hupe1980/bitvec"
	"github.com/urfave/cli/v2"
)

var opFlag = cli.StringFlag{
	Name:  "op",
	Usage: "boolean operation: and, or, xor or not",
	Value: "and",
}

var EvalCmd = cli.Command{
	Action:    doEval,
	Name:      "eval",
	Usage:     "apply a boolean operation to bit strings such as 10110",
	ArgsUsage: "<a> [<b>]",
	Flags: []cli.Flag{
		&opFlag,
	},
}

func doEval(context *cli.Context) error {
	op := context.String(opFlag.Name)

	want := 2
	if op == "not" {
		want = 1
	}
	if context.Args().Len() != want {
		return fmt.Errorf("%s expects %d operand(s), got %d", op, want, context.Args().Len())
	}

	a, err := bitvec.Parse(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer a.Close()

	var res *bitvec.BitVector
	if op == "not" {
		res, err = a.Not()
	} else {
		b, perr := bitvec.Parse(context.Args().Get(1))
		if perr != nil {
			return perr
		}
		defer b.Close()

		switch op {
		case "and":
			res, err = bitvec.And(a, b)
		case "or":
			res, err = bitvec.Or(a, b)
		case "xor":
			res, err = bitvec.Xor(a, b)
		default:
			return fmt.Errorf("unknown operation %q", op)
		}
	}
	if err != nil {
		return err
	}
	defer res.Close()

	fmt.Fprintf(context.App.Writer, "%s (count=%d)\n", res, res.Count())
	return nil
}
