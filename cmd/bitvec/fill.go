package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/alloc"
	"github.com/hupe1980/bitvec/internal/conv"
	"github.com/hupe1980/bitvec/metrics/prom"
	"github.com/hupe1980/bitvec/resource"
	"github.com/pbnjay/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"
)

var (
	bitsFlag = cli.Uint64Flag{
		Name:  "bits",
		Usage: "number of bits to append",
		Value: 1 << 20,
	}
	allocatorFlag = cli.StringFlag{
		Name:  "allocator",
		Usage: "backing allocator: heap, aligned, mmap or arena",
		Value: "heap",
	}
	budgetFlag = cli.Int64Flag{
		Name:  "budget",
		Usage: "memory budget in bytes, defaults to a quarter of the host memory",
	}
	metricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "print the collected metrics in Prometheus text format",
	}
	presizeFlag = cli.BoolFlag{
		Name:  "presize",
		Usage: "reserve the final capacity up front instead of growing",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every reallocation",
	}
)

var FillCmd = cli.Command{
	Action: doFill,
	Name:   "fill",
	Usage:  "append bits to a vector and report its allocation behavior",
	Flags: []cli.Flag{
		&bitsFlag,
		&allocatorFlag,
		&budgetFlag,
		&metricsFlag,
		&presizeFlag,
		&verboseFlag,
	},
}

func doFill(context *cli.Context) error {
	w := context.App.Writer

	budget := context.Int64(budgetFlag.Name)
	if !context.IsSet(budgetFlag.Name) {
		quarter, err := conv.Uint64ToInt64(memory.TotalMemory() / 4)
		if err != nil {
			return err
		}
		budget = quarter
	}
	rc := resource.NewController(resource.Config{MemoryLimitBytes: budget})

	base, release, err := newAllocator(context.String(allocatorFlag.Name), rc)
	if err != nil {
		return err
	}
	defer release()

	tracker := alloc.NewTracking(base)

	reg := prometheus.NewRegistry()
	opts := []bitvec.Option{
		bitvec.WithAllocator(tracker),
		bitvec.WithMetrics(prom.NewCollector("bitvec", reg)),
	}
	if context.Bool(verboseFlag.Name) {
		opts = append(opts, bitvec.WithLogger(bitvec.NewTextLogger(slog.LevelDebug)))
	}

	v := bitvec.New(opts...)
	n := context.Uint64(bitsFlag.Name)
	if context.Bool(presizeFlag.Name) {
		size, err := conv.BytesForBits(n)
		if err != nil {
			return err
		}
		if err := v.Reserve(size); err != nil {
			return err
		}
	}
	for i := range n {
		if err := v.PushBack(i%3 == 0); err != nil {
			v.Clear()
			return fmt.Errorf("after %d bits: %w", i, err)
		}
	}

	fmt.Fprintf(w, "size:      %d bits\n", v.Size())
	fmt.Fprintf(w, "capacity:  %d bytes\n", v.Capacity())
	fmt.Fprintf(w, "count:     %d\n", v.Count())
	fmt.Fprintf(w, "peak:      %d bytes of %d budget\n", rc.PeakMemoryUsage(), rc.MemoryLimit())

	v.Clear()

	stats := tracker.Stats()
	fmt.Fprintf(w, "allocator: %d allocs, %d frees, %d live\n", stats.Allocs, stats.Frees, stats.LiveBuffers)
	if err := tracker.Err(); err != nil {
		return err
	}

	if context.Bool(metricsFlag.Name) {
		return writeMetrics(w, reg)
	}
	return nil
}

// newAllocator returns the named allocator charged against rc and a function
// that frees any memory it still holds.
func newAllocator(name string, rc *resource.Controller) (alloc.Allocator, func(), error) {
	switch name {
	case "heap":
		return alloc.NewLimited(alloc.Heap{}, rc), func() {}, nil
	case "aligned":
		return alloc.NewLimited(alloc.Aligned{}, rc), func() {}, nil
	case "mmap":
		return alloc.NewLimited(alloc.NewMmap(), rc), func() {}, nil
	case "arena":
		// The arena holds its chunks until Free, so the budget is charged per chunk.
		chunk := alloc.DefaultChunkSize
		if limit := rc.MemoryLimit(); limit > 0 && limit < int64(chunk) {
			chunk = int(limit)
		}
		a := alloc.NewArena(chunk, alloc.WithMemoryAcquirer(rc))
		return a, a.Free, nil
	default:
		return nil, nil, fmt.Errorf("unknown allocator %q", name)
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
