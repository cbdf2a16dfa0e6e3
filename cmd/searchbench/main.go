package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"abchess/board"
	"abchess/engine"
)

type options struct {
	depth      int
	repeat     int
	fen        string
	workers    int
	keep       int
	cpuProfile string
	memProfile string
}

func main() {
	// --- Flags ---
	var o options
	flag.IntVar(&o.depth, "depth", 5, "search depth in plies")
	flag.IntVar(&o.repeat, "repeat", 1, "number of searches to run")
	flag.StringVar(&o.fen, "fen", "", "FEN to search (empty = startpos)")
	flag.IntVar(&o.workers, "workers", runtime.NumCPU(), "search goroutines")
	flag.IntVar(&o.keep, "keep", engine.DefaultMaxKept, "children kept per node")
	flag.StringVar(&o.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	flag.StringVar(&o.memProfile, "memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(o, os.Stdout); err != nil {
		log.Error().Err(err).Msg("searchbench-failed")
		os.Exit(1)
	}
}

// run returns instead of exiting so the deferred profile writers always run.
func run(o options, out io.Writer) error {
	fen := board.FENStartPos
	if o.fen != "" {
		fen = o.fen
	}
	req := engine.Request{FEN: fen, MaxDepth: o.depth, MaxKept: o.keep, Workers: o.workers}
	if err := req.Validate(); err != nil {
		return err
	}

	// --- Optional CPU profiling setup ---
	if o.cpuProfile != "" {
		cpuFile, err := os.Create(o.cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			cpuFile.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fmt.Fprintf(out, "searchbench: fen=%q depth=%d workers=%d repeat=%d\n", fen, req.MaxDepth, req.Workers, o.repeat)

	ctx := log.Logger.WithContext(context.Background())
	var nodes uint64
	startAll := time.Now()
	for i := 0; i < o.repeat; i++ {
		res, err := engine.Search(ctx, req)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i+1, err)
		}
		nodes += res.Nodes
		fmt.Fprintf(out, "iteration %d: bestmove %s score %d nodes %d time=%v\n",
			i+1, res.Move, res.Score, res.Nodes, res.Elapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Fprintf(out, "total time: %v nodes: %d nps: %.0f\n", totalElapsed, nodes, float64(nodes)/totalElapsed.Seconds())

	// --- Optional heap profile at the end ---
	if o.memProfile != "" {
		f, err := os.Create(o.memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %w", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %w", err)
		}
	}
	return nil
}
