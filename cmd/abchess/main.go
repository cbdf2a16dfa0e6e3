// Command abchess searches one position with the parallel alpha-beta engine
// and prints the best move.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"abchess/board"
	"abchess/engine"
)

const (
	exitOK     = 0
	exitSearch = 1
	exitUsage  = 2
)

type options struct {
	fen      string
	depth    int
	keep     int
	workers  int
	timeout  time.Duration
	profile  string
	logLevel string
	stats    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("abchess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.fen, "fen", board.FENStartPos, "FEN of the position to search")
	fs.IntVar(&o.depth, "ab-search-depth", 4, "search depth in plies, 1..255")
	fs.IntVar(&o.keep, "ab-keep-depth", engine.DefaultMaxKept, "children kept per node between iterations, 0..255")
	fs.IntVar(&o.workers, "workers", engine.DefaultWorkers, "number of search goroutines")
	fs.DurationVar(&o.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")
	fs.StringVar(&o.profile, "profile", "", "reset: perft divide at the search depth; tree: retained tree per root move")
	fs.StringVar(&o.logLevel, "log-level", "info", "zerolog level for stderr logging")
	fs.BoolVar(&o.stats, "stats", false, "print search statistics")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	switch {
	case o.depth < 1 || o.depth > engine.MaxSearchDepth:
		return o, fmt.Errorf("--ab-search-depth %d not in [1,%d]", o.depth, engine.MaxSearchDepth)
	case o.keep < 0 || o.keep > engine.MaxKeptLimit:
		return o, fmt.Errorf("--ab-keep-depth %d not in [0,%d]", o.keep, engine.MaxKeptLimit)
	case o.workers < 1:
		return o, fmt.Errorf("--workers %d must be positive", o.workers)
	case o.timeout < 0:
		return o, fmt.Errorf("--timeout %s must not be negative", o.timeout)
	case o.profile != "" && o.profile != "reset" && o.profile != "tree":
		return o, fmt.Errorf("--profile %q must be reset or tree", o.profile)
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "abchess: %v\n", err)
		return exitUsage
	}

	level, err := zerolog.ParseLevel(o.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "abchess: --log-level: %v\n", err)
		return exitUsage
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	pos, err := board.FromFEN(o.fen)
	if err != nil {
		fmt.Fprintf(stderr, "abchess: --fen: %v\n", err)
		return exitUsage
	}

	if o.profile == "reset" {
		engine.WriteDivide(stdout, &pos, o.depth)
	}

	ctx := log.Logger.WithContext(context.Background())
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}
	req := engine.Request{
		FEN:      o.fen,
		MaxDepth: o.depth,
		MaxKept:  o.keep,
		Workers:  o.workers,
	}
	res, err := engine.SearchPosition(ctx, pos, req)
	aborted := errors.Is(err, engine.ErrAborted)
	if err != nil && !aborted {
		log.Error().Err(err).Msg("search-failed")
		return exitSearch
	}

	fmt.Fprintf(stdout, "info depth %d score %s nodes %d time %d pv %s\n",
		res.Depth, scoreString(res.Score), res.Nodes, res.Elapsed.Milliseconds(), res.PVString())
	if aborted {
		fmt.Fprintf(stdout, "info string %v\n", err)
	}
	if o.stats {
		res.Stats.Dump(stdout)
	}
	if o.profile == "tree" {
		engine.WriteTree(stdout, res)
	}
	fmt.Fprintf(stdout, "bestmove %s\n", res.Move)
	return exitOK
}

// scoreString renders a white-relative score in centipawns, or names the
// side delivering mate.
func scoreString(s int32) string {
	switch s {
	case engine.WhiteCheckmate:
		return "mate white"
	case engine.BlackCheckmate:
		return "mate black"
	}
	return fmt.Sprintf("cp %d", s/10_000)
}
