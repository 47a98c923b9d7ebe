// Package main provides the the-crew-solve CLI: a single-shot front
// end that reads one deal description, runs the solver, and writes
// one result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joshreed13/the-crew/internal/solver"
	"github.com/joshreed13/the-crew/internal/wire"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	inPath      string
	outPath     string
	workers     int
	timeout     time.Duration
	showVersion bool
)

func init() {
	flag.StringVar(&inPath, "in", "", "Input request JSON file (default: stdin)")
	flag.StringVar(&outPath, "out", "", "Output response JSON file (default: stdout)")
	flag.IntVar(&workers, "workers", 1, "Number of search workers (1 = sequential, 0 = auto-detect CPU count, >1 = parallel root fan-out)")
	flag.DurationVar(&timeout, "timeout", 0, "Abort the search after this long (0 = no timeout)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("the-crew-solve %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	req, err := readRequest(inPath)
	if err != nil {
		log.Fatalf("reading request: %v", err)
	}

	if errs := wire.Validate(req); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}

	state, err := wire.ToState(req)
	if err != nil {
		log.Fatalf("converting request: %v", err)
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	var witness solver.Witness
	var ok bool
	if workers == 1 && timeout == 0 {
		witness, ok = solver.Solve(state)
	} else {
		witness, ok = solver.SolveParallel(ctx, state, workers)
	}
	elapsed := time.Since(start)

	resp := wire.Response{
		Success:  ok,
		Result:   ok,
		Duration: elapsed.Milliseconds(),
	}
	if ok {
		resp.Witness = wire.FromWitness(witness)
	}

	if err := writeResponse(outPath, resp); err != nil {
		log.Fatalf("writing response: %v", err)
	}
}

func readRequest(path string) (wire.Request, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return wire.Request{}, err
		}
		defer f.Close()
		r = f
	}

	var req wire.Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return wire.Request{}, fmt.Errorf("decoding request: %w", err)
	}
	return req, nil
}

func writeResponse(path string, resp wire.Response) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
