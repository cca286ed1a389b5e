//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Command evalbench drives the evaluator and the perft move counter over a
// fixed list of reference positions, one goroutine per position, and prints
// a timing/result report. Each goroutine owns its own Evaluator instance -
// and therefore its own pawn-king cache - never sharing evaluation state
// with any other goroutine.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkg/profile"

	"github.com/frankkopp/FrankyGo/internal/config"
	"github.com/frankkopp/FrankyGo/internal/evaluator"
	"github.com/frankkopp/FrankyGo/internal/logging"
	"github.com/frankkopp/FrankyGo/internal/movegen"
	"github.com/frankkopp/FrankyGo/internal/position"
)

var out = message.NewPrinter(language.German)

// benchPosition is one reference position to evaluate and perft-count.
type benchPosition struct {
	name       string
	fen        string
	perftDepth int
}

var benchPositions = []benchPosition{
	{"startpos", position.StartFen, 5},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", 4},
	{"pos3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", 5},
	{"pos5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ -", 4},
	{"pos6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - -", 4},
}

// benchResult is what one goroutine reports back for its position.
type benchResult struct {
	name     string
	evalMs   time.Duration
	value    int
	perft    uint64
	perftMs  time.Duration
	perftNps uint64
}

func runOne(bp benchPosition) (*benchResult, error) {
	p, err := position.NewPositionFen(bp.fen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", bp.name, err)
	}

	eval := evaluator.NewEvaluator()
	evalStart := time.Now()
	value := eval.Evaluate(p)
	evalElapsed := time.Since(evalStart)

	var perft movegen.Perft
	perftStart := time.Now()
	perft.StartPerft(bp.fen, bp.perftDepth, false)
	perftElapsed := time.Since(perftStart)

	nps := (perft.Nodes * uint64(time.Second.Nanoseconds())) / uint64(perftElapsed.Nanoseconds()+1)

	return &benchResult{
		name:     bp.name,
		evalMs:   evalElapsed,
		value:    int(value),
		perft:    perft.Nodes,
		perftMs:  perftElapsed,
		perftNps: nps,
	}, nil
}

func main() {
	profileFlag := flag.Bool("profile", false, "enable CPU profiling for the duration of the run")
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	config.Setup()
	log := logging.GetLog()
	log.Info("evalbench starting")

	results := make([]*benchResult, len(benchPositions))
	g, _ := errgroup.WithContext(context.Background())
	for i, bp := range benchPositions {
		i, bp := i, bp
		g.Go(func() error {
			r, err := runOne(bp)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("evalbench run failed: %v", err)
		return
	}

	out.Printf("Evaluation / Perft Benchmark Report\n")
	out.Printf("=============================================\n")
	for _, r := range results {
		out.Printf("%-10s eval=%-8d (%s)  perft(d)=%d nodes=%d  %s  %d nps\n",
			r.name, r.value, r.evalMs, benchDepthOf(r.name), r.perft, r.perftMs, r.perftNps)
	}
}

func benchDepthOf(name string) int {
	for _, bp := range benchPositions {
		if bp.name == name {
			return bp.perftDepth
		}
	}
	return 0
}
