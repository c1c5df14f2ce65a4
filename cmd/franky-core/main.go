/*
 * chesscore - a bitboard chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// franky-core is a thin CLI over the engine core: give it a FEN and
// either a perft depth or a search budget and it prints the result.
// It is not a UCI driver - there is no line protocol here, just flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/moveconv"
	"github.com/frankkopp/chesscore/internal/perft"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/search"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", "", "FEN of the position to analyze (default: starting position)")
	perftDepth := flag.Int("perft", 0, "run perft to this depth instead of searching")
	depth := flag.Int("depth", 0, "search depth limit (0 = unlimited, bounded by -movetime)")
	moveTimeMs := flag.Int("movetime", 0, "search time budget in milliseconds (0 = unlimited, bounded by -depth)")
	profileMode := flag.String("profile", "", "enable profiling: cpu|mem|block (written to the working directory)")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	logging.GetLog()

	if p := startProfile(*profileMode); p != nil {
		defer p.Stop()
	}

	pos, err := loadPosition(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid FEN:", err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		runPerft(pos, *perftDepth)
		return
	}
	runSearch(pos, *depth, *moveTimeMs)
}

func loadPosition(fen string) (*position.Position, error) {
	if fen == "" {
		return position.New(), nil
	}
	return position.NewFromFen(fen)
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."))
	case "block":
		return profile.Start(profile.BlockProfile, profile.ProfilePath("."))
	default:
		return nil
	}
}

func runPerft(p *position.Position, depth int) {
	start := time.Now()
	nodes, err := perft.CountParallel(p, depth)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft failed:", err)
		os.Exit(1)
	}
	out.Printf("perft(%d) = %d nodes in %s (%d nps)\n",
		depth, nodes, elapsed, int64(float64(nodes)/elapsed.Seconds()))
}

func runSearch(p *position.Position, depth, moveTimeMs int) {
	s := search.NewSearch()
	limits := search.NewLimits()
	if depth > 0 {
		limits.Infinite = false
		limits.Depth = depth
	}
	if moveTimeMs > 0 {
		limits.Infinite = false
		limits.TimeControl = true
		limits.MoveTime = time.Duration(moveTimeMs) * time.Millisecond
	}

	s.StartSearch(*p, limits)
	s.WaitWhileSearching()
	result := s.LastResult()

	out.Printf("bestmove %s score %s depth %d nodes %d time %s\n",
		moveconv.ToUci(result.BestMove), moveconv.FormatScore(result.Value),
		result.Depth, result.Nodes, result.Duration)
}
