//
// chesscore - a bitboard chess engine core in Go
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

// Package search implements the engine's iterative-deepening alpha-beta
// search (spec.md §4.6): negamax with a transposition table, null-move
// and reverse-futility pruning, late-move reductions, killer/history
// move ordering and a capture-only quiescence search at the horizon.
// A single Search value runs one search at a time; StartSearch spawns
// it in a goroutine so the caller's own goroutine (typically a UCI
// command loop) stays responsive to "stop".
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/history"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/moveconv"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/transpositiontable"
	. "github.com/frankkopp/chesscore/internal/types"
	"github.com/frankkopp/chesscore/internal/zobrist"
)

// Result is what a finished (or stopped) search reports back.
type Result struct {
	BestMove   Move
	PonderMove Move
	Value      Value
	Depth      int
	ExtraDepth int
	Nodes      uint64
	Duration   time.Duration
}

// Search owns the mutable state of one engine search: the
// transposition table and history heuristics persist across searches
// within a game (NewGame resets them), everything else is reset at
// the start of each Search.StartSearch.
type Search struct {
	log *logging.Logger

	running *semaphore.Weighted

	tt   *transpositiontable.Table
	hist *history.Table
	mg   *movegen.Generator

	stopFlag  bool
	deadline  time.Time
	limits    Limits
	nodes     uint64
	stats     Statistics
	path      []zobrist.Key
	pv        []pvLine
	lastResult Result
}

// NewSearch returns a Search with a fresh transposition table sized
// per config.Settings.Search.TTSizeMB and empty history tables.
func NewSearch() *Search {
	return &Search{
		log:     logging.GetSearchLog(),
		running: semaphore.NewWeighted(1),
		tt:      transpositiontable.New(config.Settings.Search.TTSizeMB),
		hist:    history.NewTable(),
		mg:      movegen.NewGenerator(),
	}
}

// NewGame resets state that must not leak across games: the
// transposition table and the history/killer tables.
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	s.hist.Clear()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.running.TryAcquire(1) {
		return true
	}
	s.running.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.running.Acquire(context.Background(), 1)
	s.running.Release(1)
}

// StopSearch asks a running search to stop at its next check and
// blocks until it has. A no-op if nothing is running.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// StartSearch runs a search on a private copy of p under the given
// limits, in its own goroutine, and returns immediately once the
// search has actually started. Use WaitWhileSearching or StopSearch
// to wait for or cut short the result; LastResult reads it back.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	if !s.running.TryAcquire(1) {
		s.log.Warning("search already running, ignoring StartSearch")
		return
	}
	go s.run(&p, sl)
}

// LastResult returns the result of the most recently finished search.
// Safe to call once WaitWhileSearching/StopSearch has returned.
func (s *Search) LastResult() Result {
	return s.lastResult
}

func (s *Search) run(p *position.Position, sl Limits) {
	defer s.running.Release(1)

	start := time.Now()
	s.stopFlag = false
	s.nodes = 0
	s.stats = Statistics{}
	s.limits = sl
	s.path = s.path[:0]
	s.tt.NewSearch()

	if sl.TimeControl {
		s.deadline = start.Add(timeControlBudget(sl, p.SideToMove()))
	} else {
		s.deadline = time.Time{}
	}

	result := s.iterativeDeepening(p)
	result.Duration = time.Since(start)
	result.Nodes = s.nodes
	s.lastResult = result

	s.log.Infof("search finished: %s %s depth %d nodes %s in %s",
		moveconv.ToUci(result.BestMove), moveconv.FormatScore(result.Value),
		result.Depth, out.Sprintf("%d", result.Nodes), result.Duration)
}

// iterativeDeepening runs rootSearch at increasing depths, stopping
// when a limit fires, and keeps the result of the last fully finished
// iteration - a partial, interrupted iteration is discarded because
// it may not have established a PV (spec.md §4.6 "Iterative deepening").
func (s *Search) iterativeDeepening(p *position.Position) Result {
	if draw, mate := s.rootGameOver(p); mate || draw {
		if mate {
			return Result{Value: -MateValue}
		}
		return Result{Value: ValueDraw}
	}

	maxDepth := MaxDepth
	if s.limits.Depth > 0 && s.limits.Depth < maxDepth {
		maxDepth = s.limits.Depth
	}

	s.pv = make([]pvLine, MaxDepth+1)

	var result Result
	alpha, beta := -ValueInfinite, ValueInfinite
	bestValue := ValueZero

	for depth := 1; depth <= maxDepth; depth++ {
		s.stats.CurrentIterationDepth = depth

		var value Value
		if config.Settings.Search.UseAspiration && depth >= 3 && !bestValue.IsMate() {
			value = s.aspirationSearch(p, depth, bestValue)
		} else {
			value = s.rootSearch(p, depth, alpha, beta)
		}

		if s.stopConditions() && depth > 1 {
			break
		}
		bestValue = value

		result = Result{
			BestMove: s.pv[0].first(),
			Value:    value,
			Depth:    depth,
			ExtraDepth: s.stats.CurrentExtraSearchDepth,
		}
		if len(s.pv[0]) > 1 {
			result.PonderMove = s.pv[0][1]
		}

		if s.limits.Mate > 0 && value.IsMate() && value.MateIn() <= s.limits.Mate {
			break
		}
	}
	return result
}

// aspirationSearch searches with a window of +/- aspirationWindow
// around the previous iteration's value; if the result falls on or
// outside that window it re-searches once with the full
// (-ValueInfinite, ValueInfinite) window.
func (s *Search) aspirationSearch(p *position.Position, depth int, previous Value) Value {
	alpha, beta := previous-aspirationWindow, previous+aspirationWindow
	value := s.rootSearch(p, depth, alpha, beta)
	if s.stopConditions() {
		return value
	}
	if value <= alpha || value >= beta {
		s.stats.AspirationResearches++
		return s.rootSearch(p, depth, -ValueInfinite, ValueInfinite)
	}
	return value
}

// stopConditions reports whether the search must unwind now: an
// explicit stop, a node budget, or a time budget.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return true
	}
	return false
}

// rootGameOver reports checkmate/stalemate on p with no move made -
// iterativeDeepening's entry check, distinct from the recursive
// search's own mate/stalemate detection at ply>0.
func (s *Search) rootGameOver(p *position.Position) (draw, mate bool) {
	if s.mg.HasLegalMove(p) {
		return false, false
	}
	if p.InCheck(p.SideToMove()) {
		return false, true
	}
	return true, false
}

// evaluate scores p in centipawns from the side to move's perspective,
// via the stateless package-level evaluator.Evaluate.
func (s *Search) evaluate(p *position.Position) Value {
	s.stats.Evaluations++
	return Value(evaluator.Evaluate(p))
}

// pushPath/popPath track the path of positions visited by this search
// from the root, keyed by Zobrist hash, so search-local repetitions
// can be recognized even though the engine has no notion of full game
// history below the root (spec.md §4.6 "Draw detection").
func (s *Search) pushPath(key zobrist.Key) { s.path = append(s.path, key) }
func (s *Search) popPath()                  { s.path = s.path[:len(s.path)-1] }

// isDraw reports a draw by the 50-move rule or by a repetition of the
// current position already seen earlier on this search's path.
func (s *Search) isDraw(p *position.Position) bool {
	if p.HalfmoveClock() >= 100 {
		return true
	}
	key := p.ZobristHash()
	// the caller pushes the current position before recursing; it is
	// not an earlier occurrence of itself.
	earlier := s.path
	if n := len(earlier); n > 0 && earlier[n-1] == key {
		earlier = earlier[:n-1]
	}
	for _, k := range earlier {
		if k == key {
			return true
		}
	}
	return false
}
