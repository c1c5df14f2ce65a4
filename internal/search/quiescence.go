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

package search

import (
	"sort"

	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// deltaMargin is the quiescence delta-pruning margin (spec.md §4.6
// "Quiescence search"): a node whose stand-pat eval trails alpha by
// more than this is abandoned without generating captures at all.
const deltaMargin = 900

// qsearch extends the search past the horizon through captures only
// (all moves when in check), with a stand-pat lower bound and delta
// pruning, until the position is quiet.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value) (result Value) {
	if trace {
		s.traceEnter(ply, 0, alpha, beta, false, "qsearch")
		defer func() { s.traceExit(ply, 0, alpha, beta, false, "qsearch", result) }()
	}
	if s.stopConditions() {
		return ValueNA
	}
	if ply > s.stats.CurrentExtraSearchDepth {
		s.stats.CurrentExtraSearchDepth = ply
	}
	if ply >= MaxDepth {
		return s.evaluate(p)
	}

	hasCheck := p.InCheck(p.SideToMove())

	var bestValue Value
	if !hasCheck {
		staticEval := s.evaluate(p)
		if staticEval >= beta {
			return staticEval
		}
		if staticEval > alpha {
			alpha = staticEval
		}
		if staticEval+deltaMargin < alpha {
			return alpha
		}
		bestValue = staticEval
	} else {
		bestValue = -MateValue + Value(ply)
	}

	mode := movegen.GenCaptures
	if hasCheck {
		mode = movegen.GenAll
	}
	moves := s.mg.GenerateLegal(p, mode)
	if len(moves) == 0 {
		if hasCheck {
			return -MateValue + Value(ply)
		}
		return bestValue
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLva(p, moves[i]) > mvvLva(p, moves[j])
	})

	for _, m := range moves {
		if !hasCheck && !isCapturingMove(p, m) {
			continue
		}

		u := p.Make(m)
		s.pushPath(p.ZobristHash())
		s.nodes++
		value := -s.qsearch(p, ply+1, -beta, -alpha)
		s.popPath()
		p.Unmake(m, u)

		if s.stopConditions() {
			return ValueNA
		}
		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				if value >= beta {
					return bestValue
				}
			}
		}
	}
	return bestValue
}

func mvvLva(p *position.Position, m Move) int {
	if !isCapturingMove(p, m) {
		return -1
	}
	victim := p.PieceAt(m.To()).TypeOf().ValueOf()
	attacker := p.PieceAt(m.From()).TypeOf().ValueOf()
	return int(victim)*16 - int(attacker)
}
