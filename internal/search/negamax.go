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

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/history"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// rootSearch searches every legal move at the root with the normal
// node search one ply deeper, keeping the deepest line in s.pv[0].
// Root moves are not reduced or pruned: spec.md §4.6 treats every
// root move as worth a full-width search since their relative order
// only matters once all have a value.
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) (best Value) {
	if trace {
		s.traceEnter(0, depth, alpha, beta, true, "root")
		defer func() { s.traceExit(0, depth, alpha, beta, true, "root", best) }()
	}
	moves := s.mg.GenerateLegal(p, movegen.GenAll)
	if len(moves) == 0 {
		return ValueZero
	}
	s.orderMoves(p, moves, 0, s.pv[0].first())

	best = -ValueInfinite
	for i, m := range moves {
		u := p.Make(m)
		s.pushPath(p.ZobristHash())
		s.nodes++

		var value Value
		if i == 0 {
			value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
		} else {
			value = -s.search(p, depth-1, 1, -alpha-1, -alpha, false, true)
			if value > alpha && value < beta && !s.stopConditions() {
				value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
			}
		}

		s.popPath()
		p.Unmake(m, u)

		if s.stopConditions() && depth > 1 {
			return best
		}
		if value > best {
			best = value
			savePV(&s.pv[0], m, s.pv[1])
			if value > alpha {
				alpha = value
			}
		}
	}
	return best
}

// search is the recursive alpha-beta node of spec.md §4.6's
// search_node: TT probe, reverse-futility and null-move pruning, move
// ordering by TT move / MVV-LVA / killers / history, futility pruning
// and late-move reduction with PVS re-search, check extension, and
// killer/history updates on a beta cutoff.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, isPV, doNull bool) (result Value) {
	if trace {
		s.traceEnter(ply, depth, alpha, beta, isPV, "search")
		defer func() { s.traceExit(ply, depth, alpha, beta, isPV, "search", result) }()
	}
	if s.stopConditions() {
		return ValueNA
	}
	if depth <= 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta)
	}
	if ply > s.stats.CurrentExtraSearchDepth {
		s.stats.CurrentExtraSearchDepth = ply
	}

	// Mate distance pruning: a mate already found closer to the root
	// makes any longer mate irrelevant to this node.
	if alpha < -MateValue+Value(ply) {
		alpha = -MateValue + Value(ply)
	}
	if beta > MateValue-Value(ply) {
		beta = MateValue - Value(ply)
	}
	if alpha >= beta {
		return alpha
	}

	if ply > 0 && s.isDraw(p) {
		return ValueDraw
	}

	us := p.SideToMove()
	hasCheck := p.InCheck(us)

	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		res := s.tt.Probe(p.ZobristHash(), int8(depth), alpha, beta)
		if res.Hit {
			s.stats.TTHits++
			ttMove = res.Move
			if res.ScoreUsable {
				s.stats.TTCuts++
				return valueFromTT(res.Score, ply)
			}
		} else {
			s.stats.TTMisses++
		}
	}

	// Reverse futility pruning (step 5): a static eval already far
	// above beta makes it very likely any move here beats beta too.
	if config.Settings.Search.UseRFP && !hasCheck && depth >= 1 && depth <= 3 && beta < MateThreshold {
		staticEval := s.evaluate(p)
		if staticEval-rfpMargin[depth] >= beta {
			s.stats.RfpPrunings++
			return staticEval
		}
	}

	// Null move pruning (step 6): if passing the move still leaves us
	// at or above beta, a real move almost certainly does too - unless
	// we have only king and pawns left, where null moves are unsound
	// (zugzwang). Fixed reduction R=2.
	const nullMoveR = 2
	if config.Settings.Search.UseNullMove && doNull && !isPV && !hasCheck &&
		depth >= 3 && beta < MateThreshold && hasNonPawnMaterial(p, us) {
		newDepth := depth - 1 - nullMoveR
		if newDepth < 0 {
			newDepth = 0
		}
		u := p.MakeNull()
		nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false)
		p.UnmakeNull(u)

		if s.stopConditions() {
			return ValueNA
		}
		if nValue >= beta {
			s.stats.NullMoveCuts++
			return beta
		}
	}

	moves := s.mg.GenerateLegal(p, movegen.GenAll)
	if len(moves) == 0 {
		if hasCheck {
			s.stats.Checkmates++
			return -MateValue + Value(ply)
		}
		s.stats.Stalemates++
		return ValueDraw
	}
	s.orderMoves(p, moves, ply, ttMove)

	// Step 8: futility_base is only computed for depth in {1,2}, not in
	// check, with alpha not near mate.
	futilityActive := config.Settings.Search.UseFP && !hasCheck && depth >= 1 && depth <= 2 && alpha > -MateThreshold
	var futilityBase Value
	if futilityActive {
		futilityBase = s.evaluate(p)
	}

	bestValue := -ValueInfinite
	bestMove := MoveNone
	nodeType := NodeUpperBound
	movesSearched := 0

	for _, m := range moves {
		isCapture := isCapturingMove(p, m)

		// Step 9a: futility pruning - skip a non-capture once the
		// static eval plus margin can't reach alpha, past the first move.
		if futilityActive && !isCapture && movesSearched > 0 &&
			futilityBase+futilityMargin[depth] <= alpha {
			s.stats.FpPrunings++
			continue
		}

		u := p.Make(m)
		givesCheck := p.InCheck(p.SideToMove())

		// Step 9c: check extension - a move that gives check searches
		// at the unreduced current depth instead of depth-1.
		newDepth := depth - 1
		if config.Settings.Search.UseCheckExt && givesCheck {
			s.stats.CheckExtension++
			newDepth = depth
		}
		s.pushPath(p.ZobristHash())
		s.nodes++

		var value Value
		if movesSearched == 0 {
			value = -s.search(p, newDepth, ply+1, -beta, -alpha, isPV, true)
		} else if config.Settings.Search.UseLMR && !isCapture && !hasCheck && !givesCheck &&
			depth >= lmrMinDepth && movesSearched >= lmrMinMovesSearched {
			s.stats.LmrReductions++
			value = -s.search(p, newDepth-lmrReduction, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && !s.stopConditions() {
				s.stats.LmrResearches++
				value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
			}
		} else {
			value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
		}

		movesSearched++
		s.popPath()
		p.Unmake(m, u)

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				nodeType = NodeExact
				savePV(&s.pv[ply], m, s.pv[ply+1])
				if value >= beta {
					s.stats.BetaCuts++
					if movesSearched == 1 {
						s.stats.BetaCuts1st++
					}
					if !isCapture {
						if config.Settings.Search.UseKiller {
							s.hist.StoreKiller(ply, m)
						}
						s.hist.AddHistory(us, m.From(), m.To(), depth)
					}
					nodeType = NodeLowerBound
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT {
		s.tt.Store(p.ZobristHash(), valueToTT(bestValue, ply), bestMove, int8(depth), nodeType)
	}
	return bestValue
}

// orderMoves sorts moves in place: the TT move first, then captures
// by MVV-LVA, killers, and quiet moves by history score (spec.md
// §4.6 step 7 "Move ordering").
func (s *Search) orderMoves(p *position.Position, moves []Move, ply int, ttMove Move) {
	us := p.SideToMove()
	score := func(m Move) int32 {
		switch {
		case m == ttMove:
			return 1 << 30
		case isCapturingMove(p, m):
			victim := p.PieceAt(m.To()).TypeOf().ValueOf()
			attacker := p.PieceAt(m.From()).TypeOf().ValueOf()
			return 1<<20 + int32(victim)*16 - int32(attacker)
		case s.hist.IsKiller(ply, m):
			return int32(history.KillerBonus())
		default:
			return s.hist.Score(us, m.From(), m.To())
		}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return score(moves[i]) > score(moves[j])
	})
}

func isCapturingMove(p *position.Position, m Move) bool {
	return m.IsEnPassant() || p.PieceAt(m.To()) != PieceNone
}

// hasNonPawnMaterial reports whether side c has any piece other than
// king and pawns, the usual guard against null-move pruning producing
// an unsound cutoff in a zugzwang position.
func hasNonPawnMaterial(p *position.Position, c Color) bool {
	for pt := Knight; pt <= Queen; pt++ {
		if p.PiecesOf(c, pt) != 0 {
			return true
		}
	}
	return false
}

// valueToTT/valueFromTT translate between a score relative to the
// current node's ply and one relative to mate-at-root, so a mate
// score read back from a different ply still reports the right
// distance (spec.md §4.5 "Mate scores are ply-adjusted on store/probe").
func valueToTT(v Value, ply int) Value {
	if !v.IsValid() {
		return v
	}
	switch {
	case v >= MateThreshold:
		return v + Value(ply)
	case v <= -MateThreshold:
		return v - Value(ply)
	default:
		return v
	}
}

func valueFromTT(v Value, ply int) Value {
	if !v.IsValid() {
		return v
	}
	switch {
	case v >= MateThreshold:
		return v - Value(ply)
	case v <= -MateThreshold:
		return v + Value(ply)
	default:
		return v
	}
}
