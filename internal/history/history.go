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

// Package history holds the two move-ordering memories search_node
// consults per spec.md §4.6 step 7: killer moves per ply and the
// history heuristic table indexed by side/from/to.
package history

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// killerBonus is the move-ordering weight given to a killer move.
const killerBonus = 2000

// historyOverflow is the ceiling at which the table is halved, so
// no entry grows past 1<<20 across a long search.
const historyOverflow = 1 << 20

// MaxPly bounds the killer table.
const MaxPly = MaxDepth

// Table accumulates move-ordering history across a single search.
// The zero value is ready to use.
type Table struct {
	killers [MaxPly][2]Move
	history [ColorLength][SqLength][SqLength]int32
}

// NewTable returns an empty history/killer table.
func NewTable() *Table {
	return &Table{}
}

// Clear resets both the killer and history tables for a fresh search.
func (t *Table) Clear() {
	*t = Table{}
}

// StoreKiller records m as a killer at ply, keeping the two most
// recent distinct killers (most recent in slot 0).
func (t *Table) StoreKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if t.killers[ply][0] == m {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// Killers returns the two killer moves stored for ply.
func (t *Table) Killers(ply int) (Move, Move) {
	if ply < 0 || ply >= MaxPly {
		return MoveNone, MoveNone
	}
	return t.killers[ply][0], t.killers[ply][1]
}

// IsKiller reports whether m is either killer move at ply.
func (t *Table) IsKiller(ply int, m Move) bool {
	k0, k1 := t.Killers(ply)
	return m == k0 || m == k1
}

// AddHistory bumps the history score for a quiet move that caused a
// beta cutoff at the given depth, by depth² (spec.md §4.6 step 9h),
// halving the whole table first if that would overflow.
func (t *Table) AddHistory(side Color, from, to Square, depth int) {
	bonus := int32(depth * depth)
	if t.history[side][from][to]+bonus >= historyOverflow {
		t.halve()
	}
	t.history[side][from][to] += bonus
}

// Score returns the accumulated history score for a quiet move.
func (t *Table) Score(side Color, from, to Square) int32 {
	return t.history[side][from][to]
}

func (t *Table) halve() {
	for c := White; c <= Black; c++ {
		for from := SqA1; from < SqLength; from++ {
			for to := SqA1; to < SqLength; to++ {
				t.history[c][from][to] /= 2
			}
		}
	}
}

// KillerBonus is the move-ordering weight given to a killer move that
// is not the TT move (spec.md §4.6 step 7).
func KillerBonus() int32 { return killerBonus }
