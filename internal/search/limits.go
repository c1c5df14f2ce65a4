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
	"time"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Limits bounds a single search, mirroring the handful of ways spec.md
// §6 lets a caller stop a search: a fixed depth or node count, a fixed
// move time, or a clock/increment pair the engine must budget itself.
type Limits struct {
	Infinite bool
	Depth    int
	Nodes    uint64
	Mate     int

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// NewLimits returns an infinite search: no depth, node or time bound.
func NewLimits() Limits {
	return Limits{Infinite: true}
}

// defaultMovesToGo is the assumed remaining-moves count used to turn a
// clock/increment pair into a per-move budget when the game protocol
// did not supply one.
const defaultMovesToGo = 30

// timeControlBudget estimates how long to spend on the move to search,
// grounded on the teacher's setupTimeControl: either the supplied move
// time minus a safety margin, or remaining-time-plus-increment spread
// over the estimated moves left, trimmed by a further safety margin
// that grows when the resulting budget is already small.
func timeControlBudget(sl Limits, us Color) time.Duration {
	const uciOverhead = 20 * time.Millisecond

	if sl.MoveTime > 0 {
		if sl.MoveTime <= uciOverhead {
			return sl.MoveTime
		}
		return sl.MoveTime - uciOverhead
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft <= 0 {
		movesLeft = defaultMovesToGo
	}

	var timeLeft, inc time.Duration
	if us == White {
		timeLeft, inc = sl.WhiteTime, sl.WhiteInc
	} else {
		timeLeft, inc = sl.BlackTime, sl.BlackInc
	}
	budget := timeLeft + time.Duration(movesLeft)*inc
	limit := budget / time.Duration(movesLeft)

	if limit.Milliseconds() < 100 {
		return time.Duration(float64(limit) * 0.8)
	}
	return time.Duration(float64(limit) * 0.9)
}
