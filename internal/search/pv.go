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
	. "github.com/frankkopp/chesscore/internal/types"
)

// pvLine is the best-line-so-far at one ply: a move followed by the
// deeper line that justifies it.
type pvLine []Move

// savePV sets move as the best move at this ply and appends the
// continuation already established one ply deeper (spec.md §4.6 "PV
// extraction"): triangular table, not a full-width pv[ply][maxply]
// array.
func savePV(dst *pvLine, move Move, child pvLine) {
	*dst = append((*dst)[:0], move)
	*dst = append(*dst, child...)
}

func (l pvLine) first() Move {
	if len(l) == 0 {
		return MoveNone
	}
	return l[0]
}
