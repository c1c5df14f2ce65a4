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

// Params holds the fixed reduction/margin constants search_node reads
// at each step; kept in their own file the way the teacher keeps its
// tuning tables out of alphabeta.go's control flow.
package search

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// lmrMinDepth/lmrMinMovesSearched gate late-move reduction (spec.md
// §4.6 step 9d): depth >= 3, moves_searched >= 4, reduce by one ply
// and re-search full depth only if the reduced search beats alpha.
const (
	lmrMinDepth         = 3
	lmrMinMovesSearched = 4
	lmrReduction        = 1
)

// futilityMargin[depth] bounds the forward futility pruning of step
// 9a: only computed for depth in {1,2}; index 0 is unused.
var futilityMargin = [3]Value{0, 200, 400}

// rfpMargin[depth] is the reverse futility pruning margin of step 5:
// only computed for depth in {1,2,3}; index 0 is unused.
var rfpMargin = [4]Value{0, 200, 300, 500}

// aspirationWindow is the half-width of the aspiration window search
// (spec.md §4.6 "Aspiration windows"): try prev_score +/- W first, and
// on fail-high/fail-low re-search with the full (-inf, +inf) window.
const aspirationWindow = Value(50)
