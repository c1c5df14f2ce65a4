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

package transpositiontable

import (
	"github.com/frankkopp/chesscore/internal/zobrist"

	. "github.com/frankkopp/chesscore/internal/types"
)

// entry is one transposition table slot: full hash, 16-bit score,
// 16-bit move, signed 8-bit depth, node type and age (spec.md §4.5).
// The fields total 15 bytes; the 8-byte Key forces 8-byte struct
// alignment, so Go pads this to exactly the spec's 16 bytes without
// needing the teacher's manual vmeta bit-packing.
type entry struct {
	key      zobrist.Key
	move     Move
	score    Value
	depth    int8
	nodeType NodeType
	age      uint8
}

const entrySize = 16

func (e *entry) isEmpty() bool {
	return e.key == 0
}
