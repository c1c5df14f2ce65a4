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

package types

import "fmt"

// Value is a centipawn score, always from the side-to-move's point of
// view at the node it was produced. Fits the 16-bit score field of a
// transposition table slot (§4.5).
type Value int16

const (
	ValueZero     Value = 0
	ValueDraw     Value = 0
	ValueInfinite Value = 32000
	ValueMin            = -ValueInfinite
	ValueMax            = ValueInfinite
	ValueNA       Value = -32768

	// MateValue is the score of delivering mate on the current ply; see
	// spec.md §4.6 "Mate scoring" (mate score = MateValue - ply).
	MateValue Value = 30000

	// MateThreshold: any |score| at or above this is "near mate" for the
	// guards that must not treat a mate score as an ordinary centipawn
	// value (aspiration windows, RFP/null-move bound checks).
	MateThreshold Value = MateValue - 100

	// MaxDepth bounds iterative deepening and ply-indexed arrays (killers, PV).
	MaxDepth = 128
)

func (v Value) IsValid() bool {
	return v != ValueNA
}

// IsMate reports whether v encodes a forced mate for either side.
func (v Value) IsMate() bool {
	return v >= MateThreshold || v <= -MateThreshold
}

// MateIn returns the number of moves (plies+1)/2 to deliver (positive)
// or receive (negative) mate, given v is a mate score; undefined otherwise.
func (v Value) MateIn() int {
	if v > 0 {
		return int(MateValue-v+1) / 2
	}
	return -int(MateValue+v+1) / 2
}

func (v Value) String() string {
	if !v.IsValid() {
		return "n/a"
	}
	if v.IsMate() {
		return fmt.Sprintf("mate %d", v.MateIn())
	}
	return fmt.Sprintf("cp %d", int(v))
}
