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

import "strings"

// CastlingRights is a 4-bit mask: WK, WQ, BK, BQ in spec.md §3's order.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingWhite = CastlingWhiteK | CastlingWhiteQ
	CastlingBlack = CastlingBlackK | CastlingBlackQ
	CastlingNone  = CastlingRights(0)
	CastlingAny   = CastlingWhite | CastlingBlack
)

func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

// String renders the rights in canonical FEN order "KQkq", or "-" if none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteK) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteQ) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackK) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackQ) {
		sb.WriteString("q")
	}
	return sb.String()
}

// KingsideRight returns the kingside castling bit for a color.
func KingsideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteK
	}
	return CastlingBlackK
}

// QueensideRight returns the queenside castling bit for a color.
func QueensideRight(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteQ
	}
	return CastlingBlackQ
}

// RightsOf returns both castling bits belonging to a color.
func RightsOf(c Color) CastlingRights {
	if c == White {
		return CastlingWhite
	}
	return CastlingBlack
}
