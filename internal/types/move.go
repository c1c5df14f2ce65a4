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

// Move is the compact 16-bit encoding of §3: bits 0-5 from, 6-11 to,
// 12-15 flag. This is the only representation the hot search/movegen
// path carries; a Move never needs a parallel object form.
type Move uint16

// MoveFlag is the 4-bit tag distinguishing normal moves, promotions,
// castling and en passant.
type MoveFlag uint8

const (
	FlagNormal MoveFlag = iota
	FlagPromoteQueen
	FlagPromoteRook
	FlagPromoteBishop
	FlagPromoteKnight
	FlagCastleKingside
	FlagCastleQueenside
	FlagEnPassant
)

const MoveNone Move = 0

const (
	toShift   = 6
	fromShift = 0
	flagShift = 12

	squareBits Move = 0x3F
)

// CreateMove encodes a move from its components.
func CreateMove(from, to Square, flag MoveFlag) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(flag)<<flagShift
}

func (m Move) To() Square {
	return Square((m >> toShift) & squareBits)
}

func (m Move) From() Square {
	return Square((m >> fromShift) & squareBits)
}

func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> flagShift)
}

func (m Move) IsPromotion() bool {
	f := m.Flag()
	return f >= FlagPromoteQueen && f <= FlagPromoteKnight
}

var promotionPieceType = [4]PieceType{Queen, Rook, Bishop, Knight}

// PromotionType returns the piece type to promote to; only meaningful
// when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return promotionPieceType[m.Flag()-FlagPromoteQueen]
}

func (m Move) IsCastle() bool {
	return m.Flag() == FlagCastleKingside || m.Flag() == FlagCastleQueenside
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

func (m Move) IsValid() bool {
	return m != MoveNone
}

var promotionChar = [4]string{"q", "r", "b", "n"}

// StringUci renders the move as UCI coordinate notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion. See spec.md §6.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString(promotionChar[m.Flag()-FlagPromoteQueen])
	}
	return sb.String()
}

func (m Move) String() string {
	return m.StringUci()
}
