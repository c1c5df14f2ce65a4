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

// Piece indexes the twelve piece bitboards: 0..5 are White pawn, knight,
// bishop, rook, queen, king; 6..11 are the same for Black. PieceNone is a
// sentinel outside that range, used where "no piece on this square" needs
// representing (e.g. capture-free Undo records).
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = PieceNone
)

// MakePiece builds a Piece from its color and type. pt must not be PtNone.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt) - 1)
}

func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceNone
}

func (p Piece) ColorOf() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

var pieceToType = [PieceLength]PieceType{
	Pawn, Knight, Bishop, Rook, Queen, King,
	Pawn, Knight, Bishop, Rook, Queen, King,
}

func (p Piece) TypeOf() PieceType {
	return pieceToType[p]
}

func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToChar = "PNBRQKpnbrqk"

// PieceFromChar maps a single FEN piece letter to a Piece, PieceNone if unknown.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for i := 0; i < len(pieceToChar); i++ {
		if pieceToChar[i] == s[0] {
			return Piece(i)
		}
	}
	return PieceNone
}

func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return string(pieceToChar[p])
}

func (p Piece) String() string {
	if !p.IsValid() {
		return "NoPiece"
	}
	return p.ColorOf().String() + p.TypeOf().String()
}
