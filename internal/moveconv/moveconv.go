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

// Package moveconv renders a Move as the UCI wire form (spec.md §6:
// source square + destination square + optional promotion letter) and
// parses it back, resolving the ambiguous flag bits (castle, en
// passant, promotion) by consulting the position the move is played
// from - exactly what a line parser would need, without being one.
package moveconv

import (
	"fmt"
	"strings"

	"github.com/frankkopp/chesscore/internal/position"

	. "github.com/frankkopp/chesscore/internal/types"
)

var promoLetters = map[MoveFlag]string{
	FlagPromoteQueen:  "q",
	FlagPromoteRook:   "r",
	FlagPromoteBishop: "b",
	FlagPromoteKnight: "n",
}

var promoFlags = map[byte]MoveFlag{
	'q': FlagPromoteQueen,
	'r': FlagPromoteRook,
	'b': FlagPromoteBishop,
	'n': FlagPromoteKnight,
}

// ToUci renders m in UCI form, e.g. "e2e4" or "e7e8q". MoveNone
// renders as "0000", matching the UCI convention for "no move".
func ToUci(m Move) string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if letter, ok := promoLetters[m.Flag()]; ok {
		b.WriteString(letter)
	}
	return b.String()
}

// FromUci parses a UCI move string played from p, resolving the
// castle/en-passant/promotion flag from p's state: whether the mover
// is a king moving two files resolves castling, whether the mover is
// a pawn landing on the en passant square resolves en passant.
func FromUci(p *position.Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, fmt.Errorf("moveconv: malformed uci move %q", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return MoveNone, err
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return MoveNone, err
	}

	if len(s) == 5 {
		flag, ok := promoFlags[s[4]]
		if !ok {
			return MoveNone, fmt.Errorf("moveconv: unknown promotion letter %q", s[4:])
		}
		return CreateMove(from, to, flag), nil
	}

	mover := p.PieceAt(from)
	if mover.TypeOf() == King {
		df := int(to.FileOf()) - int(from.FileOf())
		if df == 2 {
			return CreateMove(from, to, FlagCastleKingside), nil
		}
		if df == -2 {
			return CreateMove(from, to, FlagCastleQueenside), nil
		}
	}
	if mover.TypeOf() == Pawn && to == p.EnPassantSquare() && to.FileOf() != from.FileOf() {
		return CreateMove(from, to, FlagEnPassant), nil
	}
	return CreateMove(from, to, FlagNormal), nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("moveconv: malformed square %q", s)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("moveconv: malformed square %q", s)
	}
	return SquareOf(File(file-'a'), Rank(rank-'1')), nil
}

// FormatScore renders v the way a UCI "info score" line would: a
// centipawn value, or "mate N" for a forced mate (spec.md §4.6 "Mate
// scoring"), reusing Value.String's mate-distance logic.
func FormatScore(v Value) string {
	return v.String()
}
