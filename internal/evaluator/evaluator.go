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

// Package evaluator scores a position in centipawns from the side to
// move's perspective (spec.md §4.4): material plus piece-square
// tables, switched between middlegame and endgame sets by a material
// threshold. Deliberately no mobility, pawn-structure or king-safety
// terms - the core evaluator's whole shape is these two inputs so
// that the tables can be replaced without touching this file.
package evaluator

import (
	"github.com/frankkopp/chesscore/internal/config"
	. "github.com/frankkopp/chesscore/internal/types"
)

// EndgameMaterialThreshold is the non-king material total (summed
// over both sides) below which the endgame piece-square tables are
// used instead of the middlegame ones.
const EndgameMaterialThreshold = 2500

// Position is the subset of position.Position's surface the evaluator
// needs; declared here so this package does not import internal/position
// (the evaluator is a leaf the position layer never has to know about).
type Position interface {
	PieceBb(pc Piece) Bitboard
	SideToMove() Color
}

// Evaluate scores p in centipawns from p's side to move's perspective.
func Evaluate(p Position) int {
	threshold := EndgameMaterialThreshold
	if t := config.Settings.Eval.EndgameMaterialThreshold; t > 0 {
		threshold = t
	}
	endgame := nonKingMaterial(p) < threshold

	white := sideScore(p, White, endgame) - sideScore(p, Black, endgame)

	stm := p.SideToMove()
	if config.Settings.Eval.UseTempo {
		if stm == White {
			white += int(config.Settings.Eval.Tempo)
		} else {
			white -= int(config.Settings.Eval.Tempo)
		}
	}

	if stm == Black {
		return -white
	}
	return white
}

func nonKingMaterial(p Position) int {
	total := 0
	for pc := WhitePawn; pc < PieceLength; pc++ {
		if pc == WhiteKing || pc == BlackKing {
			continue
		}
		total += p.PieceBb(pc).PopCount() * int(pc.TypeOf().ValueOf())
	}
	return total
}

func sideScore(p Position, c Color, endgame bool) int {
	usePST := config.Settings.Eval.UsePST
	score := 0
	for pt := Pawn; pt <= King; pt++ {
		pc := MakePiece(c, pt)
		bb := p.PieceBb(pc)
		for bb != 0 {
			sq := bb.PopLsb()
			score += int(pt.ValueOf())
			if usePST {
				score += pst(pt, c, sq, endgame)
			}
		}
	}
	return score
}

// pst returns the piece-square bonus for a piece of type pt and color
// c standing on sq. Tables are written from White's point of view
// (index 0 = a1 ... 63 = h8); Black reads the same table mirrored
// vertically (index sq^56).
func pst(pt PieceType, c Color, sq Square, endgame bool) int {
	table := midGameTables[pt]
	if endgame {
		table = endGameTables[pt]
	}
	if c == Black {
		return int(table[sq^56])
	}
	return int(table[sq])
}

var midGameTables = [PtLength][SqLength]int16{
	Pawn:   pawnMidGame,
	Knight: knightMidGame,
	Bishop: bishopMidGame,
	Rook:   rookMidGame,
	Queen:  queenMidGame,
	King:   kingMidGame,
}

var endGameTables = [PtLength][SqLength]int16{
	Pawn:   pawnEndGame,
	Knight: knightEndGame,
	Bishop: bishopEndGame,
	Rook:   rookEndGame,
	Queen:  queenEndGame,
	King:   kingEndGame,
}

var pawnMidGame = [SqLength]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -30, -30, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 30, 30, 0, 0, 0,
	5, 5, 10, 30, 30, 10, 5, 5,
	0, 5, 5, 5, 5, 5, 5, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEndGame = [SqLength]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	5, 10, 10, 10, 10, 10, 10, 5,
	10, 10, 20, 20, 20, 10, 10, 10,
	20, 30, 30, 40, 40, 30, 30, 20,
	40, 50, 50, 60, 60, 50, 50, 40,
	90, 90, 90, 90, 90, 90, 90, 90,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightMidGame = [SqLength]int16{
	-50, -25, -20, -30, -30, -20, -25, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var knightEndGame = [SqLength]int16{
	-50, -40, -20, -30, -30, -20, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopMidGame = [SqLength]int16{
	-20, -10, -40, -10, -10, -40, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var bishopEndGame = [SqLength]int16{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookMidGame = [SqLength]int16{
	-15, -10, 15, 15, 15, 15, -10, -15,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 10, 10, 10, 10, 10,
	5, 5, 5, 5, 5, 5, 5, 5,
}

var rookEndGame = [SqLength]int16{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 5, 5, 5, 5, 5, 5, 5,
}

var queenMidGame = [SqLength]int16{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 2, 2, 2, 2, 0, -5,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var queenEndGame = [SqLength]int16{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidGame = [SqLength]int16{
	20, 50, 0, -20, -20, 0, 50, 20,
	0, 0, -20, -20, -20, -20, 0, 0,
	-10, -20, -20, -30, -30, -30, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndGame = [SqLength]int16{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -30, -30, -20, -20, -30, -30, -50,
}
