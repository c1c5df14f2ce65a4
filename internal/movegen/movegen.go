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

// Package movegen generates pseudo-legal and legal moves for a
// position (spec.md §4.3). Legality is decided by the filter path:
// make the move, test whether the mover's king is attacked, unmake -
// not the alternative pin-mask approach the teacher also carries.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Mode selects which subset of moves a generation call produces.
type Mode int

const (
	GenCaptures Mode = 1 << iota
	GenQuiet
	GenAll = GenCaptures | GenQuiet
)

// MaxMoves bounds the pseudo-legal move count of any legal chess
// position (spec.md §5); callers may use it to size move buffers.
const MaxMoves = 256

// Generator produces move lists for a position. It carries no state of
// its own beyond a reusable buffer; the zero value is ready to use.
type Generator struct {
	buf [MaxMoves]Move
}

// NewGenerator returns a ready-to-use move generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePseudoLegal returns every pseudo-legal move of the given
// mode for the side to move. Castling is emitted when the right is
// held and the squares between king and rook are empty; whether the
// king is in check or passes through an attacked square is tested by
// IsLegal.
func (g *Generator) GeneratePseudoLegal(p *position.Position, mode Mode) []Move {
	n := genPawnMoves(p, mode, g.buf[:0])
	n = len(appendKnightMoves(p, mode, g.buf[:n]))
	n = len(appendSliderMoves(p, Bishop, mode, g.buf[:n]))
	n = len(appendSliderMoves(p, Rook, mode, g.buf[:n]))
	n = len(appendSliderMoves(p, Queen, mode, g.buf[:n]))
	n = len(appendKingMoves(p, mode, g.buf[:n]))
	if mode&GenQuiet != 0 {
		n = len(appendCastling(p, g.buf[:n]))
	}
	out := make([]Move, n)
	copy(out, g.buf[:n])
	return out
}

// GenerateLegal returns the legal moves of the given mode: the
// pseudo-legal set filtered by make/unmake plus an attack test on the
// mover's own king (spec.md §4.3 "Legality filter").
func (g *Generator) GenerateLegal(p *position.Position, mode Mode) []Move {
	pseudo := g.GeneratePseudoLegal(p, mode)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if IsLegal(p, m) {
			legal = append(legal, m)
		}
	}
	out := make([]Move, len(legal))
	copy(out, legal)
	return out
}

// IsLegal reports whether m, assumed pseudo-legal, leaves the mover's
// own king safe. Castling moves additionally require that the king's
// origin and the square it passes through are not attacked; spec.md
// §4.3 notes the final destination is covered by the post-make check
// below, which runs for every move including castles.
func IsLegal(p *position.Position, m Move) bool {
	us := p.SideToMove()
	if assert.DEBUG {
		assert.Assert(p.PiecesOf(us, King).PopCount() == 1, "MoveGen IsLegal: side to move does not have exactly one king")
	}
	if m.IsCastle() {
		origin := m.From()
		passThrough := Square((int(m.From()) + int(m.To())) / 2)
		if p.IsAttacked(origin, us.Flip()) || p.IsAttacked(passThrough, us.Flip()) {
			return false
		}
	}
	u := p.Make(m)
	ok := !p.IsAttacked(p.KingSquare(us), us.Flip())
	p.Unmake(m, u)
	return ok
}

// HasLegalMove reports whether the side to move has at least one
// legal move; used to distinguish checkmate/stalemate from a merely
// quiet position without generating (and scoring) the full move list.
func (g *Generator) HasLegalMove(p *position.Position) bool {
	pseudo := g.GeneratePseudoLegal(p, GenAll)
	for _, m := range pseudo {
		if IsLegal(p, m) {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no
// legal reply.
func (g *Generator) IsCheckmate(p *position.Position) bool {
	return p.InCheck(p.SideToMove()) && !g.HasLegalMove(p)
}

// IsStalemate reports whether the side to move is not in check but
// has no legal move.
func (g *Generator) IsStalemate(p *position.Position) bool {
	return !p.InCheck(p.SideToMove()) && !g.HasLegalMove(p)
}

// //////////////////////////////////////////////////////////////////
// per-piece-type generation
// //////////////////////////////////////////////////////////////////

func genPawnMoves(p *position.Position, mode Mode, out []Move) int {
	us := p.SideToMove()
	them := us.Flip()
	pushDir := us.PawnPushDirection()
	promRank := us.PromotionRank()
	startRank := us.PawnStartRank()
	occ := p.Occupancy()
	enemy := p.OccupiedBy(them)

	pawns := p.PiecesOf(us, Pawn)
	for pawns != 0 {
		from := pawns.PopLsb()

		if mode&GenQuiet != 0 {
			one := shiftVertical(from, pushDir)
			if !occ.Has(one) {
				if one.RankOf() == promRank {
					out = appendPromotions(out, from, one)
				} else {
					out = append(out, CreateMove(from, one, FlagNormal))
					if from.RankOf() == startRank {
						two := shiftVertical(one, pushDir)
						if !occ.Has(two) {
							out = append(out, CreateMove(from, two, FlagNormal))
						}
					}
				}
			}
		}

		if mode&GenCaptures != 0 {
			targets := attacks.PawnAttacks(us, from) & enemy
			for targets != 0 {
				to := targets.PopLsb()
				if to.RankOf() == promRank {
					out = appendPromotions(out, from, to)
				} else {
					out = append(out, CreateMove(from, to, FlagNormal))
				}
			}
			ep := p.EnPassantSquare()
			if ep != SqNone && attacks.PawnAttacks(us, from).Has(ep) {
				out = append(out, CreateMove(from, ep, FlagEnPassant))
			}
		}
	}
	return len(out)
}

func appendPromotions(out []Move, from, to Square) []Move {
	return append(out,
		CreateMove(from, to, FlagPromoteQueen),
		CreateMove(from, to, FlagPromoteRook),
		CreateMove(from, to, FlagPromoteBishop),
		CreateMove(from, to, FlagPromoteKnight),
	)
}

func appendKnightMoves(p *position.Position, mode Mode, out []Move) []Move {
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	enemy := p.OccupiedBy(us.Flip())
	knights := p.PiecesOf(us, Knight)
	for knights != 0 {
		from := knights.PopLsb()
		targets := attacks.KnightAttacks(from) &^ own
		out = appendTargets(out, from, targets, enemy, mode)
	}
	return out
}

func appendKingMoves(p *position.Position, mode Mode, out []Move) []Move {
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	enemy := p.OccupiedBy(us.Flip())
	from := p.KingSquare(us)
	targets := attacks.KingAttacks(from) &^ own
	return appendTargets(out, from, targets, enemy, mode)
}

func appendSliderMoves(p *position.Position, pt PieceType, mode Mode, out []Move) []Move {
	us := p.SideToMove()
	own := p.OccupiedBy(us)
	enemy := p.OccupiedBy(us.Flip())
	occ := p.Occupancy()
	pieces := p.PiecesOf(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacks.AttacksFrom(pt, from, occ) &^ own
		out = appendTargets(out, from, targets, enemy, mode)
	}
	return out
}

func appendTargets(out []Move, from Square, targets, enemy Bitboard, mode Mode) []Move {
	for targets != 0 {
		to := targets.PopLsb()
		isCapture := enemy.Has(to)
		if isCapture && mode&GenCaptures == 0 {
			continue
		}
		if !isCapture && mode&GenQuiet == 0 {
			continue
		}
		out = append(out, CreateMove(from, to, FlagNormal))
	}
	return out
}

// kingsideEmpty/queensideEmpty are the squares that must be empty
// for a castle to even be pseudo-legal, indexed by color.
var kingsideEmpty = [2]Bitboard{
	SqF1.Bb() | SqG1.Bb(),
	SqF8.Bb() | SqG8.Bb(),
}
var queensideEmpty = [2]Bitboard{
	SqB1.Bb() | SqC1.Bb() | SqD1.Bb(),
	SqB8.Bb() | SqC8.Bb() | SqD8.Bb(),
}
var kingsideTarget = [2]Square{SqG1, SqG8}
var queensideTarget = [2]Square{SqC1, SqC8}
var kingHome = [2]Square{SqE1, SqE8}
var kingsideRookHome = [2]Square{SqH1, SqH8}
var queensideRookHome = [2]Square{SqA1, SqA8}

func appendCastling(p *position.Position, out []Move) []Move {
	us := p.SideToMove()
	cr := p.CastlingRights()
	occ := p.Occupancy()

	if cr.Has(KingsideRight(us)) && occ&kingsideEmpty[us] == 0 {
		if assert.DEBUG {
			assert.Assert(p.KingSquare(us) == kingHome[us], "MoveGen castling: king not on its home square")
			assert.Assert(p.PieceAt(kingsideRookHome[us]) == MakePiece(us, Rook), "MoveGen castling: no rook on kingside rook square")
		}
		out = append(out, CreateMove(kingHome[us], kingsideTarget[us], FlagCastleKingside))
	}
	if cr.Has(QueensideRight(us)) && occ&queensideEmpty[us] == 0 {
		if assert.DEBUG {
			assert.Assert(p.KingSquare(us) == kingHome[us], "MoveGen castling: king not on its home square")
			assert.Assert(p.PieceAt(queensideRookHome[us]) == MakePiece(us, Rook), "MoveGen castling: no rook on queenside rook square")
		}
		out = append(out, CreateMove(kingHome[us], queensideTarget[us], FlagCastleQueenside))
	}
	return out
}

// shiftVertical moves sq one rank in direction d. Safe without bounds
// checking here because callers only ever shift pawns that are not
// already on their promotion rank.
func shiftVertical(sq Square, d Direction) Square {
	return Square(int(sq) + int(d))
}
