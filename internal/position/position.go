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

// Package position is the engine's single mutable state: twelve piece
// bitboards, occupancy, castling/en-passant/halfmove metadata, an
// incrementally maintained Zobrist hash and a fullmove counter (§3).
//
// There is deliberately no mailbox array here. A piece is stored
// exclusively in its bitboard; PieceAt scans the twelve bitboards.
// This is the one canonical board representation - earlier attempts
// at this migration kept a second, array-of-structs board alongside
// the bitboards and the two drifted out of sync under en passant and
// castling. Only one representation survives here.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/attacks"
	. "github.com/frankkopp/chesscore/internal/types"
	"github.com/frankkopp/chesscore/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the engine's mutable board state. See the package doc.
type Position struct {
	pieces    [PieceLength]Bitboard
	occupancy Bitboard

	castlingRights CastlingRights
	epSquare       Square
	halfmoveClock  uint16
	sideToMove     Color

	zobristHash zobrist.Key
	fullmove    int
}

// Undo is everything needed to reverse a make(): prior metadata, prior
// hash, and the captured piece (PieceNone if the move was not a
// capture). Created by Make, consumed by Unmake; the pair is
// mandatory and must be strictly nested (§3, §5).
type Undo struct {
	castlingRights CastlingRights
	epSquare       Square
	halfmoveClock  uint16
	fullmove       int
	zobristHash    zobrist.Key
	captured       Piece
}

// NullUndo is the undo record for MakeNull/UnmakeNull.
type NullUndo struct {
	epSquare    Square
	zobristHash zobrist.Key
}

// New creates the standard starting position.
func New() *Position {
	p, _ := NewFromFen(StartFen)
	return p
}

// NewFromFen parses fen and returns the position it describes, or
// InvalidFenError if fen is structurally malformed (§7 InvalidFen).
func NewFromFen(fen string) (*Position, error) {
	p := &Position{epSquare: SqNone}
	if err := p.setupFromFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// InvalidFenError reports a structurally malformed FEN string.
type InvalidFenError struct{ Reason string }

func (e *InvalidFenError) Error() string {
	return fmt.Sprintf("invalid fen: %s", e.Reason)
}

// //////////////////////////////////////////////////////////////////
// Accessors
// //////////////////////////////////////////////////////////////////

// PieceAt returns the piece occupying sq, or PieceNone if sq is empty.
// There is no mailbox cache: this scans the twelve piece bitboards.
func (p *Position) PieceAt(sq Square) Piece {
	bb := sq.Bb()
	for pc := WhitePawn; pc < PieceLength; pc++ {
		if p.pieces[pc]&bb != 0 {
			return pc
		}
	}
	return PieceNone
}

// PieceBb returns the bitboard for one piece (type+color combined).
func (p *Position) PieceBb(pc Piece) Bitboard { return p.pieces[pc] }

// PiecesOf returns the union bitboard of all pieces of type pt and color c.
func (p *Position) PiecesOf(c Color, pt PieceType) Bitboard {
	return p.pieces[MakePiece(c, pt)]
}

// Occupancy is the union of all twelve piece bitboards.
func (p *Position) Occupancy() Bitboard { return p.occupancy }

// OccupiedBy is the union of the six piece bitboards belonging to c.
// Derived on demand rather than cached, since §3 names occupancy (the
// total) as the only occupancy field Position carries.
func (p *Position) OccupiedBy(c Color) Bitboard {
	var bb Bitboard
	for pt := Pawn; pt <= King; pt++ {
		bb |= p.pieces[MakePiece(c, pt)]
	}
	return bb
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieces[MakePiece(c, King)].Lsb()
}

func (p *Position) SideToMove() Color               { return p.sideToMove }
func (p *Position) CastlingRights() CastlingRights   { return p.castlingRights }
func (p *Position) EnPassantSquare() Square          { return p.epSquare }
func (p *Position) HalfmoveClock() int               { return int(p.halfmoveClock) }
func (p *Position) FullmoveNumber() int              { return p.fullmove }
func (p *Position) ZobristHash() zobrist.Key         { return p.zobristHash }

// //////////////////////////////////////////////////////////////////
// Make / Unmake
// //////////////////////////////////////////////////////////////////

var castleTouch = func() [SqLength]CastlingRights {
	var t [SqLength]CastlingRights
	t[SqE1] = CastlingWhite
	t[SqA1] = CastlingWhiteQ
	t[SqH1] = CastlingWhiteK
	t[SqE8] = CastlingBlack
	t[SqA8] = CastlingBlackQ
	t[SqH8] = CastlingBlackK
	return t
}()

// Make commits move on the position and returns the record needed to
// reverse it. The position layer trusts the move to be (pseudo-)legal;
// callers are expected to have produced it from the legal-move
// generator. See spec.md §4.2 for the ten-step algorithm this follows.
func (p *Position) Make(m Move) Undo {
	from, to, flag := m.From(), m.To(), m.Flag()
	us := p.sideToMove
	them := us.Flip()
	moving := p.PieceAt(from)

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position Make: invalid move %s", m.String())
		assert.Assert(moving != PieceNone, "Position Make: no piece on %s", from.String())
		assert.Assert(moving.ColorOf() == us, "Position Make: piece on %s does not belong to side to move", from.String())
		if flag == FlagCastleKingside || flag == FlagCastleQueenside {
			assert.Assert(moving.TypeOf() == King, "Position Make: castle move but from piece not king")
		}
		if flag == FlagEnPassant {
			assert.Assert(moving.TypeOf() == Pawn, "Position Make: en passant move but from piece not pawn")
			assert.Assert(p.epSquare != SqNone, "Position Make: en passant move without en passant square set")
		}
	}

	undo := Undo{
		castlingRights: p.castlingRights,
		epSquare:       p.epSquare,
		halfmoveClock:  p.halfmoveClock,
		fullmove:       p.fullmove,
		zobristHash:    p.zobristHash,
		captured:       PieceNone,
	}

	// 2-3: identify and remove any captured piece.
	switch flag {
	case FlagEnPassant:
		capSq := epCaptureSquareOf(to, us)
		captured := MakePiece(them, Pawn)
		undo.captured = captured
		p.removePiece(captured, capSq)
	default:
		if captured := p.PieceAt(to); captured != PieceNone {
			undo.captured = captured
			p.removePiece(captured, to)
		}
	}

	// 4: execute per flag.
	switch flag {
	case FlagNormal:
		p.relocatePiece(moving, from, to)
	case FlagPromoteQueen, FlagPromoteRook, FlagPromoteBishop, FlagPromoteKnight:
		p.removePiece(moving, from)
		p.putPiece(MakePiece(us, m.PromotionType()), to)
	case FlagCastleKingside, FlagCastleQueenside:
		p.relocatePiece(moving, from, to)
		rookFrom, rookTo := castleRookSquares(to)
		p.relocatePiece(MakePiece(us, Rook), rookFrom, rookTo)
	case FlagEnPassant:
		p.relocatePiece(moving, from, to)
	}

	// 5: castling-rights updates.
	if p.castlingRights != CastlingNone {
		touched := castleTouch[from] | castleTouch[to]
		if touched != CastlingNone && p.castlingRights.Has(touched) {
			p.zobristHash ^= zobrist.Key(zobrist.Castling[p.castlingRights])
			p.castlingRights.Remove(touched)
			p.zobristHash ^= zobrist.Key(zobrist.Castling[p.castlingRights])
		}
	}

	// 6: en-passant square.
	p.clearEnPassant()
	if moving.TypeOf() == Pawn && squareDistance(from, to) == 2 {
		p.epSquare = shiftVertical(to, them.PawnPushDirection())
		p.zobristHash ^= zobrist.Key(zobrist.EnPassant[p.epSquare.FileOf()])
	}

	// 7: halfmove clock.
	if undo.captured != PieceNone || moving.TypeOf() == Pawn {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	// 8: flip side.
	p.sideToMove = them
	p.zobristHash ^= zobrist.SideToMove

	// 9: rebuild occupancy.
	p.rebuildOccupancy()

	// 10: fullmove counter.
	if p.sideToMove == White {
		p.fullmove++
	}

	if assert.DEBUG {
		assert.Assert(p.pieces[WhiteKing].PopCount() == 1 && p.pieces[BlackKing].PopCount() == 1,
			"Position Make: must have exactly one king per side after %s", m.String())
	}

	return undo
}

// Unmake reverses move using the undo record Make returned for it.
// Must be called on the same Position before any other caller observes
// it (§5 pairing discipline).
func (p *Position) Unmake(m Move, u Undo) {
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "Position Unmake: invalid move %s", m.String())
	}
	from, to, flag := m.From(), m.To(), m.Flag()
	p.sideToMove = p.sideToMove.Flip()
	us := p.sideToMove

	switch flag {
	case FlagNormal, FlagEnPassant:
		moving := p.PieceAt(to)
		p.relocatePieceRaw(moving, to, from)
	case FlagPromoteQueen, FlagPromoteRook, FlagPromoteBishop, FlagPromoteKnight:
		p.removePieceRaw(MakePiece(us, m.PromotionType()), to)
		p.putPieceRaw(MakePiece(us, Pawn), from)
	case FlagCastleKingside, FlagCastleQueenside:
		king := p.PieceAt(to)
		p.relocatePieceRaw(king, to, from)
		rookFrom, rookTo := castleRookSquares(to)
		rook := p.PieceAt(rookTo)
		p.relocatePieceRaw(rook, rookTo, rookFrom)
	}

	if u.captured != PieceNone {
		capSq := to
		if flag == FlagEnPassant {
			capSq = epCaptureSquareOf(to, us)
		}
		p.putPieceRaw(u.captured, capSq)
	}

	p.castlingRights = u.castlingRights
	p.epSquare = u.epSquare
	p.halfmoveClock = u.halfmoveClock
	p.fullmove = u.fullmove
	p.zobristHash = u.zobristHash
	p.rebuildOccupancy()
}

// MakeNull flips the side to move without moving a piece, for null-move
// pruning. Must never be called while the side to move is in check.
func (p *Position) MakeNull() NullUndo {
	if assert.DEBUG {
		assert.Assert(!p.InCheck(p.sideToMove), "Position MakeNull: side to move is in check")
	}
	u := NullUndo{epSquare: p.epSquare, zobristHash: p.zobristHash}
	p.clearEnPassant()
	p.sideToMove = p.sideToMove.Flip()
	p.zobristHash ^= zobrist.SideToMove
	return u
}

// UnmakeNull reverses MakeNull.
func (p *Position) UnmakeNull(u NullUndo) {
	p.sideToMove = p.sideToMove.Flip()
	p.epSquare = u.epSquare
	p.zobristHash = u.zobristHash
	if assert.DEBUG {
		assert.Assert(!p.InCheck(p.sideToMove), "Position UnmakeNull: side to move is in check after restore")
	}
}

func castleRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("position: invalid castle destination %s", kingTo))
	}
}

// epCaptureSquareOf returns the square the captured pawn actually sits
// on for an en-passant capture landing on `to` made by color us.
func epCaptureSquareOf(to Square, us Color) Square {
	if us == White {
		return shiftVertical(to, South)
	}
	return shiftVertical(to, North)
}

// shiftVertical moves sq one rank in direction d (North or South only;
// never wraps a file, so no bounds check is needed for valid chess
// positions).
func shiftVertical(sq Square, d Direction) Square {
	return Square(int(sq) + int(d))
}

func squareDistance(a, b Square) int {
	d := int(a.RankOf()) - int(b.RankOf())
	if d < 0 {
		d = -d
	}
	return d
}

func (p *Position) clearEnPassant() {
	if p.epSquare != SqNone {
		p.zobristHash ^= zobrist.Key(zobrist.EnPassant[p.epSquare.FileOf()])
		p.epSquare = SqNone
	}
}

func (p *Position) putPiece(pc Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(!p.pieces[pc].Has(sq), "Position putPiece: %s already has a piece on %s", pc.String(), sq.String())
	}
	p.pieces[pc] = p.pieces[pc].Set(sq)
	p.zobristHash ^= zobrist.Key(zobrist.Piece[pc][sq])
}

func (p *Position) putPieceRaw(pc Piece, sq Square) {
	p.pieces[pc] = p.pieces[pc].Set(sq)
}

func (p *Position) removePiece(pc Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.pieces[pc].Has(sq), "Position removePiece: %s has no piece on %s", pc.String(), sq.String())
	}
	p.pieces[pc] = p.pieces[pc].Clear(sq)
	p.zobristHash ^= zobrist.Key(zobrist.Piece[pc][sq])
}

func (p *Position) removePieceRaw(pc Piece, sq Square) {
	p.pieces[pc] = p.pieces[pc].Clear(sq)
}

func (p *Position) relocatePiece(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.putPiece(pc, to)
}

func (p *Position) relocatePieceRaw(pc Piece, from, to Square) {
	p.removePieceRaw(pc, from)
	p.putPieceRaw(pc, to)
}

func (p *Position) rebuildOccupancy() {
	var bb Bitboard
	for pc := WhitePawn; pc < PieceLength; pc++ {
		bb |= p.pieces[pc]
	}
	p.occupancy = bb
}

// //////////////////////////////////////////////////////////////////
// Attacks / check
// //////////////////////////////////////////////////////////////////

// IsAttacked reports whether sq is attacked by any piece of color by,
// per the attacked-square test of spec.md §4.3.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if attacks.PawnAttacks(by.Flip(), sq)&p.pieces[MakePiece(by, Pawn)] != 0 {
		return true
	}
	if attacks.KnightAttacks(sq)&p.pieces[MakePiece(by, Knight)] != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.pieces[MakePiece(by, King)] != 0 {
		return true
	}
	bishopsQueens := p.pieces[MakePiece(by, Bishop)] | p.pieces[MakePiece(by, Queen)]
	if attacks.BishopAttacks(sq, p.occupancy)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[MakePiece(by, Rook)] | p.pieces[MakePiece(by, Queen)]
	if attacks.RookAttacks(sq, p.occupancy)&rooksQueens != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (p *Position) InCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Flip())
}

// //////////////////////////////////////////////////////////////////
// FEN
// //////////////////////////////////////////////////////////////////

func (p *Position) setupFromFen(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return &InvalidFenError{Reason: fmt.Sprintf("expected 6 fields, got %d", len(fields))}
	}

	*p = Position{epSquare: SqNone}

	if err := p.parsePlacement(fields[0]); err != nil {
		return err
	}
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return &InvalidFenError{Reason: "side to move must be 'w' or 'b'"}
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteK)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteQ)
			case 'k':
				p.castlingRights.Add(CastlingBlackK)
			case 'q':
				p.castlingRights.Add(CastlingBlackQ)
			default:
				return &InvalidFenError{Reason: "invalid castling rights character"}
			}
		}
	}

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return &InvalidFenError{Reason: "invalid en passant square"}
		}
		p.epSquare = sq
	}

	clock, err := strconv.Atoi(fields[4])
	if err != nil || clock < 0 {
		return &InvalidFenError{Reason: "halfmove clock must be a non-negative integer"}
	}
	p.halfmoveClock = uint16(clock)

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return &InvalidFenError{Reason: "fullmove number must be a positive integer"}
	}
	p.fullmove = full

	p.rebuildOccupancy()
	p.zobristHash = p.recomputeZobrist()
	return nil
}

func (p *Position) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &InvalidFenError{Reason: "piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := Rank8 - Rank(i)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if file > FileH {
				return &InvalidFenError{Reason: "rank has too many squares"}
			}
			pc := PieceFromChar(string(c))
			if pc == PieceNone {
				return &InvalidFenError{Reason: fmt.Sprintf("invalid piece character %q", c)}
			}
			sq := SquareOf(file, rank)
			p.pieces[pc] = p.pieces[pc].Set(sq)
			file++
		}
		if file != FileLength {
			return &InvalidFenError{Reason: "rank does not sum to 8 squares"}
		}
	}
	for _, c := range [2]Color{White, Black} {
		if p.pieces[MakePiece(c, King)].PopCount() != 1 {
			return &InvalidFenError{Reason: "each side must have exactly one king"}
		}
	}
	return nil
}

// ToFen renders the position as a FEN string. The engine re-emits FEN
// identically on a round trip through from_fen/to_fen.
func (p *Position) ToFen() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f < FileLength; f++ {
			pc := p.PieceAt(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(int(p.halfmoveClock)))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.fullmove))
	return sb.String()
}

func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.ToFen())
	sb.WriteString("\n")
	for r := Rank8; ; r-- {
		for f := FileA; f < FileLength; f++ {
			sb.WriteString(p.PieceAt(SquareOf(f, r)).Char())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}

// recomputeZobrist rebuilds the hash from scratch from piece
// placement, castling rights, en-passant square and side to move -
// used on FEN load and by the invariant check of spec.md §8.
func (p *Position) recomputeZobrist() zobrist.Key {
	var h zobrist.Key
	for pc := WhitePawn; pc < PieceLength; pc++ {
		bb := p.pieces[pc]
		for bb != 0 {
			sq := bb.PopLsb()
			h ^= zobrist.Key(zobrist.Piece[pc][sq])
		}
	}
	h ^= zobrist.Key(zobrist.Castling[p.castlingRights])
	if p.epSquare != SqNone {
		h ^= zobrist.Key(zobrist.EnPassant[p.epSquare.FileOf()])
	}
	if p.sideToMove == Black {
		h ^= zobrist.SideToMove
	}
	return h
}

// VerifyInvariants checks the invariants of spec.md §8 and returns an
// error describing the first violation found, or nil.
func (p *Position) VerifyInvariants() error {
	var union Bitboard
	for a := WhitePawn; a < PieceLength; a++ {
		for b := a + 1; b < PieceLength; b++ {
			if p.pieces[a]&p.pieces[b] != 0 {
				return errors.New("position: overlapping piece bitboards")
			}
		}
		union |= p.pieces[a]
	}
	if union != p.occupancy {
		return errors.New("position: occupancy does not equal union of piece bitboards")
	}
	if p.pieces[WhiteKing].PopCount() != 1 || p.pieces[BlackKing].PopCount() != 1 {
		return errors.New("position: must have exactly one king per side")
	}
	if p.zobristHash != p.recomputeZobrist() {
		return errors.New("position: zobrist hash does not match recomputation")
	}
	if (p.pieces[WhitePawn]|p.pieces[BlackPawn])&(Rank1.Bb()|Rank8.Bb()) != 0 {
		return errors.New("position: pawn on rank 1 or 8")
	}
	return nil
}
