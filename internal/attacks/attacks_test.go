package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestKnightAttacksCorner(t *testing.T) {
	bb := KnightAttacks(SqA1)
	assert.EqualValues(t, 2, bb.PopCount())
	assert.True(t, bb.Has(SqB3))
	assert.True(t, bb.Has(SqC2))
}

func TestKnightAttacksCenter(t *testing.T) {
	bb := KnightAttacks(SqD4)
	assert.EqualValues(t, 8, bb.PopCount())
}

func TestKingAttacksCorner(t *testing.T) {
	bb := KingAttacks(SqH8)
	assert.EqualValues(t, 3, bb.PopCount())
	assert.True(t, bb.Has(SqG8))
	assert.True(t, bb.Has(SqG7))
	assert.True(t, bb.Has(SqH7))
}

func TestPawnAttacksWhiteAndBlack(t *testing.T) {
	white := PawnAttacks(White, SqE4)
	assert.True(t, white.Has(SqD5))
	assert.True(t, white.Has(SqF5))
	assert.EqualValues(t, 2, white.PopCount())

	black := PawnAttacks(Black, SqE4)
	assert.True(t, black.Has(SqD3))
	assert.True(t, black.Has(SqF3))
}

func TestPawnAttacksFileEdge(t *testing.T) {
	white := PawnAttacks(White, SqA2)
	assert.EqualValues(t, 1, white.PopCount())
	assert.True(t, white.Has(SqB3))
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	bb := RookAttacks(SqD4, BbZero)
	assert.EqualValues(t, 14, bb.PopCount())
}

func TestRookAttacksBlocked(t *testing.T) {
	occ := SqD6.Bb()
	bb := RookAttacks(SqD4, occ)
	assert.True(t, bb.Has(SqD5))
	assert.True(t, bb.Has(SqD6))
	assert.False(t, bb.Has(SqD7))
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	bb := BishopAttacks(SqD4, BbZero)
	assert.EqualValues(t, 13, bb.PopCount())
}

func TestQueenAttacksIsUnion(t *testing.T) {
	occ := BbZero
	queen := QueenAttacks(SqD4, occ)
	union := BishopAttacks(SqD4, occ) | RookAttacks(SqD4, occ)
	assert.Equal(t, union, queen)
}

func TestAttacksFromDispatch(t *testing.T) {
	assert.Equal(t, KnightAttacks(SqB1), AttacksFrom(Knight, SqB1, BbZero))
	assert.Equal(t, RookAttacks(SqA1, BbZero), AttacksFrom(Rook, SqA1, BbZero))
}
