package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestValueToFromTTRoundTripsOrdinaryScores(t *testing.T) {
	v := Value(137)
	assert.Equal(t, v, valueFromTT(valueToTT(v, 5), 5))
}

func TestValueToTTAdjustsMateScoreByPly(t *testing.T) {
	v := MateValue - 2
	stored := valueToTT(v, 3)
	assert.Equal(t, v+3, stored)
	assert.Equal(t, v, valueFromTT(stored, 3))
}

func TestValueToTTLeavesInvalidScoreAlone(t *testing.T) {
	assert.Equal(t, ValueNA, valueToTT(ValueNA, 4))
	assert.Equal(t, ValueNA, valueFromTT(ValueNA, 4))
}

func TestIsCapturingMoveDetectsOrdinaryCapture(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := CreateMove(SqE4, SqD5, FlagNormal)
	assert.True(t, isCapturingMove(p, m))
}

func TestIsCapturingMoveDetectsEnPassant(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	m := CreateMove(SqE5, SqD6, FlagEnPassant)
	assert.True(t, isCapturingMove(p, m))
}

func TestIsCapturingMoveFalseForQuietMove(t *testing.T) {
	p := position.New()
	m := CreateMove(SqE2, SqE4, FlagNormal)
	assert.False(t, isCapturingMove(p, m))
}

func TestHasNonPawnMaterialFalseWithOnlyKingAndPawns(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, hasNonPawnMaterial(p, White))
}

func TestHasNonPawnMaterialTrueWithAKnight(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, hasNonPawnMaterial(p, White))
}

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	s := NewSearch()
	p := position.New()
	moves := s.mg.GenerateLegal(p, movegen.GenAll)
	ttMove := moves[len(moves)-1]
	s.orderMoves(p, moves, 0, ttMove)
	assert.Equal(t, ttMove, moves[0])
}
