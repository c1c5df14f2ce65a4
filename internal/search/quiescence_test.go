package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestQsearchResolvesHangingQueenCapture(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	s := NewSearch()
	value := s.qsearch(p, 0, -ValueInfinite, ValueInfinite)
	// stand pat is a queen down; after exd5 White is a pawn up.
	assert.Greater(t, value, Value(0))
}

func TestQsearchOnQuietPositionReturnsStandPat(t *testing.T) {
	p := position.New()
	s := NewSearch()
	value := s.qsearch(p, 0, -ValueInfinite, ValueInfinite)
	assert.Equal(t, s.evaluate(position.New()), value)
}

func TestMvvLvaRanksCaptureOfHigherValueVictimFirst(t *testing.T) {
	rookVictim, err := position.NewFromFen("4k3/8/4r3/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	pawnVictim, err := position.NewFromFen("4k3/8/4p3/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	captureMove := CreateMove(SqE2, SqE6, FlagNormal)
	assert.Greater(t, mvvLva(rookVictim, captureMove), mvvLva(pawnVictim, captureMove))
}

func TestMvvLvaOnQuietMoveIsNegative(t *testing.T) {
	p := position.New()
	assert.Equal(t, -1, mvvLva(p, CreateMove(SqE2, SqE4, FlagNormal)))
}
