package moveconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/position"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestToUciNormalMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4, FlagNormal)
	assert.Equal(t, "e2e4", ToUci(m))
}

func TestToUciPromotion(t *testing.T) {
	m := CreateMove(SqA7, SqA8, FlagPromoteQueen)
	assert.Equal(t, "a7a8q", ToUci(m))
}

func TestToUciNoMove(t *testing.T) {
	assert.Equal(t, "0000", ToUci(MoveNone))
}

func TestFromUciNormalMove(t *testing.T) {
	p := position.New()
	m, err := FromUci(p, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, FlagNormal, m.Flag())
}

func TestFromUciPromotion(t *testing.T) {
	p, err := position.NewFromFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	m, err := FromUci(p, "a7a8q")
	require.NoError(t, err)
	assert.Equal(t, FlagPromoteQueen, m.Flag())
}

func TestFromUciCastling(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	m, err := FromUci(p, "e1g1")
	require.NoError(t, err)
	assert.Equal(t, FlagCastleKingside, m.Flag())
}

func TestFromUciEnPassant(t *testing.T) {
	p, err := position.NewFromFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	m, err := FromUci(p, "e5d6")
	require.NoError(t, err)
	assert.Equal(t, FlagEnPassant, m.Flag())
}

func TestToUciFromUciRoundTrip(t *testing.T) {
	p := position.New()
	m, err := FromUci(p, "g1f3")
	require.NoError(t, err)
	assert.Equal(t, "g1f3", ToUci(m))
}

func TestFromUciRejectsMalformedInput(t *testing.T) {
	p := position.New()
	_, err := FromUci(p, "z9z9")
	assert.Error(t, err)
}

func TestFormatScoreMate(t *testing.T) {
	assert.Contains(t, FormatScore(MateValue-3), "mate")
}

func TestFormatScoreCentipawn(t *testing.T) {
	assert.Contains(t, FormatScore(150), "cp")
}
