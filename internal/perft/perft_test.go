package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/position"
)

func TestCountStartingPosition(t *testing.T) {
	p := position.New()
	assert.EqualValues(t, 20, Count(p, 1))
	assert.EqualValues(t, 400, Count(p, 2))
	assert.EqualValues(t, 8902, Count(p, 3))
}

// TestCountStartingPositionDeeper covers spec.md §8's depth 4/5 perft
// requirement for the starting position. Depth 5 visits ~4.9M leaves;
// it runs single-threaded like the rest of this file, not via
// CountParallel, so a failure here isolates generation bugs from the
// parallel-root-split path exercised separately below.
func TestCountStartingPositionDeeper(t *testing.T) {
	p := position.New()
	assert.EqualValues(t, 197281, Count(p, 4))
	assert.EqualValues(t, 4865609, Count(p, 5))
}

func TestCountKiwipete(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.EqualValues(t, 48, Count(p, 1))
	assert.EqualValues(t, 2039, Count(p, 2))
}

// TestCountKiwipeteDeeper covers spec.md §8's depth 3/4 perft
// requirement for the Kiwipete position: a position dense with
// castling, promotions and en-passant captures that depth 1-2 alone
// cannot exercise.
func TestCountKiwipeteDeeper(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.EqualValues(t, 97862, Count(p, 3))
	assert.EqualValues(t, 4085603, Count(p, 4))
}

// TestCountPosition3 covers spec.md §8's third reference position, a
// sparse endgame-like FEN exercising rook/king moves near the board
// edge and a lone far-advanced pawn pair.
func TestCountPosition3(t *testing.T) {
	p, err := position.NewFromFen("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	assert.EqualValues(t, 43238, Count(p, 4))
}

func TestCountParallelMatchesSingleThreaded(t *testing.T) {
	p := position.New()
	want := Count(p, 3)
	got, err := CountParallel(p, 3)
	require.NoError(t, err)
	assert.EqualValues(t, want, got)
}

func TestCountParallelLeavesOriginalPositionUnchanged(t *testing.T) {
	p := position.New()
	before := p.ToFen()
	_, err := CountParallel(p, 3)
	require.NoError(t, err)
	assert.Equal(t, before, p.ToFen())
}

func TestDivideSumsToCount(t *testing.T) {
	p := position.New()
	div := Divide(p, 3)
	var total uint64
	for _, n := range div {
		total += n
	}
	assert.EqualValues(t, Count(p, 3), total)
	assert.Len(t, div, 20)
}
