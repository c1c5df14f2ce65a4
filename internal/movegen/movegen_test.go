package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestStartingPositionHas20LegalMoves(t *testing.T) {
	p := position.New()
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenAll)
	assert.Len(t, moves, 20)
}

func TestStartingPositionNoCaptures(t *testing.T) {
	p := position.New()
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenCaptures)
	assert.Empty(t, moves)
}

func TestKiwipeteMoveCount(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenAll)
	assert.Len(t, moves, 48)
}

func TestCastlingRejectedWhileInCheck(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenAll)
	for _, m := range moves {
		assert.False(t, m.IsCastle(), "castling must be illegal while the king is in check")
	}
}

func TestCastlingAllowedWhenClear(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenAll)
	found := 0
	for _, m := range moves {
		if m.IsCastle() {
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestEnPassantCaptureGenerated(t *testing.T) {
	p, err := position.NewFromFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenAll)
	found := false
	for _, m := range moves {
		if m.IsEnPassant() {
			found = true
			assert.Equal(t, SqE5, m.From())
			assert.Equal(t, SqD6, m.To())
		}
	}
	assert.True(t, found, "en passant capture should be generated")
}

func TestPromotionGeneratesFourMoves(t *testing.T) {
	p, err := position.NewFromFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	moves := g.GenerateLegal(p, GenAll)
	count := 0
	for _, m := range moves {
		if m.From() == SqA7 && m.To() == SqA8 {
			count++
			assert.True(t, m.IsPromotion())
		}
	}
	assert.Equal(t, 4, count)
}

func TestCheckmateDetection(t *testing.T) {
	// back-rank mate
	p, err := position.NewFromFen("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	p.Make(CreateMove(SqA1, SqA8, FlagNormal))
	assert.True(t, g.IsCheckmate(p))
	assert.False(t, g.IsStalemate(p))
}

func TestStalemateDetection(t *testing.T) {
	p, err := position.NewFromFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	assert.False(t, p.InCheck(p.SideToMove()))
	assert.True(t, g.IsStalemate(p))
}

func perft(p *position.Position, g *Generator, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := g.GenerateLegal(p, GenAll)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		u := p.Make(m)
		nodes += perft(p, g, depth-1)
		p.Unmake(m, u)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	p := position.New()
	g := NewGenerator()
	assert.Equal(t, 20, perft(p, g, 1))
	assert.Equal(t, 400, perft(p, g, 2))
	assert.Equal(t, 8902, perft(p, g, 3))
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	assert.Equal(t, 48, perft(p, g, 1))
	assert.Equal(t, 2039, perft(p, g, 2))
	assert.Equal(t, 97862, perft(p, g, 3))
}

func TestPerftPosition3(t *testing.T) {
	p, err := position.NewFromFen("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	require.NoError(t, err)
	g := NewGenerator()
	assert.Equal(t, 14, perft(p, g, 1))
	assert.Equal(t, 191, perft(p, g, 2))
	assert.Equal(t, 2812, perft(p, g, 3))
	assert.Equal(t, 43238, perft(p, g, 4))
}
