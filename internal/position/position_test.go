package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestStartingPositionFenRoundTrip(t *testing.T) {
	p := New()
	assert.Equal(t, StartFen, p.ToFen())
	assert.NoError(t, p.VerifyInvariants())
}

func TestFenRoundTripKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := NewFromFen(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.ToFen())
	assert.NoError(t, p.VerifyInvariants())
}

func TestInvalidFenWrongFieldCount(t *testing.T) {
	_, err := NewFromFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.Error(t, err)
	var fenErr *InvalidFenError
	assert.ErrorAs(t, err, &fenErr)
}

func TestInvalidFenBadPiece(t *testing.T) {
	_, err := NewFromFen("rnbqkbXr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
}

func TestMakeUnmakeNormalMoveReversible(t *testing.T) {
	p := New()
	before := p.ToFen()
	beforeHash := p.ZobristHash()

	m := CreateMove(SqG1, SqF3, FlagNormal) // Nf3
	u := p.Make(m)
	assert.NotEqual(t, before, p.ToFen())
	assert.NoError(t, p.VerifyInvariants())

	p.Unmake(m, u)
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, beforeHash, p.ZobristHash())
}

func TestMakeUnmakePawnDoublePushSetsEnPassant(t *testing.T) {
	p := New()
	before := p.ToFen()

	m := CreateMove(SqE2, SqE4, FlagNormal)
	u := p.Make(m)
	assert.Equal(t, SqE3, p.EnPassantSquare())
	assert.NoError(t, p.VerifyInvariants())

	p.Unmake(m, u)
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, SqNone, p.EnPassantSquare())
}

func TestMakeUnmakeCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"
	p, err := NewFromFen(fen)
	require.NoError(t, err)
	before := p.ToFen()
	beforeHash := p.ZobristHash()

	m := CreateMove(SqE4, SqD5, FlagNormal) // exd5 capture
	u := p.Make(m)
	assert.Equal(t, WhitePawn, p.PieceAt(SqD5))
	assert.Equal(t, BlackPawn, u.captured)
	assert.NoError(t, p.VerifyInvariants())
	assert.Equal(t, 0, p.HalfmoveClock())

	p.Unmake(m, u)
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, beforeHash, p.ZobristHash())
}

func TestMakeUnmakeEnPassantCapture(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	p, err := NewFromFen(fen)
	require.NoError(t, err)
	before := p.ToFen()
	beforeHash := p.ZobristHash()

	m := CreateMove(SqE5, SqD6, FlagEnPassant)
	u := p.Make(m)
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
	assert.NoError(t, p.VerifyInvariants())

	p.Unmake(m, u)
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, beforeHash, p.ZobristHash())
	assert.Equal(t, BlackPawn, p.PieceAt(SqD5))
}

func TestMakeUnmakeCastlingKingside(t *testing.T) {
	fen := "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	p, err := NewFromFen(fen)
	require.NoError(t, err)
	before := p.ToFen()
	beforeHash := p.ZobristHash()

	m := CreateMove(SqE1, SqG1, FlagCastleKingside)
	u := p.Make(m)
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteK))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteQ))
	assert.NoError(t, p.VerifyInvariants())

	p.Unmake(m, u)
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, beforeHash, p.ZobristHash())
}

func TestMakeUnmakePromotion(t *testing.T) {
	fen := "8/P7/8/8/8/8/8/k6K w - - 0 1"
	p, err := NewFromFen(fen)
	require.NoError(t, err)
	before := p.ToFen()
	beforeHash := p.ZobristHash()

	m := CreateMove(SqA7, SqA8, FlagPromoteQueen)
	u := p.Make(m)
	assert.Equal(t, WhiteQueen, p.PieceAt(SqA8))
	assert.Equal(t, PieceNone, p.PieceAt(SqA7))
	assert.NoError(t, p.VerifyInvariants())

	p.Unmake(m, u)
	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, beforeHash, p.ZobristHash())
	assert.Equal(t, WhitePawn, p.PieceAt(SqA7))
}

func TestNullMoveReversible(t *testing.T) {
	p := New()
	before := p.ToFen()
	beforeHash := p.ZobristHash()

	u := p.MakeNull()
	assert.Equal(t, Black, p.SideToMove())
	p.UnmakeNull(u)

	assert.Equal(t, before, p.ToFen())
	assert.Equal(t, beforeHash, p.ZobristHash())
}

func TestZobristMatchesFreshlyLoadedFen(t *testing.T) {
	p1 := New()
	p1.Make(CreateMove(SqE2, SqE4, FlagNormal))
	p1.Make(CreateMove(SqB8, SqC6, FlagNormal))

	p2, err := NewFromFen(p1.ToFen())
	require.NoError(t, err)
	assert.Equal(t, p1.ZobristHash(), p2.ZobristHash())
}

func TestIsAttackedStartingPosition(t *testing.T) {
	p := New()
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.False(t, p.IsAttacked(SqE5, White))
	assert.False(t, p.InCheck(White))
	assert.False(t, p.InCheck(Black))
}
