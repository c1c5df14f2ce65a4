package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/moveconv"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

func searchSync(t *testing.T, p *position.Position, sl Limits) Result {
	t.Helper()
	s := NewSearch()
	s.StartSearch(*p, sl)
	s.WaitWhileSearching()
	return s.LastResult()
}

func TestFindsMateInOne(t *testing.T) {
	p, err := position.NewFromFen("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	result := searchSync(t, p, Limits{Depth: 4})
	assert.Equal(t, "a1a8", moveconv.ToUci(result.BestMove))
	assert.True(t, result.Value.IsMate())
	assert.Equal(t, 1, result.Value.MateIn())
}

func TestFindsMateInTwo(t *testing.T) {
	p, err := position.NewFromFen("1k6/8/1K6/8/8/8/8/R7 w - - 0 1")
	require.NoError(t, err)
	result := searchSync(t, p, Limits{Depth: 6})
	assert.True(t, result.Value.IsMate())
	assert.Equal(t, 2, result.Value.MateIn())
}

func TestStalemateReturnsDraw(t *testing.T) {
	p, err := position.NewFromFen("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	result := searchSync(t, p, Limits{Depth: 2})
	assert.Equal(t, ValueDraw, result.Value)
}

func TestDepthLimitIsHonored(t *testing.T) {
	p := position.New()
	result := searchSync(t, p, Limits{Depth: 3})
	assert.Equal(t, 3, result.Depth)
	assert.True(t, result.BestMove.IsValid())
}

func TestNodeLimitStopsSearch(t *testing.T) {
	p := position.New()
	result := searchSync(t, p, Limits{Nodes: 50})
	assert.True(t, result.BestMove.IsValid())
}

func TestStopSearchInterruptsInfiniteSearch(t *testing.T) {
	p := position.New()
	s := NewSearch()
	s.StartSearch(*p, Limits{Infinite: true})
	time.Sleep(20 * time.Millisecond)
	s.StopSearch()
	result := s.LastResult()
	assert.True(t, result.BestMove.IsValid())
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	p := position.New()
	s := NewSearch()
	s.StartSearch(*p, Limits{Depth: 4})
	s.WaitWhileSearching()
	assert.Greater(t, s.tt.Len(), uint64(0))
	s.NewGame()
	assert.Equal(t, uint64(0), s.tt.Len())
}

func TestPonderMoveIsSecondPVMove(t *testing.T) {
	p := position.New()
	result := searchSync(t, p, Limits{Depth: 3})
	if len(result.PonderMove.String()) > 0 {
		assert.NotEqual(t, result.BestMove, result.PonderMove)
	}
}
