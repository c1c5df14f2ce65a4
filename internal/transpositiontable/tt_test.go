package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/zobrist"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestResizeGivesPowerOfTwoEntries(t *testing.T) {
	tt := New(1)
	n := len(tt.slots)
	assert.Equal(t, n, n&-n) // power of two
	assert.Greater(t, n, 0)
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := New(1)
	res := tt.Probe(0x1234, 4, -1000, 1000)
	assert.False(t, res.Hit)
}

func TestStoreThenProbeExactHit(t *testing.T) {
	tt := New(1)
	tt.Store(0xabc, 123, CreateMove(SqE2, SqE4, FlagNormal), 5, NodeExact)
	res := tt.Probe(0xabc, 5, -1000, 1000)
	assert.True(t, res.Hit)
	assert.True(t, res.ScoreUsable)
	assert.EqualValues(t, 123, res.Score)
	assert.Equal(t, CreateMove(SqE2, SqE4, FlagNormal), res.Move)
}

func TestProbeInsufficientDepthReturnsMoveOnly(t *testing.T) {
	tt := New(1)
	tt.Store(0xabc, 123, CreateMove(SqE2, SqE4, FlagNormal), 3, NodeExact)
	res := tt.Probe(0xabc, 6, -1000, 1000)
	assert.True(t, res.Hit)
	assert.False(t, res.ScoreUsable)
	assert.Equal(t, CreateMove(SqE2, SqE4, FlagNormal), res.Move)
}

func TestLowerBoundUsableOnlyAboveBeta(t *testing.T) {
	tt := New(1)
	tt.Store(0xdef, 500, MoveNone, 4, NodeLowerBound)
	below := tt.Probe(0xdef, 4, -1000, 600)
	assert.False(t, below.ScoreUsable)
	above := tt.Probe(0xdef, 4, -1000, 400)
	assert.True(t, above.ScoreUsable)
}

func TestUpperBoundUsableOnlyBelowAlpha(t *testing.T) {
	tt := New(1)
	tt.Store(0x111, -500, MoveNone, 4, NodeUpperBound)
	above := tt.Probe(0x111, 4, -600, 1000)
	assert.False(t, above.ScoreUsable)
	below := tt.Probe(0x111, 4, -400, 1000)
	assert.True(t, below.ScoreUsable)
}

func TestStoreSameHashRefreshesEvenWhenShallower(t *testing.T) {
	tt := New(1)
	// force a collision: different key landing on same slot is hard to
	// construct directly, so instead verify the same-hash update path
	// always refreshes depth/score even when shallower.
	tt.Store(0x222, 100, MoveNone, 8, NodeExact)
	tt.Store(0x222, 50, MoveNone, 2, NodeExact)
	res := tt.Probe(0x222, 2, -1000, 1000)
	assert.EqualValues(t, 50, res.Score)
}

func TestNewSearchAllowsOverwriteOfOlderDeeperEntry(t *testing.T) {
	tt := New(1)
	idx := tt.index(0x333)
	tt.Store(0x333, 999, MoveNone, 10, NodeExact)

	// find a different key colliding on the same slot
	var collidingKey zobrist.Key
	for k := zobrist.Key(1); ; k++ {
		if tt.index(k) == idx && k != 0x333 {
			collidingKey = k
			break
		}
	}

	// same search generation: a shallower collision must not overwrite
	tt.Store(collidingKey, 1, MoveNone, 1, NodeExact)
	stillOriginal := tt.Probe(0x333, 10, -1000, 1000)
	assert.True(t, stillOriginal.Hit)

	// once the search generation advances, the older depth-10 entry is
	// replaceable even though the new depth is still less than 10.
	tt.NewSearch()
	tt.Store(collidingKey, 2, MoveNone, 1, NodeExact)
	replaced := tt.Probe(0x333, 10, -1000, 1000)
	assert.False(t, replaced.Hit)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	tt.Store(0x555, 1, MoveNone, 1, NodeExact)
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	res := tt.Probe(0x555, 1, -1000, 1000)
	assert.False(t, res.Hit)
}

func TestHashfullReportsPermille(t *testing.T) {
	tt := New(1)
	assert.Equal(t, 0, tt.Hashfull())
	tt.Store(0x666, 1, MoveNone, 1, NodeExact)
	assert.Greater(t, tt.Hashfull(), -1)
}
