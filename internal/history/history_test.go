package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestStoreKillerKeepsTwoMostRecent(t *testing.T) {
	tbl := NewTable()
	m1 := CreateMove(SqE2, SqE4, FlagNormal)
	m2 := CreateMove(SqD2, SqD4, FlagNormal)
	m3 := CreateMove(SqG1, SqF3, FlagNormal)

	tbl.StoreKiller(0, m1)
	tbl.StoreKiller(0, m2)
	k0, k1 := tbl.Killers(0)
	assert.Equal(t, m2, k0)
	assert.Equal(t, m1, k1)

	tbl.StoreKiller(0, m3)
	k0, k1 = tbl.Killers(0)
	assert.Equal(t, m3, k0)
	assert.Equal(t, m2, k1)
}

func TestStoreKillerDeduplicatesSameMove(t *testing.T) {
	tbl := NewTable()
	m1 := CreateMove(SqE2, SqE4, FlagNormal)
	tbl.StoreKiller(3, m1)
	tbl.StoreKiller(3, m1)
	k0, k1 := tbl.Killers(3)
	assert.Equal(t, m1, k0)
	assert.Equal(t, MoveNone, k1)
}

func TestAddHistoryAccumulatesSquared(t *testing.T) {
	tbl := NewTable()
	tbl.AddHistory(White, SqE2, SqE4, 3)
	assert.EqualValues(t, 9, tbl.Score(White, SqE2, SqE4))
	tbl.AddHistory(White, SqE2, SqE4, 4)
	assert.EqualValues(t, 25, tbl.Score(White, SqE2, SqE4))
}

func TestAddHistoryHalvesOnOverflow(t *testing.T) {
	tbl := NewTable()
	// Depth-16 cutoffs add 256 each time; enough repeats eventually
	// cross historyOverflow and the table must halve rather than grow
	// past it.
	for i := 0; i < 4200; i++ {
		tbl.AddHistory(Black, SqA7, SqA5, 16)
	}
	assert.Less(t, tbl.Score(Black, SqA7, SqA5), int32(historyOverflow))
}

func TestClearResetsTables(t *testing.T) {
	tbl := NewTable()
	m := CreateMove(SqE2, SqE4, FlagNormal)
	tbl.StoreKiller(0, m)
	tbl.AddHistory(White, SqE2, SqE4, 5)
	tbl.Clear()
	k0, _ := tbl.Killers(0)
	assert.Equal(t, MoveNone, k0)
	assert.EqualValues(t, 0, tbl.Score(White, SqE2, SqE4))
}
