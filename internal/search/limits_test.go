package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestTimeControlBudgetUsesMoveTimeMinusOverhead(t *testing.T) {
	sl := Limits{MoveTime: 500 * time.Millisecond}
	got := timeControlBudget(sl, White)
	assert.Equal(t, 480*time.Millisecond, got)
}

func TestTimeControlBudgetFallsBackToMoveTimeWhenBelowOverhead(t *testing.T) {
	sl := Limits{MoveTime: 10 * time.Millisecond}
	got := timeControlBudget(sl, White)
	assert.Equal(t, 10*time.Millisecond, got)
}

func TestTimeControlBudgetSpreadsClockOverEstimatedMovesLeft(t *testing.T) {
	sl := Limits{WhiteTime: 30 * time.Second, MovesToGo: 30}
	got := timeControlBudget(sl, White)
	assert.Greater(t, got, time.Duration(0))
	assert.Less(t, got, sl.WhiteTime)
}

func TestTimeControlBudgetUsesDefaultMovesToGoWhenUnset(t *testing.T) {
	sl := Limits{WhiteTime: 60 * time.Second}
	got := timeControlBudget(sl, White)
	assert.Greater(t, got, time.Duration(0))
}

func TestTimeControlBudgetReadsBlackClockForBlackToMove(t *testing.T) {
	sl := Limits{WhiteTime: 60 * time.Second, BlackTime: 6 * time.Second, MovesToGo: 10}
	got := timeControlBudget(sl, Black)
	assert.Less(t, got, 2*time.Second)
}
