package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestFutilityMarginOnlyDefinedForDepthOneAndTwo(t *testing.T) {
	assert.Equal(t, Value(200), futilityMargin[1])
	assert.Equal(t, Value(400), futilityMargin[2])
}

func TestRfpMarginMatchesFixedSchedule(t *testing.T) {
	assert.Equal(t, Value(200), rfpMargin[1])
	assert.Equal(t, Value(300), rfpMargin[2])
	assert.Equal(t, Value(500), rfpMargin[3])
}

func TestAspirationWindowIsFiftyCentipawns(t *testing.T) {
	assert.Equal(t, Value(50), aspirationWindow)
}

func TestLmrConstantsMatchFixedThresholds(t *testing.T) {
	assert.Equal(t, 3, lmrMinDepth)
	assert.Equal(t, 4, lmrMinMovesSearched)
	assert.Equal(t, 1, lmrReduction)
}
