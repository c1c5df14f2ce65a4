package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/position"
)

func TestStartingPositionIsBalanced(t *testing.T) {
	p := position.New()
	assert.Equal(t, 0, Evaluate(p))
}

func TestExtraQueenIsAdvantage(t *testing.T) {
	p, err := position.NewFromFen("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	score := Evaluate(p)
	assert.Greater(t, score, 800)
}

func TestScoreFlipsWithSideToMove(t *testing.T) {
	white, err := position.NewFromFen("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	black, err := position.NewFromFen("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Evaluate(white), -Evaluate(black))
}

func TestKingAndPawnIsBelowEndgameThreshold(t *testing.T) {
	endgame, err := position.NewFromFen("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Less(t, nonKingMaterial(endgame), EndgameMaterialThreshold)
}
