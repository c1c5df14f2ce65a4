package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestSavePVPrependsMoveToChildLine(t *testing.T) {
	var dst pvLine
	child := pvLine{CreateMove(SqE7, SqE5, FlagNormal)}
	m := CreateMove(SqE2, SqE4, FlagNormal)
	savePV(&dst, m, child)
	assert.Equal(t, pvLine{m, child[0]}, dst)
}

func TestPVLineFirstOnEmptyLineIsMoveNone(t *testing.T) {
	var l pvLine
	assert.Equal(t, MoveNone, l.first())
}

func TestSavePVOverwritesPreviousLine(t *testing.T) {
	dst := pvLine{CreateMove(SqD2, SqD4, FlagNormal)}
	m := CreateMove(SqE2, SqE4, FlagNormal)
	savePV(&dst, m, nil)
	assert.Equal(t, pvLine{m}, dst)
}
