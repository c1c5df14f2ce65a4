//
// chesscore - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration toggles the evaluator's optional terms (spec.md
// §4.4 describes material plus piece-square tables as the mandatory
// core; everything here is additive and off or neutral by default so
// the core evaluator's output is unaffected unless explicitly enabled).
// The mobility/king-safety/pawn-structure toggles the teacher's
// evalconfig.go carries do not apply - spec.md §1 Non-goals excludes
// those terms entirely, so only the two terms the evaluator actually
// has room for are represented.
type evalConfiguration struct {
	// UseTempo adds Tempo centipawns to the side to move's score.
	UseTempo bool
	Tempo    int16

	// UsePST gates the piece-square table lookup; false scores
	// material only, useful for isolating PST regressions.
	UsePST bool

	// EndgameMaterialThreshold overrides evaluator.EndgameMaterialThreshold
	// when positive; zero (the default) keeps the evaluator's own constant.
	EndgameMaterialThreshold int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Eval.UseTempo = false
	Settings.Eval.Tempo = 20

	Settings.Eval.UsePST = true

	Settings.Eval.EndgameMaterialThreshold = 0
}

// set defaults for configurations not available from the config file.
func setupEval() {
}
