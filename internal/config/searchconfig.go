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

// searchConfiguration toggles which search techniques run. The
// numeric thresholds for each (RFP/FP margins, LMR depth/move
// counts, null-move R, aspiration window width) are fixed constants
// in internal/search, not configuration - only the on/off switch
// lives here, mirroring the teacher's UseXXX toggle style. Book,
// ponder and SEE/IID toggles are dropped with their features (no
// opening book, no pondering, no quiescence SEE gate - spec.md §1
// Non-goals).
type searchConfiguration struct {
	// Transposition table
	UseTT    bool
	TTSizeMB int

	// Move ordering
	UseKiller bool

	// Prunings pre move generation
	UseRFP      bool
	UseNullMove bool

	// Extensions
	UseCheckExt bool

	// Prunings after move generation but before making the move
	UseFP  bool
	UseLMR bool

	// Aspiration windows in iterative deepening
	UseAspiration bool
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseKiller = true

	Settings.Search.UseRFP = true
	Settings.Search.UseNullMove = true

	Settings.Search.UseCheckExt = true

	Settings.Search.UseFP = true
	Settings.Search.UseLMR = true

	Settings.Search.UseAspiration = true
}

// set defaults for configurations not available from the config file.
func setupSearch() {
}
