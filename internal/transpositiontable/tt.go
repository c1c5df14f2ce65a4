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

// Package transpositiontable implements the search's hash table
// (spec.md §4.5): a fixed power-of-two-sized array of 16-byte entries,
// indexed by the low bits of the Zobrist hash, with a depth/age
// replacement policy. Table is private to one search; probe and store
// are O(1) and need no synchronization (spec.md §5).
package transpositiontable

import (
	"math/bits"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/zobrist"

	. "github.com/frankkopp/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// MaxSizeMB bounds the memory budget Resize accepts.
const MaxSizeMB = 65_536

const bytesPerMB = 1024 * 1024

// Table is the transposition table.
type Table struct {
	log   *logging.Logger
	slots []entry
	mask  uint64
	age   uint8
	used  uint64
	Stats Stats
}

// Stats tracks usage counters, reported by the search's statistics
// (supplemented feature, not load-bearing for correctness).
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// Result is what Probe found for a given hash.
type Result struct {
	// Hit is true when the hash matched a stored slot at all (even if
	// the depth was insufficient for a cutoff).
	Hit bool
	// Move is the stored best move, valid whenever Hit is true.
	Move Move
	// ScoreUsable is true when Score can be used directly as the node's
	// return value (depth sufficient and the node type/bound makes the
	// stored score conclusive against the caller's window).
	ScoreUsable bool
	Score       Value
}

// New creates a table sized to the given memory budget in MiB.
func New(sizeMB int) *Table {
	tt := &Table{log: myLogging.GetLog()}
	tt.Resize(sizeMB)
	return tt
}

// Resize reallocates the table for a new memory budget, clearing all
// entries. Not safe to call concurrently with Probe/Store.
func (tt *Table) Resize(sizeMB int) {
	if sizeMB > MaxSizeMB {
		tt.log.Error(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeMB, MaxSizeMB))
		sizeMB = MaxSizeMB
	}
	if sizeMB <= 0 {
		tt.slots = nil
		tt.mask = 0
		tt.used = 0
		return
	}
	budget := uint64(sizeMB) * bytesPerMB
	maxEntries := budget / entrySize
	if maxEntries == 0 {
		maxEntries = 1
	}
	numEntries := uint64(1) << uint(bits.Len64(maxEntries)-1)
	tt.slots = make([]entry, numEntries)
	tt.mask = numEntries - 1
	tt.used = 0
	tt.Stats = Stats{}
	if tt.log != nil {
		tt.log.Info(out.Sprintf("TT resized to %d MB, %d entries (%d bytes/entry)",
			numEntries*entrySize/bytesPerMB, numEntries, entrySize))
	}
}

func (tt *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & tt.mask
}

// Probe looks up hash for use at depth against window (alpha, beta),
// per spec.md §4.5's probe semantics.
func (tt *Table) Probe(hash zobrist.Key, depth int8, alpha, beta Value) Result {
	if len(tt.slots) == 0 {
		return Result{}
	}
	tt.Stats.Probes++
	e := &tt.slots[tt.index(hash)]
	if e.isEmpty() || e.key != hash {
		tt.Stats.Misses++
		return Result{}
	}
	tt.Stats.Hits++
	res := Result{Hit: true, Move: e.move}
	if e.depth < depth {
		return res
	}
	switch {
	case e.nodeType == NodeExact:
		res.ScoreUsable = true
	case e.nodeType == NodeLowerBound && e.score >= beta:
		res.ScoreUsable = true
	case e.nodeType == NodeUpperBound && e.score <= alpha:
		res.ScoreUsable = true
	}
	if res.ScoreUsable {
		res.Score = e.score
	}
	return res
}

// Store records a search result, per spec.md §4.5's replacement
// policy: always overwrite an empty slot, a slot with the same hash,
// a slot whose depth is not deeper than the new one, or a slot from a
// different search generation.
func (tt *Table) Store(hash zobrist.Key, score Value, move Move, depth int8, nt NodeType) {
	if len(tt.slots) == 0 {
		return
	}
	tt.Stats.Puts++
	e := &tt.slots[tt.index(hash)]

	switch {
	case e.isEmpty():
		tt.used++
	case e.key != hash:
		tt.Stats.Collisions++
		if depth < e.depth && e.age == tt.age {
			return
		}
		tt.Stats.Overwrites++
	default:
		tt.Stats.Updates++
	}

	e.key = hash
	e.move = move
	e.score = score
	e.depth = depth
	e.nodeType = nt
	e.age = tt.age
}

// NewSearch advances the table's age, per spec.md §4.5's
// `new_search()`. Entries from a prior age are always replaceable
// regardless of depth.
func (tt *Table) NewSearch() {
	tt.age++
}

// Clear zeroes every slot.
func (tt *Table) Clear() {
	for i := range tt.slots {
		tt.slots[i] = entry{}
	}
	tt.used = 0
	tt.age = 0
	tt.Stats = Stats{}
}

// Len returns the number of non-empty slots.
func (tt *Table) Len() uint64 {
	return tt.used
}

// Hashfull reports how full the table is, in permille, as UCI does.
func (tt *Table) Hashfull() int {
	if len(tt.slots) == 0 {
		return 0
	}
	return int((1000 * tt.used) / uint64(len(tt.slots)))
}

func (tt *Table) String() string {
	return out.Sprintf("TT: %d entries, %d%% full, puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		len(tt.slots), tt.Hashfull()/10, tt.Stats.Puts, tt.Stats.Updates, tt.Stats.Collisions,
		tt.Stats.Overwrites, tt.Stats.Probes, tt.Stats.Hits, tt.Stats.Misses)
}
