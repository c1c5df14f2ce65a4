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

// Package perft counts leaf nodes of the legal move tree to a fixed
// depth: the move generator's correctness oracle (spec.md §8). Perft
// is a verification tool external to the search, not the search
// itself, so depth-1-parallel perft across root moves does not
// conflict with spec.md §5's single-threaded search requirement - each
// goroutine here owns its own copy of the Position.
package perft

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/moveconv"
	"github.com/frankkopp/chesscore/internal/position"
)

// Count walks the legal move tree depth plies deep from p and returns
// the number of leaf positions, single-threaded.
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	g := movegen.NewGenerator()
	moves := g.GenerateLegal(p, movegen.GenAll)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.Make(m)
		nodes += Count(p, depth-1)
		p.Unmake(m, u)
	}
	return nodes
}

// CountParallel runs one goroutine per root move, each walking depth-1
// plies on its own copy of p, and sums the results. Only the root
// split is parallel; each subtree below it is single-threaded Count.
func CountParallel(p *position.Position, depth int) (uint64, error) {
	if depth <= 1 {
		return Count(p, depth), nil
	}
	g := movegen.NewGenerator()
	moves := g.GenerateLegal(p, movegen.GenAll)

	partials := make([]uint64, len(moves))
	eg, _ := errgroup.WithContext(context.Background())
	for i, m := range moves {
		i, m := i, m
		eg.Go(func() error {
			child := *p
			u := child.Make(m)
			partials[i] = Count(&child, depth-1)
			child.Unmake(m, u)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	var total uint64
	for _, n := range partials {
		total += n
	}
	return total, nil
}

// Divide reports, per root move, the leaf count of its subtree at
// depth-1: the standard perft debugging aid for isolating a move
// generation bug to a specific root move.
func Divide(p *position.Position, depth int) map[string]uint64 {
	g := movegen.NewGenerator()
	moves := g.GenerateLegal(p, movegen.GenAll)
	out := make(map[string]uint64, len(moves))
	for _, m := range moves {
		u := p.Make(m)
		out[moveconv.ToUci(m)] = Count(p, depth-1)
		p.Unmake(m, u)
	}
	return out
}
