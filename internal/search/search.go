/*
 * Corvid - a chess engine core in Go, written for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 * Copyright (c) 2026 The Corvid Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package search implements iterative-deepening negamax over the board
// and move generator packages: alpha-beta with PVS, null-move pruning,
// late move reductions, quiescence, transposition-table-backed cutoffs,
// killer/history move ordering, repetition detection and aspiration
// windows. It is single-threaded and cooperative: a Context is owned by
// exactly one call to Go at a time.
package search

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/history"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

// Context bundles one search invocation's mutable state: the process-wide
// tables it was handed by the owning engine handle, plus per-call
// bookkeeping (node count, deadline, stop flag, statistics).
type Context struct {
	TT         *transpositiontable.Table
	Killers    *history.Killers
	History    *history.Table
	Repetition *RepetitionHistory
	Pool       *movePool

	Stats Statistics

	log *logging.Logger

	limits      Limits
	startMs     uint32
	deadlineMs  uint32
	nodes       uint64
	stopped     bool
	rng         uint32
	rootMove    Move
	rootScore   Value
	rootReached bool
}

// NewContext creates a Context around process-wide tables owned by an
// engine handle. The same Context is reused across successive Go calls so
// the move pool's backing array is allocated only once.
func NewContext(tt *transpositiontable.Table, killers *history.Killers, hist *history.Table, rep *RepetitionHistory) *Context {
	return &Context{
		TT:         tt,
		Killers:    killers,
		History:    hist,
		Repetition: rep,
		Pool:       newMovePool(),
		log:        myLogging.GetLog(),
	}
}

// Go runs iterative deepening on b under limits and returns the best
// completed iteration. b is restored to its starting position on return:
// every descent is undone via make/unmake, even on a mid-search stop.
func (c *Context) Go(b *position.Board, limits Limits) Result {
	c.limits = limits
	c.nodes = 0
	c.stopped = false
	c.rootMove = MoveNone
	c.rootScore = ValueNone
	c.rootReached = false
	c.Stats.reset()
	c.TT.NewSearch()

	if limits.hasTimeLimit() {
		c.startMs = limits.TimeFn()
		c.deadlineMs = c.startMs + limits.MaxTimeMs
	}
	if limits.EvalNoise != 0 {
		c.rng = b.Hash() ^ 0xDEAD
		if limits.TimeFn != nil {
			c.rng ^= limits.TimeFn()
		}
	}

	maxDepth := limits.effectiveMaxDepth()
	best := Result{BestMove: MoveNone, Score: ValueNone}
	window := Value(config.Settings.Search.AspirationDelta)

	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := Value(-ValueInfinite), Value(ValueInfinite)
		if config.Settings.Search.UseAspiration && depth > 1 && best.Score != ValueNone {
			alpha = best.Score - window
			beta = best.Score + window
		}

		score := c.searchRoot(b, depth, alpha, beta)
		if config.Settings.Search.UseAspiration && !c.stopped && (score <= alpha || score >= beta) {
			score = c.searchRoot(b, depth, -ValueInfinite, ValueInfinite)
		}

		if c.stopped && !c.rootReached {
			if c.extendDeadlineOnce() {
				depth--
				continue
			}
			break
		}

		if c.rootReached {
			best.BestMove = c.rootMove
			best.Score = score
			best.Depth = depth
		}
		c.rootReached = false

		if c.stopped {
			break
		}
	}

	best.Nodes = c.nodes
	return best
}

// searchRoot runs one depth's negamax at the root, tracking the best root
// move as soon as each child finishes so a mid-iteration stop still has a
// move to report.
func (c *Context) searchRoot(b *position.Board, depth int, alpha, beta Value) Value {
	us := b.Side()
	info := movegen.ComputeLegalInfo(b, us)
	mark := c.Pool.mark()
	defer c.Pool.restore(mark)

	var buf [maxMovesPerNode]Move
	n := movegen.Generate(b, movegen.All, buf[:])
	scored, ok := c.Pool.claim(n)
	if !ok {
		return 0
	}
	for i := 0; i < n; i++ {
		scored[i] = ScoredMove{Move: buf[i], Score: c.orderScore(b, buf[i], c.rootMove, 0)}
	}

	best := Value(-ValueInfinite)
	legalMoves := 0
	noiseCap := Value(c.limits.EvalNoise)
	allowNoise := noiseCap != 0 && b.FullmoveNumber() <= config.Settings.Search.EvalNoiseMaxMove

	for i := 0; i < n; i++ {
		pickBest(scored[i:])
		m := scored[i].Move
		if info.InCheck && !movegen.IsEvasionCandidate(b, m, us, info) {
			continue
		}

		var undo position.Undo
		b.Make(m, &undo)
		if b.InCheck(us) {
			b.Unmake(m, &undo)
			continue
		}
		legalMoves++
		c.Repetition.Push(b.Hash())

		var score Value
		if legalMoves == 1 {
			score = -c.negamax(b, depth-1, -beta, -alpha, 1, true, 0)
		} else {
			score = -c.negamax(b, depth-1, -alpha-1, -alpha, 1, true, 0)
			if score > alpha && score < beta && !c.stopped {
				score = -c.negamax(b, depth-1, -beta, -alpha, 1, true, 0)
			}
		}

		c.Repetition.Pop()
		b.Unmake(m, &undo)

		if c.stopped {
			return 0
		}

		if allowNoise {
			score += c.evalNoise(noiseCap)
		}

		if score > best {
			best = score
			c.rootMove = m
			c.rootScore = score
			c.rootReached = true
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best
}

// evalNoise draws a uniform value in [-cap, +cap] from an xorshift32
// generator, used only to diversify opening play when configured.
func (c *Context) evalNoise(cap Value) Value {
	x := c.rng
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	c.rng = x
	span := int64(cap)*2 + 1
	return Value(int64(x%uint32(span)) - int64(cap))
}

// checkStop evaluates the injected clock and node limit, latching stopped.
func (c *Context) checkStop() {
	if c.stopped {
		return
	}
	if c.limits.hasNodeLimit() && c.nodes >= uint64(c.limits.MaxNodes) {
		c.stopped = true
		return
	}
	if c.limits.hasTimeLimit() && c.limits.TimeFn() >= c.deadlineMs {
		c.stopped = true
	}
}

// extendDeadlineOnce applies the one-shot time-extension safety valve: if
// the clock ran out before any root move was found, push the deadline
// back and let the caller retry the same depth.
func (c *Context) extendDeadlineOnce() bool {
	if !c.limits.hasTimeLimit() || c.rootMove != MoveNone || c.deadlineMs != c.startMs+c.limits.MaxTimeMs {
		return false
	}
	c.deadlineMs += uint32(config.Settings.Search.TimeExtensionMs)
	c.stopped = false
	return true
}
