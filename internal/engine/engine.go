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

// Package engine bundles the process-wide state a driver needs to play
// chess - transposition table, move ordering tables, repetition history,
// opening book - behind a single handle created once at startup and torn
// down at shutdown, so a driver never has to wire those pieces together
// itself or worry about sharing them safely across searches.
package engine

import (
	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/history"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/openingbook"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/transpositiontable"
	. "github.com/corvidchess/corvid/internal/types"
)

// Engine owns every piece of state a search needs across calls: the
// transposition table, killer and history move-ordering tables, the
// repetition stack, and the opening book. Exactly one goroutine may call
// into an Engine at a time, matching the single-threaded-cooperative
// search model: nothing here is synchronized.
type Engine struct {
	log *logging.Logger

	tt      *transpositiontable.Table
	killers *history.Killers
	history *history.Table
	rep     *search.RepetitionHistory
	ctx     *search.Context
	book    *openingbook.Book
}

// New creates an Engine with a transposition table sized per
// config.Settings.Search.TTSize. The opening book is not loaded until
// Init is called.
func New() *Engine {
	e := &Engine{
		log:     myLogging.GetLog(),
		tt:      transpositiontable.New(config.Settings.Search.TTSize),
		killers: history.NewKillers(),
		history: history.NewTable(),
		rep:     search.NewRepetitionHistory(),
		book:    openingbook.New(),
	}
	e.ctx = search.NewContext(e.tt, e.killers, e.history, e.rep)
	return e
}

// Init loads the opening book. It is safe to call even when
// config.Settings.Book.UseBook is false: BookProbe then simply never
// matches.
func (e *Engine) Init() error {
	return e.book.Initialize()
}

// Close releases the opening book's resident data. The transposition
// table and move-ordering tables are left as-is; there is nothing to
// release beyond normal garbage collection.
func (e *Engine) Close() {
	e.book.Close()
}

// SearchGo runs iterative deepening from board under limits, using this
// engine's shared tables. board is left exactly as it was found.
func (e *Engine) SearchGo(board *position.Board, limits search.Limits) search.Result {
	return e.ctx.Go(board, limits)
}

// BookProbe returns a book move for board, if the opening book is ready
// and has a validated match.
func (e *Engine) BookProbe(board *position.Board) (Move, bool) {
	return e.book.Probe(board)
}

// BookInfo reports the opening book's readiness, segment count and total
// entry count.
func (e *Engine) BookInfo() (ready bool, segments int, entries int) {
	return e.book.GetInfo()
}

// BookTierName returns the tier prefix the opening book loaded, or "" if
// not ready.
func (e *Engine) BookTierName() string {
	return e.book.GetTierName()
}

// NewGame clears every piece of state that must not leak across games:
// the transposition table, move-ordering tables and repetition stack. The
// opening book is untouched since it is read-only after Init.
func (e *Engine) NewGame() {
	e.tt.Clear()
	e.killers.Clear()
	e.history.Clear()
	e.rep.Clear()
}

// PushPosition and PopPosition let a driver maintain the repetition stack
// across moves played outside of search (e.g. the opponent's reply).
func (e *Engine) PushPosition(hash uint32) { e.rep.Push(hash) }
func (e *Engine) PopPosition()             { e.rep.Pop() }
func (e *Engine) SetIrreversible()         { e.rep.SetIrreversible() }

// Stats returns the most recent SearchGo call's diagnostic counters.
func (e *Engine) Stats() search.Statistics {
	return e.ctx.Stats
}
