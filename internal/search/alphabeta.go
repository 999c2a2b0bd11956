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

package search

import (
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/evaluator"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// negamax returns b's score from the side-to-move's perspective at the
// given depth, searching the window (alpha, beta). ply counts plies from
// the search root; doNull allows one null-move try at this node; ext
// tracks how many check extensions have already been spent on this line.
func (c *Context) negamax(b *position.Board, depth int, alpha, beta Value, ply int, doNull bool, ext int) Value {
	c.nodes++
	c.Stats.Nodes++
	if c.nodes%uint64(config.Settings.Search.NodeCheckInterval) == 0 {
		c.checkStop()
	}
	if c.stopped {
		return 0
	}

	if ply > 0 {
		if c.Repetition.IsRepetition(b.Hash()) || b.HalfmoveClock() >= 100 {
			return ValueDraw
		}
	}

	if depth <= 0 {
		return c.quiescence(b, alpha, beta, ply, 0)
	}
	if ply >= MaxPly {
		return evaluator.Evaluate(b)
	}

	alphaOrig := alpha

	ttMove := Move(MoveNone)
	if config.Settings.Search.UseTT {
		if score, move, ttDepth, bound, ok := c.TT.Probe(b.Hash(), b.Lock(), ply); ok {
			ttMove = UnpackMove(move)
			c.Stats.TTHits++
			if int(ttDepth) >= depth {
				switch {
				case bound == BoundExact:
					return score
				case bound == BoundLower && score >= beta:
					return score
				case bound == BoundUpper && score <= alpha:
					return score
				}
			}
		} else {
			c.Stats.TTMisses++
		}
	}

	us := b.Side()
	info := movegen.ComputeLegalInfo(b, us)

	if info.InCheck && ext < config.Settings.Search.MaxCheckExtensions {
		depth++
		ext++
	}

	staticEval := evaluator.Evaluate(b)
	futile := false
	if config.Settings.Search.UseFutility && !info.InCheck && depth <= 2 && ply > 0 {
		margin := Value(config.Settings.Search.FutilityMargin1)
		if depth == 2 {
			margin = Value(config.Settings.Search.FutilityMargin2)
		}
		futile = staticEval+margin <= alpha
	}

	if config.Settings.Search.UseNullMove && doNull && !info.InCheck && depth >= config.Settings.Search.NullMoveDepth &&
		ply > 0 && hasNonPawnMaterial(b, us) {
		var nu position.NullUndo
		b.MakeNull(&nu)
		c.Repetition.Push(b.Hash())
		score := -c.negamax(b, depth-1-config.Settings.Search.NullMoveReduct, -beta, -beta+1, ply+1, false, ext)
		c.Repetition.Pop()
		b.UnmakeNull(&nu)
		if c.stopped {
			return 0
		}
		if score >= beta {
			c.Stats.NullMoveCutoffs++
			return beta
		}
	}

	mark := c.Pool.mark()
	defer c.Pool.restore(mark)

	var buf [maxMovesPerNode]Move
	n := movegen.Generate(b, movegen.All, buf[:])
	scored, ok := c.Pool.claim(n)
	if !ok {
		return staticEval
	}
	for i := 0; i < n; i++ {
		scored[i] = ScoredMove{Move: buf[i], Score: c.orderScore(b, buf[i], ttMove, ply)}
	}

	best := Value(-ValueInfinite)
	bestMove := Move(MoveNone)
	legalMoves := 0

	for i := 0; i < n; i++ {
		pickBest(scored[i:])
		m := scored[i].Move

		if info.InCheck && !movegen.IsEvasionCandidate(b, m, us, info) {
			continue
		}
		isCapture := m.IsCapture()
		isPromo := m.IsPromotion()
		if futile && legalMoves > 0 && !isCapture && !isPromo {
			continue
		}

		needsCheck := info.InCheck || !movegen.IsPseudoLegalFast(b, m, info)

		var undo position.Undo
		b.Make(m, &undo)
		if needsCheck && b.InCheck(us) {
			b.Unmake(m, &undo)
			continue
		}

		legalMoves++
		c.Repetition.Push(b.Hash())

		var score Value
		switch {
		case legalMoves == 1:
			score = -c.negamax(b, depth-1, -beta, -alpha, ply+1, true, ext)
		case !info.InCheck && legalMoves > config.Settings.Search.LmrMinMoveIndex && depth >= config.Settings.Search.LmrMinDepth && !isCapture && !isPromo && config.Settings.Search.UseLmr > 0:
			score = -c.negamax(b, depth-2, -alpha-1, -alpha, ply+1, true, ext)
			if score > alpha && !c.stopped {
				c.Stats.LmrResearches++
				score = -c.negamax(b, depth-1, -beta, -alpha, ply+1, true, ext)
			}
		default:
			score = -c.negamax(b, depth-1, -alpha-1, -alpha, ply+1, true, ext)
			if score > alpha && score < beta && !c.stopped {
				score = -c.negamax(b, depth-1, -beta, -alpha, ply+1, true, ext)
			}
		}

		c.Repetition.Pop()
		b.Unmake(m, &undo)

		if c.stopped {
			return 0
		}

		if score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			c.Stats.recordBetaCutoff(legalMoves - 1)
			if !isCapture {
				c.Killers.Store(ply, m)
				c.History.Update(us, m.To(), int8(depth))
			}
			break
		}
	}

	if legalMoves == 0 {
		if info.InCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	if config.Settings.Search.UseTT {
		bound := BoundExact
		switch {
		case best <= alphaOrig:
			bound = BoundUpper
		case best >= beta:
			bound = BoundLower
		}
		c.TT.Store(b.Hash(), b.Lock(), best, bestMove.Packed(), int8(depth), bound, ply)
	}

	return best
}

// quiescence extends search past the horizon along capturing lines only,
// to avoid misjudging a position mid-exchange. In check it searches every
// evasion; otherwise it stands pat and only tries captures.
func (c *Context) quiescence(b *position.Board, alpha, beta Value, ply, qsDepth int) Value {
	c.nodes++
	c.Stats.Nodes++
	c.Stats.QNodes++
	if c.nodes%uint64(config.Settings.Search.NodeCheckInterval) == 0 {
		c.checkStop()
	}
	if c.stopped || ply >= MaxPly {
		return 0
	}

	us := b.Side()
	info := movegen.ComputeLegalInfo(b, us)

	var standPat Value
	if !info.InCheck {
		standPat = evaluator.Evaluate(b)
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
		if qsDepth >= config.Settings.Search.QsMaxDepth {
			return alpha
		}
		if standPat+Value(config.Settings.Search.DeltaPruneMargin) < alpha {
			return alpha
		}
	}

	mark := c.Pool.mark()
	defer c.Pool.restore(mark)

	mode := movegen.Captures
	if info.InCheck {
		mode = movegen.All
	}
	var buf [maxMovesPerNode]Move
	n := movegen.Generate(b, mode, buf[:])
	scored, ok := c.Pool.claim(n)
	if !ok {
		return standPat
	}
	for i := 0; i < n; i++ {
		scored[i] = ScoredMove{Move: buf[i], Score: c.qsOrderScore(b, buf[i])}
	}

	legalMoves := 0
	for i := 0; i < n; i++ {
		pickBest(scored[i:])
		m := scored[i].Move
		if info.InCheck && !movegen.IsEvasionCandidate(b, m, us, info) {
			continue
		}

		needsCheck := info.InCheck || !movegen.IsPseudoLegalFast(b, m, info)
		var undo position.Undo
		b.Make(m, &undo)
		if needsCheck && b.InCheck(us) {
			b.Unmake(m, &undo)
			continue
		}
		legalMoves++

		score := -c.quiescence(b, -beta, -alpha, ply+1, qsDepth+1)
		b.Unmake(m, &undo)

		if c.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if info.InCheck && legalMoves == 0 {
		return -ValueMate + Value(ply)
	}
	return alpha
}

// orderScore assigns a move-ordering priority for a main-search node.
func (c *Context) orderScore(b *position.Board, m, ttMove Move, ply int) int32 {
	if ttMove.IsValid() && m.Equals(ttMove) {
		return scoreTTMove
	}
	if m.IsCapture() {
		victim := b.PieceAt(captureVictimSquare(b, m)).TypeOf()
		attacker := b.PieceAt(m.From()).TypeOf()
		s := scoreCaptureBase + mvvLva(victim, attacker)
		return s + promotionBonus(m.PromotionType())
	}
	if config.Settings.Search.UseKiller {
		if m.Equals(c.Killers.First(ply)) {
			return scoreKiller1
		}
		if m.Equals(c.Killers.Second(ply)) {
			return scoreKiller2
		}
	}
	s := promotionBonus(m.PromotionType())
	if config.Settings.Search.UseHistory {
		s += c.History.Score(b.Side(), m.To())
	}
	return s
}

// qsOrderScore is the reduced move-ordering used in quiescence: captures
// by MVV-LVA plus promotion bonus, no TT/killer/history terms.
func (c *Context) qsOrderScore(b *position.Board, m Move) int32 {
	if !m.IsCapture() {
		return promotionBonus(m.PromotionType())
	}
	victim := b.PieceAt(captureVictimSquare(b, m)).TypeOf()
	attacker := b.PieceAt(m.From()).TypeOf()
	return scoreCaptureBase + mvvLva(victim, attacker) + promotionBonus(m.PromotionType())
}

func captureVictimSquare(b *position.Board, m Move) Square {
	if m.IsEnPassant() {
		return SquareOf(m.From().RowOf(), m.To().ColOf())
	}
	return m.To()
}

// pickBest selection-sorts the highest-scored move in window to the front,
// the lazy selection sort the spec calls for instead of a full upfront sort.
func pickBest(window []ScoredMove) {
	best := 0
	for i := 1; i < len(window); i++ {
		if window[i].Score > window[best].Score {
			best = i
		}
	}
	window[0], window[best] = window[best], window[0]
}

func hasNonPawnMaterial(b *position.Board, us Color) bool {
	for _, sq := range b.PieceList(us) {
		pt := b.PieceAt(sq).TypeOf()
		if pt != Pawn && pt != King {
			return true
		}
	}
	return false
}
