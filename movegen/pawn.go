package movegen

import "variantchess/position"

// generatePawnMoves appends every pseudo-legal pawn move of the side to
// move for generation kind t with the given target mask. target carries
// the same meaning as elsewhere in this package: CAPTURES restricts it to
// enemy squares, QUIETS/QUIET_CHECKS to empty squares, EVASIONS to the
// block/capture squares that resolve the current check, NON_EVASIONS to
// every square not occupied by the mover's own side.
func generatePawnMoves(b *position.Board, t GenType, target position.Bitboard, moves []position.Move) []position.Move {
	us := b.SideToMove()
	them := us.Opposite()
	up := position.Up(us)
	upEast := position.Direction(int(up) + int(position.East))
	upWest := position.Direction(int(up) + int(position.West))

	pawns := b.PiecesCT(us, position.Pawn)
	rank7 := position.RelativeRankBB(us, 6)
	pawnsOn7 := pawns & rank7
	pawnsNotOn7 := pawns &^ rank7

	empties := ^b.Pieces()
	enemies := b.PiecesC(them)
	if t == Captures || t == NonEvasions {
		enemies &= target
	}

	var pushEmpty position.Bitboard
	if t == Quiets || t == QuietChecks {
		pushEmpty = target
	} else {
		pushEmpty = empties
	}
	if b.IsAnti() || b.IsLosers() {
		pushEmpty &= target
	}

	rank3 := position.RelativeRankBB(us, 2)
	b1 := pawnsNotOn7.Shift(up) & pushEmpty
	b2 := (b1 & rank3).Shift(up) & pushEmpty

	if b.IsHorde() {
		homeLike := position.RelativeRankBB(us, 1) | position.RelativeRankBB(us, 2)
		extra := (b1 & homeLike).Shift(up) & pushEmpty
		b2 |= extra
	}

	if t == Captures {
		b1, b2 = 0, 0
	}

	if t == Evasions {
		b1 &= target
		b2 &= target
	}

	if t == QuietChecks {
		ksq := b.KingSquare(them)
		if ksq != position.NoSquare {
			checkSq := b.CheckSquares(position.Pawn)
			dc := b.DiscoveredCheckCandidates() & pawnsNotOn7 &^ position.FileBB(ksq.File())
			dc1 := dc.Shift(up) & pushEmpty
			dc2 := (dc1 & rank3).Shift(up) & pushEmpty
			b1 = (b1 & checkSq) | dc1
			b2 = (b2 & checkSq) | dc2
		} else {
			b1, b2 = 0, 0
		}
	}

	for b1 != 0 {
		to := b1.PopLSB()
		from := position.Square(int(to) - int(up))
		moves = append(moves, position.NewMove(from, to))
	}
	for b2 != 0 {
		to := b2.PopLSB()
		from := position.Square(int(to) - 2*int(up))
		moves = append(moves, position.NewMove(from, to))
	}

	if pawnsOn7 != 0 {
		var pushTarget position.Bitboard
		if t == Quiets || t == QuietChecks {
			pushTarget = target
		} else {
			pushTarget = empties
		}
		if b.IsAnti() || b.IsLosers() {
			pushTarget &= target
		}

		b3 := pawnsOn7.Shift(up) & pushTarget
		if t == Evasions {
			b3 &= target
		}
		if t == Captures && b.IsAtomic() && b.Checkers() != 0 {
			b3 &= target
		}
		if t == QuietChecks {
			b3 &= b.CheckSquares(position.Knight)
		}
		moves = emitPromotions(moves, b3, up, t, b.IsAnti())

		if t != QuietChecks {
			capLeft := pawnsOn7.Shift(upWest) & enemies
			capRight := pawnsOn7.Shift(upEast) & enemies
			if t == Evasions {
				capLeft &= target
				capRight &= target
			}
			moves = emitPromotions(moves, capLeft, upWest, t, b.IsAnti())
			moves = emitPromotions(moves, capRight, upEast, t, b.IsAnti())
		}
	}

	if t == Captures || t == Evasions || t == NonEvasions {
		capLeft := pawnsNotOn7.Shift(upWest) & enemies
		capRight := pawnsNotOn7.Shift(upEast) & enemies
		if t == Evasions {
			capLeft &= target
			capRight &= target
		}
		for capLeft != 0 {
			to := capLeft.PopLSB()
			from := position.Square(int(to) - int(upWest))
			moves = append(moves, position.NewMove(from, to))
		}
		for capRight != 0 {
			to := capRight.PopLSB()
			from := position.Square(int(to) - int(upEast))
			moves = append(moves, position.NewMove(from, to))
		}

		if ep := b.EPSquare(); ep != position.NoSquare {
			if t != Evasions || target&position.SquareBB(position.Square(int(ep)-int(up))) != 0 {
				attackers := position.PawnAttacks(them, ep) & pawnsNotOn7
				for attackers != 0 {
					from := attackers.PopLSB()
					moves = append(moves, position.NewEnPassant(from, ep))
				}
			}
		}
	}

	return moves
}

func emitPromotions(moves []position.Move, targets position.Bitboard, delta position.Direction, t GenType, anti bool) []position.Move {
	for targets != 0 {
		to := targets.PopLSB()
		from := position.Square(int(to) - int(delta))
		if anti {
			moves = append(moves,
				position.NewPromotion(from, to, position.Queen),
				position.NewPromotion(from, to, position.Rook),
				position.NewPromotion(from, to, position.Bishop),
				position.NewPromotion(from, to, position.Knight),
				position.NewPromotion(from, to, position.King))
			continue
		}
		switch t {
		case Captures:
			moves = append(moves, position.NewPromotion(from, to, position.Queen))
		case Quiets:
			moves = append(moves,
				position.NewPromotion(from, to, position.Rook),
				position.NewPromotion(from, to, position.Bishop),
				position.NewPromotion(from, to, position.Knight))
		case Evasions, NonEvasions:
			moves = append(moves,
				position.NewPromotion(from, to, position.Queen),
				position.NewPromotion(from, to, position.Rook),
				position.NewPromotion(from, to, position.Bishop),
				position.NewPromotion(from, to, position.Knight))
		case QuietChecks:
			moves = append(moves, position.NewPromotion(from, to, position.Knight))
		}
	}
	return moves
}
