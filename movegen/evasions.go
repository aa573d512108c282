package movegen

import "variantchess/position"

// generateEvasions appends every pseudo-legal move available to a side to
// move whose king is in check.
func generateEvasions(b *position.Board, moves []position.Move) []position.Move {
	if b.IsAnti() || b.IsRace() {
		return moves
	}
	us := b.SideToMove()
	them := us.Opposite()
	ksq := b.KingSquare(us)
	if ksq == position.NoSquare {
		return moves
	}

	checkers := b.Checkers()
	if checkers == 0 {
		return moves
	}

	occ := b.Pieces()
	sliders := checkers &^ (b.PiecesT(position.Pawn) | b.PiecesT(position.Knight))
	var sliderRay position.Bitboard
	for sliders != 0 {
		checksq := sliders.PopLSB()
		sliderRay |= position.LineBB(checksq, ksq) &^ position.SquareBB(checksq)
	}

	escapes := position.KingAttacks(ksq)
	if b.IsRelay() {
		escapes |= relayedAttacks(b, us, ksq, occ)
	}
	escapes &^= b.PiecesC(us)
	if b.IsAtomic() {
		// The king can never capture in Atomic (doing so always blows itself
		// up along with the target), so an escape square must be empty. A
		// slider's king-ray is also relaxed on squares adjacent to the enemy
		// king: stepping there would detonate that king too, which resolves
		// the check by removing the checker's target rather than by hiding
		// from its ray.
		escapes &^= b.PiecesC(them)
		if eksq := b.KingSquare(them); eksq != position.NoSquare {
			sliderRay &^= position.KingAttacks(eksq)
		}
	}
	// Atomic: a check can also be evaded by detonating an explosion that
	// vaporizes every checker (or the enemy king) as collateral, even from
	// a square with no relation to the block/capture-the-checker squares
	// generated below. Computed against every checker (not just one, since
	// this pass alone can resolve a double check by exploding both
	// checkers at once) before the double-check early return, matching
	// where the source computes and emits it. A capture's destination must
	// land adjacent to each checker (or on the checker square itself) or
	// adjacent to the enemy king, and must not be adjacent to the mover's
	// own king.
	if b.IsAtomic() {
		subTarget := b.PiecesC(them)
		remaining := checkers
		for remaining != 0 {
			s := remaining.PopLSB()
			subTarget &= position.KingAttacks(s) | position.SquareBB(s)
		}
		if eksq := b.KingSquare(them); eksq != position.NoSquare {
			subTarget |= position.KingAttacks(eksq)
		}
		subTarget &= b.PiecesC(them) &^ position.KingAttacks(ksq)
		moves = generatePawnMoves(b, Captures, subTarget, moves)
		for _, pt := range [...]position.PieceType{position.Knight, position.Bishop, position.Rook, position.Queen} {
			moves = generatePieceMoves(b, pt, Captures, subTarget, moves)
		}
	}

	escapes &^= sliderRay
	for escapes != 0 {
		to := escapes.PopLSB()
		moves = append(moves, position.NewMove(ksq, to))
	}

	if checkers.MoreThanOne() {
		return moves // double check: only a king move (or the atomic blast above) can help
	}

	checksq := checkers.LSB()
	target := position.BetweenBB(checksq, ksq)
	if !b.IsAtomic() {
		target |= position.SquareBB(checksq)
	}

	if b.IsLosers() && b.CanCaptureLosers() {
		target &= b.PiecesC(them)
	}

	moves = generatePawnMoves(b, Evasions, target, moves)
	for _, pt := range [...]position.PieceType{position.Knight, position.Bishop, position.Rook, position.Queen} {
		moves = generatePieceMoves(b, pt, Evasions, target, moves)
	}
	moves = generateDropMoves(b, Evasions, target, moves)

	return moves
}
