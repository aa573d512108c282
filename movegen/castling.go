package movegen

import "variantchess/position"

// generateCastlingMoves appends the castling moves available to the side
// to move. Castling is never a capture and never resolves an existing
// check, so callers only reach this from the QUIETS/NON_EVASIONS/
// QUIET_CHECKS paths; CAPTURES and EVASIONS skip it entirely.
func generateCastlingMoves(b *position.Board, t GenType, moves []position.Move) []position.Move {
	if t == Captures || t == Evasions {
		return moves
	}
	us := b.SideToMove()
	if b.Checkers() != 0 {
		return moves
	}

	kingSide, queenSide := position.CastlingRightsFor(us)
	for _, r := range [...]position.CastlingRight{kingSide, queenSide} {
		if !b.CanCastle(r) || b.CastlingImpeded(r) {
			continue
		}
		kfrom := b.CastlingKingSquare(r)
		rfrom := b.CastlingRookSquare(r)
		kto, _ := position.CastlingDestSquares(us, r)

		if !b.IsAnti() && !castlingPathSafe(b, us, kfrom, rfrom, kto) {
			continue
		}

		m := position.NewCastling(kfrom, rfrom)
		if t == QuietChecks && !b.GivesCheck(m) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// castlingPathSafe reports whether every square the king crosses,
// including its destination, is free of attack. The occupancy used for
// the attack probe has both the king and the rook lifted off their
// origin squares: in Chess960 the rook's home square can sit anywhere
// between the board edge and the king, including on a square the king
// must cross, so leaving the rook in place could hide a slider that only
// becomes a check once the rook actually moves.
//
// Atomic relaxes this: an attack on a path square is tolerated when the
// enemy king is itself adjacent to that square, since any piece that
// captured there would detonate the enemy king along with itself.
func castlingPathSafe(b *position.Board, us position.Color, kfrom, rfrom, kto position.Square) bool {
	them := us.Opposite()
	enemy := b.PiecesC(them)
	occ := b.Pieces() &^ position.SquareBB(kfrom) &^ position.SquareBB(rfrom)

	var enemyKingAdjacent position.Bitboard
	if b.IsAtomic() {
		if eksq := b.KingSquare(them); eksq != position.NoSquare {
			enemyKingAdjacent = position.KingAttacks(eksq)
		}
	}

	squares := position.BetweenBB(kfrom, kto) | position.SquareBB(kto)
	for squares != 0 {
		sq := squares.PopLSB()
		if b.AttackersToOcc(sq, occ)&enemy == 0 {
			continue
		}
		if enemyKingAdjacent&position.SquareBB(sq) != 0 {
			continue
		}
		return false
	}
	return true
}
