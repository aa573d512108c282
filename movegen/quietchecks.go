package movegen

import "variantchess/position"

// generateQuietChecks appends every pseudo-legal non-capturing move that
// gives check. It combines two families: direct checks, where the moving
// piece itself attacks the enemy king from its destination (handled by the
// per-piece generators below via their own QUIET_CHECKS check-square
// filter), and discovered checks, where moving a piece uncovers an attack
// from a friendly slider that was blocked by it.
func generateQuietChecks(b *position.Board, moves []position.Move) []position.Move {
	if b.IsAnti() || b.IsRace() {
		return moves
	}
	empty := ^b.Pieces()

	moves = generateDiscoveredCheckMoves(b, moves)
	moves = generatePawnMoves(b, QuietChecks, empty, moves)
	for _, pt := range [...]position.PieceType{position.Knight, position.Bishop, position.Rook, position.Queen, position.King} {
		moves = generatePieceMoves(b, pt, QuietChecks, empty, moves)
	}
	moves = generateCastlingMoves(b, QuietChecks, moves)
	moves = generateDropMoves(b, QuietChecks, empty, moves)

	return moves
}

// generateDiscoveredCheckMoves appends the full move set of every
// non-pawn piece whose movement would uncover a check on the enemy king
// (pawn discovered checks are handled inside generatePawnMoves, since a
// pawn's discovered-check pushes share bookkeeping with its direct-check
// pushes). A discovered-check candidate king is further restricted: a
// destination still within the enemy king's queen-attack pattern would
// often still be blocking rather than uncovering the check, so those
// squares are excluded the same way the upstream generator does.
func generateDiscoveredCheckMoves(b *position.Board, moves []position.Move) []position.Move {
	us := b.SideToMove()
	them := us.Opposite()
	ksq := b.KingSquare(them)
	if ksq == position.NoSquare {
		return moves
	}

	occ := b.Pieces()
	empty := ^occ
	dc := b.DiscoveredCheckCandidates()
	for dc != 0 {
		from := dc.PopLSB()
		pt := b.PieceOn(from).Type()
		if pt == position.Pawn || pt == position.NoPieceType {
			continue
		}
		dsts := position.AttacksFrom(pt, from, occ) & empty
		if b.IsRelay() {
			dsts |= relayedAttacks(b, us, from, occ) & empty
		}
		if pt == position.King {
			dsts &^= position.QueenAttacks(ksq, occ)
		}
		for dsts != 0 {
			to := dsts.PopLSB()
			moves = append(moves, position.NewMove(from, to))
		}
	}
	return moves
}
