package movegen

import "variantchess/position"

// generateKingMoves appends pseudo-legal king moves for the side to move.
//
// Unlike the sliders, attacks_from<KING> needs no occupancy lookup, so
// outside Racing Kings the king fits the same per-square loop as
// knights/bishops/rooks/queens with no extra code: generatePieceMoves
// already applies Relay's adjacent-piece attack union and the QUIET_CHECKS
// check-square filter generically. The other variant-specific exceptions
// that apply to the king are handled elsewhere by design, not here:
//   - Atomic's rule that capturing next to your own king is illegal is
//     enforced once, for every piece type, in the CAPTURES target mask
//     built by generate.go.
//   - Antichess gives the king no royal status at all: it is "any other
//     piece" as far as this function is concerned, which is exactly what
//     calling the shared per-piece enumerator achieves.
//
// Callers never route EVASIONS or QUIET_CHECKS through this function for
// Race (both are no-ops for that variant): a king escaping check needs
// the escape-square computation in evasions.go, and a king uncovering a
// discovered check is handled by the candidate walk in quietchecks.go.
func generateKingMoves(b *position.Board, t GenType, target position.Bitboard, moves []position.Move) []position.Move {
	if !b.IsRace() {
		return generatePieceMoves(b, position.King, t, target, moves)
	}
	return generateRaceKingMoves(b, t, target, moves)
}

// generateRaceKingMoves reproduces Racing Kings' forward-cone king rule:
// the cone is always measured as White's passed-pawn span from the king's
// square regardless of which side is actually moving, added onto CAPTURES
// and subtracted from QUIETS. Both sides racing toward rank 8 explains the
// "forward" framing; which side currently owns the square does not change
// the cone's shape.
func generateRaceKingMoves(b *position.Board, t GenType, target position.Bitboard, moves []position.Move) []position.Move {
	us := b.SideToMove()
	occ := b.Pieces()
	bb := b.PiecesCT(us, position.King)
	for bb != 0 {
		from := bb.PopLSB()
		attacks := position.AttacksFrom(position.King, from, occ)
		cone := position.PassedPawnSpan(position.White, from) &^ occ

		var dsts position.Bitboard
		switch t {
		case Captures:
			dsts = (attacks & target) | (attacks & cone)
		case Quiets:
			dsts = attacks &^ cone & target
		default:
			dsts = attacks & target
		}
		for dsts != 0 {
			to := dsts.PopLSB()
			moves = append(moves, position.NewMove(from, to))
		}
	}
	return moves
}
