package movegen

import "variantchess/position"

// Generate appends every move of kind t available to b's side to move
// onto moves and returns the extended slice — the caller owns the backing
// buffer, mirroring the single generate<T>(pos, out) entry point described
// for the underlying engine: which variant's rules apply is read off b
// itself, never passed by the caller.
func Generate(b *position.Board, t GenType, moves []position.Move) []position.Move {
	switch t {
	case Legal:
		return generateLegal(b, moves)
	case Evasions:
		return generateEvasions(b, moves)
	case QuietChecks:
		return generateQuietChecks(b, moves)
	default:
		return generatePseudoLegal(b, t, moves)
	}
}

// generatePseudoLegal handles CAPTURES, QUIETS and NON_EVASIONS: the three
// kinds whose target mask is a fixed function of board state rather than
// of which squares resolve a check.
func generatePseudoLegal(b *position.Board, t GenType, moves []position.Move) []position.Move {
	us := b.SideToMove()
	them := us.Opposite()
	own := b.PiecesC(us)
	enemy := b.PiecesC(them)
	empty := ^b.Pieces()

	var target position.Bitboard
	switch t {
	case Captures:
		target = enemy
	case Quiets:
		target = empty
	case NonEvasions:
		target = ^own
	}

	// Antichess and Losers both force a capture whenever one is available:
	// once that's true, every generation kind collapses onto the same
	// enemy-only target, so QUIETS legitimately yields nothing.
	forced := (b.IsAnti() && b.CanCapture()) || (b.IsLosers() && b.CanCaptureLosers())
	if forced {
		target &= enemy
	}

	// Atomic: capturing a piece next to your own king would blow your own
	// king up along with it, so those capture destinations are never
	// pseudo-legal in the first place.
	if b.IsAtomic() && t != Quiets {
		if ksq := b.KingSquare(us); ksq != position.NoSquare {
			target &^= position.KingAttacks(ksq) & enemy
		}
	}

	moves = generatePawnMoves(b, t, target, moves)
	for _, pt := range [...]position.PieceType{position.Knight, position.Bishop, position.Rook, position.Queen} {
		moves = generatePieceMoves(b, pt, t, target, moves)
	}
	moves = generateKingMoves(b, t, target, moves)
	if forced {
		return moves
	}
	moves = generateCastlingMoves(b, t, moves)
	moves = generateDropMoves(b, t, target, moves)
	return moves
}

// generateLegal produces only fully legal moves. It generates the
// appropriate pseudo-legal superset into a scratch buffer, then keeps a
// move only if it cannot possibly be illegal without a direct check: drops
// never expose the king, and everything else that isn't a king move, an
// en-passant capture, or made while pinned pieces (or Racing Kings' goal
// rule, or a pending en-passant) are in play is accepted as-is. Atomic
// captures are always re-verified, since even a capture far from the king
// can blow it up via collateral blast. Survivors are filtered into moves
// with a plain stable append rather than an in-place swap-and-shrink
// compaction, which only pays for itself when shifting a C-style array
// and has no equivalent benefit for a Go slice.
func generateLegal(b *position.Board, moves []position.Move) []position.Move {
	if b.IsVariantEnd() {
		return moves
	}

	us := b.SideToMove()
	ksq := b.KingSquare(us)
	// Antichess and Racing Kings have no generation-time concept of check:
	// Antichess kings carry no royal status, and Racing Kings' only
	// check-like rule ("giving check without reaching the goal rank is
	// illegal") is enforced entirely by the per-move Legal() filter below,
	// not by routing through the evasions generator.
	inCheck := !b.IsAnti() && !b.IsRace() && b.Checkers() != 0

	var pseudo []position.Move
	if inCheck {
		pseudo = generateEvasions(b, nil)
	} else {
		pseudo = generatePseudoLegal(b, NonEvasions, nil)
	}

	if b.IsAnti() {
		return append(moves, pseudo...)
	}

	validate := b.PinnedPieces(us) != 0 || b.IsRace() || b.EPSquare() != position.NoSquare

	for _, m := range pseudo {
		var keep bool
		switch {
		case m.Kind() == position.Drop:
			keep = true
		case b.IsAtomic() && b.Capture(m):
			keep = b.Legal(m)
		case validate || m.From() == ksq || m.Kind() == position.EnPassant:
			keep = b.Legal(m)
		default:
			keep = true
		}
		if keep {
			moves = append(moves, m)
		}
	}
	return moves
}
