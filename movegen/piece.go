package movegen

import "variantchess/position"

// generatePieceMoves appends pseudo-legal knight/bishop/rook/queen moves
// for the side to move. target has the usual meaning: the set of squares
// a move is allowed to land on for this generation kind.
func generatePieceMoves(b *position.Board, pt position.PieceType, t GenType, target position.Bitboard, moves []position.Move) []position.Move {
	us := b.SideToMove()
	occ := b.Pieces()

	checkSq := position.Bitboard(0)
	if t == QuietChecks {
		checkSq = b.CheckSquares(pt)
	}

	bb := b.PiecesCT(us, pt)
	for bb != 0 {
		from := bb.PopLSB()
		attacks := position.AttacksFrom(pt, from, occ)
		if b.IsRelay() {
			attacks |= relayedAttacks(b, us, from, occ)
		}
		dsts := attacks & target
		if t == QuietChecks {
			dsts &= checkSq
		}
		for dsts != 0 {
			to := dsts.PopLSB()
			moves = append(moves, position.NewMove(from, to))
		}
	}
	return moves
}

// relayedAttacks returns the attack set a piece on from gains because a
// friendly piece occupies an adjacent square: in Relay, a piece adjacent to
// a friendly piece additionally moves as that piece does, so the ray/leap
// pattern of every neighbor is unioned in.
func relayedAttacks(b *position.Board, us position.Color, from position.Square, occ position.Bitboard) position.Bitboard {
	var extra position.Bitboard
	neighbors := position.KingAttacks(from) & b.PiecesC(us)
	for neighbors != 0 {
		nsq := neighbors.PopLSB()
		neighborType := b.PieceOn(nsq).Type()
		if neighborType == position.NoPieceType || neighborType == position.Pawn {
			continue
		}
		extra |= position.AttacksFrom(neighborType, from, occ)
	}
	return extra
}
