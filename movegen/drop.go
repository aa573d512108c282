package movegen

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"variantchess/position"
)

// dropOrder lists the piece types eligible for a Crazyhouse drop, keyed by
// the same set CountInHand tracks a pocket for.
var dropOrder = map[position.PieceType]struct{}{
	position.Pawn:   {},
	position.Knight: {},
	position.Bishop: {},
	position.Rook:   {},
	position.Queen:  {},
}

// generateDropMoves appends Crazyhouse piece drops for the side to move.
// A drop is never a capture, so it never takes part in CAPTURES; pawns may
// not drop on the first or last rank under any color.
func generateDropMoves(b *position.Board, t GenType, target position.Bitboard, moves []position.Move) []position.Move {
	if !b.IsHouse() || t == Captures {
		return moves
	}
	us := b.SideToMove()
	empty := ^b.Pieces()
	dropTargets := empty & target

	pieceTypes := maps.Keys(dropOrder)
	slices.Sort(pieceTypes)

	for _, pt := range pieceTypes {
		n := b.CountInHand(us, pt)
		if n == 0 {
			continue
		}
		squares := dropTargets
		if pt == position.Pawn {
			squares &^= position.RankBB(0) | position.RankBB(7)
		}
		if t == QuietChecks {
			squares &= b.CheckSquares(pt)
		}
		for squares != 0 {
			to := squares.PopLSB()
			moves = append(moves, position.NewDrop(to, pt))
		}
	}
	return moves
}
