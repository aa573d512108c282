package position

import "math/bits"

// Precomputed attack tables, built once at process start and never
// mutated afterward.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard

	// rookRays[sq][d]: squares in ray direction d (0=N,1=S,2=E,3=W),
	// excluding sq itself, all the way to the board edge.
	rookRays [64][4]Bitboard
	// bishopRays[sq][d]: 0=NE,1=NW,2=SE,3=SW.
	bishopRays [64][4]Bitboard

	rookMask      [64]Bitboard
	bishopMask    [64]Bitboard
	rookAttTable  [64][]Bitboard
	bishopAttTable [64][]Bitboard

	lineBB    [64][64]Bitboard
	betweenBB [64][64]Bitboard
)

func init() {
	initLeaperAttacks()
	initRays()
	initSliderTables()
	initLineAndBetween()
}

func initLeaperAttacks() {
	knightOffsets := [8][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var km Bitboard
		for _, off := range knightOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				km |= SquareBB(MakeSquare(ff, rf))
			}
		}
		knightAttacks[sq] = km

		var kg Bitboard
		for _, off := range kingOffsets {
			rf, ff := rank+off[0], file+off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				kg |= SquareBB(MakeSquare(ff, rf))
			}
		}
		kingAttacks[sq] = kg

		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= SquareBB(MakeSquare(file-1, rank+1))
			}
			if file < 7 {
				pawnAttacks[White][sq] |= SquareBB(MakeSquare(file+1, rank+1))
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= SquareBB(MakeSquare(file-1, rank-1))
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= SquareBB(MakeSquare(file+1, rank-1))
			}
		}
	}
}

func initRays() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var ray Bitboard
		for r := rank + 1; r < 8; r++ {
			ray |= SquareBB(MakeSquare(file, r))
		}
		rookRays[sq][0] = ray

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= SquareBB(MakeSquare(file, r))
		}
		rookRays[sq][1] = ray

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= SquareBB(MakeSquare(f, rank))
		}
		rookRays[sq][2] = ray

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= SquareBB(MakeSquare(f, rank))
		}
		rookRays[sq][3] = ray

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= SquareBB(MakeSquare(f, r))
		}
		bishopRays[sq][0] = ray

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= SquareBB(MakeSquare(f, r))
		}
		bishopRays[sq][1] = ray

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= SquareBB(MakeSquare(f, r))
		}
		bishopRays[sq][2] = ray

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= SquareBB(MakeSquare(f, r))
		}
		bishopRays[sq][3] = ray
	}
}

func rayAttacks(sq int, occ Bitboard, rays *[64][4]Bitboard, increasing [4]bool) Bitboard {
	var result Bitboard
	for d := 0; d < 4; d++ {
		ray := rays[sq][d]
		result |= ray
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		var first Square
		if increasing[d] {
			first = blockers.LSB()
		} else {
			first = blockers.MSB()
		}
		result &^= rays[first][d]
	}
	return result
}

func rookAttacksSlow(sq int, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, &rookRays, [4]bool{true, false, true, false})
}

func bishopAttacksSlow(sq int, occ Bitboard) Bitboard {
	return rayAttacks(sq, occ, &bishopRays, [4]bool{true, true, false, false})
}

func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8

		var rm Bitboard
		for r := rank + 1; r < 7; r++ {
			rm |= SquareBB(MakeSquare(file, r))
		}
		for r := rank - 1; r > 0; r-- {
			rm |= SquareBB(MakeSquare(file, r))
		}
		for f := file + 1; f < 7; f++ {
			rm |= SquareBB(MakeSquare(f, rank))
		}
		for f := file - 1; f > 0; f-- {
			rm |= SquareBB(MakeSquare(f, rank))
		}
		rookMask[sq] = rm

		var bm Bitboard
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm |= SquareBB(MakeSquare(f, r))
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm |= SquareBB(MakeSquare(f, r))
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm |= SquareBB(MakeSquare(f, r))
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm |= SquareBB(MakeSquare(f, r))
		}
		bishopMask[sq] = bm

		rBits := bits.OnesCount64(uint64(rm))
		bBits := bits.OnesCount64(uint64(bm))
		rookAttTable[sq] = make([]Bitboard, 1<<rBits)
		bishopAttTable[sq] = make([]Bitboard, 1<<bBits)

		for idx := 0; idx < (1 << rBits); idx++ {
			occ := Bitboard(pdep(uint64(idx), uint64(rm)))
			rookAttTable[sq][idx] = rookAttacksSlow(sq, occ)
		}
		for idx := 0; idx < (1 << bBits); idx++ {
			occ := Bitboard(pdep(uint64(idx), uint64(bm)))
			bishopAttTable[sq][idx] = bishopAttacksSlow(sq, occ)
		}
	}
}

func initLineAndBetween() {
	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			if a == b {
				continue
			}
			sa, sb := Square(a), Square(b)
			ra := rookAttacksSlow(a, 0)
			if ra&SquareBB(sb) != 0 {
				full := (ra & rookAttacksSlow(b, 0)) | SquareBB(sa) | SquareBB(sb)
				lineBB[a][b] = full
				betweenBB[a][b] = rookAttacksSlow(a, SquareBB(sb)) & rookAttacksSlow(b, SquareBB(sa))
				continue
			}
			ba := bishopAttacksSlow(a, 0)
			if ba&SquareBB(sb) != 0 {
				full := (ba & bishopAttacksSlow(b, 0)) | SquareBB(sa) | SquareBB(sb)
				lineBB[a][b] = full
				betweenBB[a][b] = bishopAttacksSlow(a, SquareBB(sb)) & bishopAttacksSlow(b, SquareBB(sa))
			}
		}
	}
}

// RookAttacks returns rook attacks from sq given the board occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(rookMask[sq]))
	return rookAttTable[sq][idx]
}

// BishopAttacks returns bishop attacks from sq given the board occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	idx := pext(uint64(occ), uint64(bishopMask[sq]))
	return bishopAttTable[sq][idx]
}

// QueenAttacks returns queen attacks from sq given the board occupancy.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// KnightAttacks returns the fixed knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the fixed king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// AttacksFrom returns the attack set of a piece type from sq given
// occupancy. Pawns are color-dependent; use PawnAttacks directly for those.
func AttacksFrom(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return kingAttacks[sq]
	}
	return 0
}

// LineBB returns the full line (rank, file or diagonal) through a and b,
// or the empty bitboard if they are not aligned.
func LineBB(a, b Square) Bitboard { return lineBB[a][b] }

// BetweenBB returns the squares strictly between a and b (exclusive of
// both endpoints) if they are aligned, or the empty bitboard otherwise.
func BetweenBB(a, b Square) Bitboard { return betweenBB[a][b] }

// Aligned reports whether a, b and c lie on a common line.
func Aligned(a, b, c Square) bool { return lineBB[a][b]&SquareBB(c) != 0 }
