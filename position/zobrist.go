package position

import "math/rand"

// Zobrist hashing tables, seeded deterministically so repeated runs
// hash identically, with an added axis for Crazyhouse hand contents.
var (
	zobristPiece      [15][64]uint64
	zobristCastle     [16]uint64
	zobristEnPassant  [8]uint64
	zobristSide       uint64
	zobristHand       [2][7][32]uint64
)

func init() { initZobrist() }

func initZobrist() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			for n := 0; n < 32; n++ {
				zobristHand[c][pt][n] = rnd.Uint64()
			}
		}
	}
}

// ComputeZobrist recomputes the Zobrist key from scratch, for
// cross-checking the incrementally maintained key. A hand holding n pieces
// of one type contributes the entries for counts 1..n, the same terms
// addToHand/removeFromHand toggle one at a time.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := 0; sq < 64; sq++ {
		if p := b.pieces[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			for n := 1; n <= b.hand[c][pt]; n++ {
				key ^= zobristHand[c][pt][n]
			}
		}
	}
	return key
}
