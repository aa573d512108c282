package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	cases := []struct {
		v   Variant
		fen string
	}{
		{Chess, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{Chess, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{Antichess, "8/8/8/3p4/4P3/8/8/8 w - - 0 1"},
		{Atomic, "8/8/8/8/8/4k3/4p3/4K3 w - - 0 1"},
		{Horde, "k7/8/8/8/8/1P6/8/8 w - - 0 1"},
		{RacingKings, "8/8/8/8/8/2k5/8/K7 w - - 0 1"},
	}
	for _, c := range cases {
		b, err := ParseFEN(c.v, false, c.fen)
		require.NoErrorf(t, err, "ParseFEN(%q)", c.fen)
		require.Equal(t, c.fen, b.ToFEN(), "round trip mismatch")
	}
}

func TestNewGamePerVariant(t *testing.T) {
	for _, v := range []Variant{Chess, Antichess, Atomic, Crazyhouse, Horde, Losers, RacingKings, Relay} {
		b, err := NewGame(v)
		require.NoErrorf(t, err, "NewGame(%v)", v)
		require.Equalf(t, v, b.Variant(), "NewGame(%v): board reports a different variant", v)
		require.Equalf(t, White, b.SideToMove(), "NewGame(%v): expected White to move", v)
	}
}

func TestZobristStableAcrossCopy(t *testing.T) {
	b, err := NewGame(Chess)
	if err != nil {
		t.Fatal(err)
	}
	clone := b.Copy()
	if clone.Hash() != b.Hash() {
		t.Errorf("copy changed the hash: %d vs %d", clone.Hash(), b.Hash())
	}

	m := NewMove(MakeSquare(4, 1), MakeSquare(4, 3)) // e2e4
	clone.MakeMove(m)
	if clone.Hash() == b.Hash() {
		t.Errorf("hash did not change after a move")
	}
	if b.PieceOn(MakeSquare(4, 1)) != MakePiece(White, Pawn) {
		t.Errorf("original board mutated by a move made on its copy")
	}
}

func TestCastlingRightsClearedOnRookCapture(t *testing.T) {
	b, err := ParseFEN(Chess, false, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// Simulate the a8 rook being captured by making a rook-takes-rook move
	// directly reachable via a slid rook on a1 (not legal chess, but
	// exercises the castling-rights-after-capture bookkeeping in isolation).
	m := NewMove(MakeSquare(0, 0), MakeSquare(0, 7))
	b.MakeMove(m)
	kingSide, queenSide := CastlingRightsFor(Black)
	if b.CanCastle(queenSide) {
		t.Errorf("queenside castling right should be cleared once the a8 rook is captured")
	}
	if !b.CanCastle(kingSide) {
		t.Errorf("kingside castling right should survive an a8 rook capture")
	}
}

func TestCheckersEmptyWhenNotInCheck(t *testing.T) {
	b, err := NewGame(Chess)
	if err != nil {
		t.Fatal(err)
	}
	if b.Checkers() != 0 {
		t.Errorf("starting position should not be in check")
	}
}

func TestPinnedPieceDetection(t *testing.T) {
	b, err := ParseFEN(Chess, false, "4k3/8/8/8/4q3/8/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pinned := b.PinnedPieces(White)
	if pinned&SquareBB(MakeSquare(4, 1)) == 0 {
		t.Errorf("e2 pawn pinned by the e4 queen against the e1 king should be reported pinned")
	}
}
