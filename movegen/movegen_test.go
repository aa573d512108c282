package movegen

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"variantchess/position"
)

func mustParse(t *testing.T, v position.Variant, chess960 bool, fen string) *position.Board {
	t.Helper()
	b, err := position.ParseFEN(v, chess960, fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func legalMoves(b *position.Board) []position.Move {
	return Generate(b, Legal, make([]position.Move, 0, MaxMoves))
}

func moveStrings(moves []position.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func containsMove(moves []position.Move, uci string) bool {
	for _, m := range moves {
		if m.String() == uci {
			return true
		}
	}
	return false
}

func TestLegalMoveCounts(t *testing.T) {
	cases := []struct {
		name  string
		v     position.Variant
		fen   string
		count int
	}{
		{"standard start", position.Chess, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 20},
		{"kiwipete", position.Chess, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"rook endgame", position.Chess, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
		{"atomic no adjacent king capture", position.Atomic, "8/8/8/8/8/4k3/4p3/4K3 w - - 0 1", 2},
		{"phantom en passant", position.Chess, "rnbqkbnr/p1pppppp/8/1p6/8/8/PPPPPPPP/RNBQKBNR w KQkq b6 0 2", 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := mustParse(t, c.v, false, c.fen)
			moves := legalMoves(b)
			if len(moves) != c.count {
				t.Errorf("got %d legal moves, want %d: %v", len(moves), c.count, moveStrings(moves))
			}
		})
	}
}

func TestAtomicKingCannotApproachOrCapture(t *testing.T) {
	b := mustParse(t, position.Atomic, false, "8/8/8/8/8/4k3/4p3/4K3 w - - 0 1")
	moves := legalMoves(b)
	want := []string{"e1d1", "e1f1"}
	got := moveStrings(moves)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("legal moves mismatch (-want +got):\n%s", diff)
	}
	if containsMove(moves, "e1e2") {
		t.Errorf("king capture onto e2 should self-explode and must be illegal")
	}
}

func TestAtomicDirectCheckerCapture(t *testing.T) {
	// The e5 rook checks along the e-file from a square that is not
	// adjacent to either king, so capturing it outright (rather than
	// blocking) must still be offered as an evasion.
	b := mustParse(t, position.Atomic, false, "7k/8/6N1/4r3/8/8/8/4K3 w - - 0 1")
	moves := legalMoves(b)
	if !containsMove(moves, "g6e5") {
		t.Errorf("expected the knight to be able to capture the checking rook directly, got %v", moveStrings(moves))
	}
}

func TestCapturesOnlyIncludesCaptures(t *testing.T) {
	b := mustParse(t, position.Chess, false, "r1bqkb1r/ppp2ppp/2n5/3np3/2B5/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4")
	moves := Generate(b, Captures, make([]position.Move, 0, MaxMoves))
	if !containsMove(moves, "c4f7") {
		t.Errorf("expected c4f7 among captures, got %v", moveStrings(moves))
	}
	for _, m := range moves {
		if !b.Capture(m) {
			t.Errorf("CAPTURES returned a non-capture move %s", m.String())
		}
	}
}

func TestPhantomEnPassantRejected(t *testing.T) {
	b := mustParse(t, position.Chess, false, "rnbqkbnr/p1pppppp/8/1p6/8/8/PPPPPPPP/RNBQKBNR w KQkq b6 0 2")
	moves := legalMoves(b)
	for _, m := range moves {
		if m.Kind() == position.EnPassant {
			t.Errorf("no en-passant capture should be legal here, got %s", m.String())
		}
	}
}

func TestChess960CastlingThroughAttackedOffPathSquare(t *testing.T) {
	// White king on e1, rook on h1; b8 rook attacks b1, which is not on the
	// king's e1-g1-h1 castling path, so kingside castling should still be
	// legal despite that square being attacked.
	b := mustParse(t, position.Chess, true, "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	moves := legalMoves(b)
	if !containsMove(moves, "e1h1") {
		t.Errorf("kingside castling should remain legal when only an off-path square is attacked, got %v", moveStrings(moves))
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// White king e1 attacked simultaneously by a rook on e8 (along the
	// file) and a bishop on a5 (along the diagonal) - only king moves can
	// answer a double check.
	b := mustParse(t, position.Chess, false, "4r3/8/8/b7/8/8/8/4K3 w - - 0 1")
	moves := legalMoves(b)
	for _, m := range moves {
		if m.From() != b.KingSquare(position.White) {
			t.Errorf("double check: only king moves should be legal, got %s", m.String())
		}
	}
	if len(moves) == 0 {
		t.Errorf("expected at least one legal king move")
	}
}

func TestPromotionWithDiscoveredCheck(t *testing.T) {
	// Rook a7 is masked from the black king on h7 by the white pawn on e7.
	// Pushing that pawn to e8 promotes and simultaneously uncovers the
	// rook's attack along the 7th rank.
	b := mustParse(t, position.Chess, false, "8/R3P2k/8/8/8/8/8/7K w - - 0 1")
	moves := legalMoves(b)

	var promo position.Move
	found := false
	for _, m := range moves {
		if m.Kind() == position.Promotion && m.From().File() == 4 && m.From().Rank() == 6 {
			promo = m
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected an e7-pawn promotion among legal moves, got %v", moveStrings(moves))
	}
	if !b.GivesCheck(promo) {
		t.Errorf("promotion %s should uncover the a7 rook's check on h7, but GivesCheck is false", promo.String())
	}
}

func TestCrazyhousePawnDropGivesCheck(t *testing.T) {
	b := mustParse(t, position.Crazyhouse, false, "7k/8/8/8/8/8/8/7K[Pp] w - - 0 1")
	qc := Generate(b, QuietChecks, make([]position.Move, 0, MaxMoves))
	found := false
	for _, m := range qc {
		if m.Kind() == position.Drop && m.DropPieceType() == position.Pawn {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a pawn drop giving check among quiet checks, got %v", moveStrings(qc))
	}
}

func TestAntichessForcedCapture(t *testing.T) {
	b := mustParse(t, position.Antichess, false, "8/8/8/3p4/4P3/8/8/8 w - - 0 1")
	moves := legalMoves(b)
	if len(moves) != 1 {
		t.Fatalf("forced capture should leave exactly one legal move, got %v", moveStrings(moves))
	}
	if !containsMove(moves, "e4d5") {
		t.Errorf("expected the only legal move to be the capture e4d5, got %v", moveStrings(moves))
	}
}

func TestHordeExtendedDoublePush(t *testing.T) {
	// A pawn sitting on horde's own back wall (b1) may push two squares to
	// b3, matching a normal pawn's double push from its own second rank.
	b := mustParse(t, position.Horde, false, "k7/8/8/8/8/8/8/1P6 w - - 0 1")
	moves := Generate(b, Quiets, make([]position.Move, 0, MaxMoves))
	if !containsMove(moves, "b1b3") {
		t.Errorf("expected b1-pawn double push to b3 under horde's extended rule, got %v", moveStrings(moves))
	}
}

func TestRacingKingsNoBackwardGoalCheck(t *testing.T) {
	b := mustParse(t, position.RacingKings, false, "8/8/8/8/8/2k5/8/K7 w - - 0 1")
	moves := legalMoves(b)
	if len(moves) == 0 {
		t.Fatalf("expected the lone king to have legal moves")
	}
}

func TestRelayAdjacentPieceInheritsAttack(t *testing.T) {
	// A white knight adjacent to a white rook should additionally be able
	// to slide like the rook.
	b := mustParse(t, position.Relay, false, "7k/8/8/8/8/8/NR6/7K w - - 0 1")
	moves := Generate(b, Quiets, make([]position.Move, 0, MaxMoves))
	if !containsMove(moves, "a2a3") {
		t.Errorf("expected relayed rook-like slide a2a3 from the knight, got %v", moveStrings(moves))
	}
}
