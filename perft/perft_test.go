package perft

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"variantchess/position"
)

func mustParse(t *testing.T, v position.Variant, fen string) *position.Board {
	t.Helper()
	b, err := position.ParseFEN(v, false, fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestPerftStandardStart(t *testing.T) {
	b := mustParse(t, position.Chess, position.StartFEN(position.Chess))
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.nodes {
			t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := mustParse(t, position.Chess, fen)
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.nodes {
			t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	b := mustParse(t, position.Chess, fen)
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
	}
	for _, c := range cases {
		if got := Perft(b, c.depth); got != c.nodes {
			t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.nodes)
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	b := mustParse(t, position.Chess, position.StartFEN(position.Chess))
	const depth = 3
	div := Divide(b, depth)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Perft(b, depth); sum != want {
		t.Errorf("divide total %d does not match perft(%d) = %d", sum, depth, want)
	}
}

// TestDifferentialAgainstDragontoothmg cross-checks this package's node
// counts against an independently implemented legal move generator for a
// handful of standard-chess positions where the two generators' Move
// representations are otherwise incompatible.
func TestDifferentialAgainstDragontoothmg(t *testing.T) {
	fens := []string{
		position.StartFEN(position.Chess),
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	const depth = 3
	for _, fen := range fens {
		ours := Perft(mustParse(t, position.Chess, fen), depth)
		theirs := dragontoothmgPerft(dragontoothmg.ParseFen(fen), depth)
		if ours != theirs {
			t.Errorf("fen %q: perft(%d) = %d, dragontoothmg = %d", fen, depth, ours, theirs)
		}
	}
}

func dragontoothmgPerft(b dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothmgPerft(b, depth-1)
		undo()
	}
	return nodes
}
