package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"variantchess/perft"
	"variantchess/position"
)

func main() {
	variantName := flag.String("variant", "chess", "Variant: chess, antichess, atomic, crazyhouse, horde, losers, racingkings, relay")
	chess960 := flag.Bool("chess960", false, "Mark the position as Chess960 (file-letter castling rights set this on their own)")
	fen := flag.String("fen", "", "FEN string (defaults to the variant's own starting position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	v, ok := position.ParseVariant(*variantName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -variant %q\n", *variantName)
		os.Exit(2)
	}

	fenStr := *fen
	if fenStr == "" {
		fenStr = position.StartFEN(v)
	}

	board, err := position.ParseFEN(v, *chess960, fenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := perft.Divide(board, *depth)
		type kv struct {
			m position.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	secs := elapsed.Seconds()
	nps := float64(totalNodes) / secs

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
