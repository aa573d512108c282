package position

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceFromLetter = map[rune]Piece{
	'P': WhitePawn, 'N': WhiteKnight, 'B': WhiteBishop, 'R': WhiteRook, 'Q': WhiteQueen, 'K': WhiteKing,
	'p': BlackPawn, 'n': BlackKnight, 'b': BlackBishop, 'r': BlackRook, 'q': BlackQueen, 'k': BlackKing,
}

var letterFromPiece = map[Piece]rune{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// ParseFEN builds a Board for the given variant from a FEN string.
// Crazyhouse hand contents are read from an optional "[...]" suffix
// attached to the piece-placement field; promoted pieces sitting on the
// board may be marked with a trailing '~' (e.g. "q~"), the common
// extension used by variant FEN dialects.
func ParseFEN(v Variant, chess960 bool, fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: malformed FEN %q: need at least 4 fields", fen)
	}

	b := &Board{variant: v, chess960: chess960, epSquare: NoSquare}
	for i := range b.castlingKingSquare {
		b.castlingKingSquare[i] = NoSquare
		b.castlingRookSquare[i] = NoSquare
	}

	placement := fields[0]
	handSpec := ""
	if idx := strings.IndexByte(placement, '['); idx >= 0 {
		end := strings.IndexByte(placement, ']')
		if end < idx {
			return nil, fmt.Errorf("position: malformed hand suffix in %q", placement)
		}
		handSpec = placement[idx+1 : end]
		placement = placement[:idx]
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("position: malformed FEN %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		runes := []rune(rankStr)
		for j := 0; j < len(runes); j++ {
			ch := runes[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := pieceFromLetter[ch]
			if !ok {
				return nil, fmt.Errorf("position: malformed FEN %q: bad piece char %q", fen, ch)
			}
			if file > 7 {
				return nil, fmt.Errorf("position: malformed FEN %q: rank %d overflows", fen, rank+1)
			}
			sq := MakeSquare(file, rank)
			b.addPiece(sq, p)
			if j+1 < len(runes) && runes[j+1] == '~' {
				b.promoted |= SquareBB(sq)
				j++
			}
			file++
		}
	}

	for _, ch := range handSpec {
		if ch == ' ' {
			continue
		}
		p, ok := pieceFromLetter[ch]
		if !ok {
			return nil, fmt.Errorf("position: malformed hand spec %q", handSpec)
		}
		b.hand[p.Color()][p.Type()]++
	}
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			for n := 1; n <= b.hand[c][pt]; n++ {
				b.zobristKey ^= zobristHand[c][pt][n]
			}
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
		b.zobristKey ^= zobristSide
	default:
		return nil, fmt.Errorf("position: malformed FEN %q: bad side-to-move %q", fen, fields[1])
	}

	if err := b.parseCastling(fields[2]); err != nil {
		return nil, err
	}
	b.zobristKey ^= zobristCastle[b.castlingRights]

	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("position: malformed FEN %q: bad ep square: %w", fen, err)
		}
		b.epSquare = sq
		b.zobristKey ^= zobristEnPassant[sq.File()]
	}

	b.halfmoveClock = 0
	b.fullmoveNumber = 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			b.halfmoveClock = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			b.fullmoveNumber = n
		}
	}

	return b, nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("bad square %q", s)
	}
	return MakeSquare(file, rank), nil
}

func (b *Board) parseCastling(field string) error {
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch {
		case ch == 'K' || ch == 'Q' || ch == 'k' || ch == 'q':
			c := White
			eastward := ch == 'K'
			if ch == 'k' || ch == 'q' {
				c = Black
				eastward = ch == 'k'
			}
			file, ok := findOutermostRook(b, c, eastward)
			if !ok {
				continue
			}
			b.grantCastlingRight(c, eastward, file)
		case ch >= 'A' && ch <= 'H':
			b.chess960 = true
			b.grantCastlingRightByFile(White, int(ch-'A'))
		case ch >= 'a' && ch <= 'h':
			b.chess960 = true
			b.grantCastlingRightByFile(Black, int(ch-'a'))
		default:
			return fmt.Errorf("position: bad castling char %q", ch)
		}
	}
	return nil
}

func findOutermostRook(b *Board, c Color, eastward bool) (file int, ok bool) {
	kingSq := b.KingSquare(c)
	if kingSq == NoSquare {
		return 0, false
	}
	rank := 0
	if c == Black {
		rank = 7
	}
	rookPiece := MakePiece(c, Rook)
	if eastward {
		for f := 7; f > kingSq.File(); f-- {
			if b.pieces[MakeSquare(f, rank)] == rookPiece {
				return f, true
			}
		}
	} else {
		for f := 0; f < kingSq.File(); f++ {
			if b.pieces[MakeSquare(f, rank)] == rookPiece {
				return f, true
			}
		}
	}
	return 0, false
}

func (b *Board) grantCastlingRightByFile(c Color, file int) {
	kingSq := b.KingSquare(c)
	if kingSq == NoSquare {
		return
	}
	b.grantCastlingRight(c, file > kingSq.File(), file)
}

func (b *Board) grantCastlingRight(c Color, kingSide bool, rookFile int) {
	kingSq := b.KingSquare(c)
	rank := 0
	if c == Black {
		rank = 7
	}
	rookSq := MakeSquare(rookFile, rank)

	var r CastlingRight
	switch {
	case c == White && kingSide:
		r = WhiteOO
	case c == White && !kingSide:
		r = WhiteOOO
	case c == Black && kingSide:
		r = BlackOO
	default:
		r = BlackOOO
	}
	idx := rightIndex(r)
	b.castlingRights |= uint8(r)
	b.castlingKingSquare[idx] = kingSq
	b.castlingRookSquare[idx] = rookSq

	kto, rto := castlingDestSquares(c, r)
	path := BetweenBB(kingSq, rookSq) | BetweenBB(kingSq, kto) | SquareBB(kto) | SquareBB(rto)
	path &^= SquareBB(kingSq)
	path &^= SquareBB(rookSq)
	b.castlingPath[idx] = path
}

// ToFEN renders the board back into FEN, including a Crazyhouse hand
// suffix and '~' promoted-piece markers when applicable.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := MakeSquare(file, rank)
			p := b.pieces[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(letterFromPiece[p])
			if b.promoted&SquareBB(sq) != 0 {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.IsHouse() {
		sb.WriteByte('[')
		for c := 0; c < 2; c++ {
			for pt := King; pt >= Pawn; pt-- {
				letter := letterFromPiece[MakePiece(Color(c), pt)]
				for n := 0; n < b.hand[c][pt]; n++ {
					sb.WriteRune(letter)
				}
			}
		}
		sb.WriteByte(']')
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	castling := b.castlingFieldString()
	sb.WriteString(castling)

	sb.WriteByte(' ')
	if b.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(squareString(b.epSquare))
	}

	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmoveNumber)
	return sb.String()
}

func (b *Board) castlingFieldString() string {
	if b.castlingRights == 0 {
		return "-"
	}
	var sb strings.Builder
	if b.CanCastle(WhiteOO) {
		sb.WriteByte('K')
	}
	if b.CanCastle(WhiteOOO) {
		sb.WriteByte('Q')
	}
	if b.CanCastle(BlackOO) {
		sb.WriteByte('k')
	}
	if b.CanCastle(BlackOOO) {
		sb.WriteByte('q')
	}
	return sb.String()
}
