package position

import "strings"

// MoveKind distinguishes the handful of special encodings a Move can carry.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Promotion
	EnPassant
	Castling
	Drop
)

// Move packs (from, to, kind, promotion/drop piece) into a 32-bit value so
// that generated moves can be compared and hashed without touching memory
// beyond the value itself.
type Move uint32

const (
	moveFromShift  = 0
	moveToShift    = 6
	moveKindShift  = 12
	movePieceShift = 15
)

// NewMove builds a plain from-to move (quiet or ordinary capture).
func NewMove(from, to Square) Move {
	return Move(uint32(from)<<moveFromShift | uint32(to)<<moveToShift)
}

// NewPromotion builds a pawn promotion move to the given piece type.
func NewPromotion(from, to Square, pt PieceType) Move {
	return Move(uint32(from)<<moveFromShift | uint32(to)<<moveToShift |
		uint32(Promotion)<<moveKindShift | uint32(pt)<<movePieceShift)
}

// NewEnPassant builds an en-passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move(uint32(from)<<moveFromShift | uint32(to)<<moveToShift |
		uint32(EnPassant)<<moveKindShift)
}

// NewCastling builds a castling move in king-takes-own-rook encoding: From
// is the king's origin square, To is the castling rook's origin square.
// The mover resolves final king/rook squares from the right itself.
func NewCastling(kingFrom, rookFrom Square) Move {
	return Move(uint32(kingFrom)<<moveFromShift | uint32(rookFrom)<<moveToShift |
		uint32(Castling)<<moveKindShift)
}

// NewDrop builds a Crazyhouse drop of pt onto an empty square.
func NewDrop(to Square, pt PieceType) Move {
	return Move(uint32(to)<<moveToShift | uint32(Drop)<<moveKindShift | uint32(pt)<<movePieceShift)
}

// From returns the move's origin square. Meaningless for Drop moves.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the move's destination square (or, for Castling, the rook's
// origin square).
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Kind returns the move's special-case tag.
func (m Move) Kind() MoveKind { return MoveKind((uint32(m) >> moveKindShift) & 0x7) }

// PromotionType returns the promoted-to piece type, or NoPieceType if this
// is not a Promotion move.
func (m Move) PromotionType() PieceType {
	if m.Kind() != Promotion {
		return NoPieceType
	}
	return PieceType((uint32(m) >> movePieceShift) & 0x7)
}

// DropPieceType returns the piece type being dropped, or NoPieceType if
// this is not a Drop move.
func (m Move) DropPieceType() PieceType {
	if m.Kind() != Drop {
		return NoPieceType
	}
	return PieceType((uint32(m) >> movePieceShift) & 0x7)
}

// IsNull reports whether m is the zero value (no move).
func (m Move) IsNull() bool { return m == 0 }

var promoLetters = map[PieceType]string{
	Knight: "n", Bishop: "b", Rook: "r", Queen: "q", King: "k",
}

func squareString(s Square) string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// String renders a move as a bare UCI-style token (e.g. "e2e4", "e7e8q",
// "P@e4" for drops). It is not a SAN formatter.
func (m Move) String() string {
	if m.Kind() == Drop {
		pt := m.DropPieceType()
		letter := strings.ToUpper(pieceTypeLetter(pt))
		return letter + "@" + squareString(m.To())
	}
	s := squareString(m.From()) + squareString(m.To())
	if m.Kind() == Promotion {
		s += promoLetters[m.PromotionType()]
	}
	return s
}

func pieceTypeLetter(pt PieceType) string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return "?"
}
