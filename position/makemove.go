package position

// MakeMove applies m to the board in place. Callers that need to inspect
// "the position after m" without disturbing the original should call
// Copy() first — Board holds no pointers, so cloning is cheap and there
// is no matching UnmakeMove to keep in sync.
func (b *Board) MakeMove(m Move) {
	us := b.sideToMove
	them := us.Opposite()

	switch m.Kind() {
	case Drop:
		pt := m.DropPieceType()
		to := m.To()
		b.removeFromHand(us, pt)
		b.addPiece(to, MakePiece(us, pt))
		b.setEPSquare(NoSquare)
		b.halfmoveClock = 0
		if us == Black {
			b.fullmoveNumber++
		}
		b.setSideToMove(them)
		return

	case Castling:
		kfrom, rfrom := m.From(), m.To()
		r := b.castlingRightForSquares(us, kfrom, rfrom)
		kto, rto := castlingDestSquares(us, r)
		king := b.removePiece(kfrom)
		rook := b.removePiece(rfrom)
		b.setPiece(kto, king)
		b.setPiece(rto, rook)
		b.clearCastlingRightsFor(us)
		b.setEPSquare(NoSquare)
		b.halfmoveClock++
		if us == Black {
			b.fullmoveNumber++
		}
		b.setSideToMove(them)
		return
	}

	from, to := m.From(), m.To()
	moving := b.pieces[from]

	captureSq := to
	if m.Kind() == EnPassant {
		if us == White {
			captureSq = to - 8
		} else {
			captureSq = to + 8
		}
	}
	captured := b.pieces[captureSq]
	isCapture := captured != NoPiece
	resetClock := isCapture || moving.Type() == Pawn

	if isCapture && b.IsHouse() {
		capType := captured.Type()
		if b.promoted&SquareBB(captureSq) != 0 {
			capType = Pawn
		}
		b.addToHand(us, capType)
	}

	wasPromoted := b.promoted&SquareBB(from) != 0
	b.promoted &^= SquareBB(from)
	b.promoted &^= SquareBB(to)

	if b.IsAtomic() && isCapture {
		b.removePiece(from)
		b.removePiece(captureSq)
		blast := kingAttacks[to]
		for blast != 0 {
			sq := blast.PopLSB()
			if p := b.pieces[sq]; p != NoPiece && p.Type() != Pawn {
				b.removePiece(sq)
				b.promoted &^= SquareBB(sq)
			}
		}
	} else {
		if isCapture {
			b.removePiece(captureSq)
		}
		b.removePiece(from)
		placed := moving
		if m.Kind() == Promotion {
			placed = MakePiece(us, m.PromotionType())
			b.promoted |= SquareBB(to)
		} else if wasPromoted {
			b.promoted |= SquareBB(to)
		}
		b.addPiece(to, placed)
	}

	b.updateCastlingRightsAfterMove(from, to)

	newEP := NoSquare
	if moving.Type() == Pawn {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			newEP = Square((int(from) + int(to)) / 2)
		}
	}
	b.setEPSquare(newEP)

	if resetClock {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}
	b.setSideToMove(them)
}

func (b *Board) castlingRightForSquares(us Color, kfrom, rfrom Square) CastlingRight {
	lo, hi := 0, 2
	if us == Black {
		lo, hi = 2, 4
	}
	for idx := lo; idx < hi; idx++ {
		if b.castlingKingSquare[idx] == kfrom && b.castlingRookSquare[idx] == rfrom {
			return CastlingRight(1 << uint(idx))
		}
	}
	return 0
}

func castlingDestSquares(us Color, r CastlingRight) (kto, rto Square) {
	rank := 0
	if us == Black {
		rank = 7
	}
	switch r {
	case WhiteOO, BlackOO:
		return MakeSquare(6, rank), MakeSquare(5, rank)
	default:
		return MakeSquare(2, rank), MakeSquare(3, rank)
	}
}

func (b *Board) clearCastlingRightsFor(c Color) {
	mask := uint8(WhiteOO | WhiteOOO)
	if c == Black {
		mask = uint8(BlackOO | BlackOOO)
	}
	b.setCastlingRights(b.castlingRights &^ mask)
}

func (b *Board) updateCastlingRightsAfterMove(from, to Square) {
	rights := b.castlingRights
	if rights == 0 {
		return
	}
	for idx := 0; idx < 4; idx++ {
		r := uint8(1) << uint(idx)
		if rights&r == 0 {
			continue
		}
		if b.castlingKingSquare[idx] == from || b.castlingRookSquare[idx] == from || b.castlingRookSquare[idx] == to {
			rights &^= r
		}
	}
	b.setCastlingRights(rights)
}
