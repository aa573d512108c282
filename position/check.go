package position

// Copy returns an independent snapshot of the board. Board holds no
// pointers or slices, so a plain value copy is a full deep copy; this
// makes clone-and-simulate the natural way to answer "what does the
// position look like after m" without a matching Unmake call.
func (b *Board) Copy() Board { return *b }

// GivesCheck reports whether making m (assumed pseudo-legal for the side
// to move) would leave the opponent's king in check.
func (b *Board) GivesCheck(m Move) bool {
	nb := b.Copy()
	nb.MakeMove(m)
	return nb.Checkers() != 0
}

// Legal reports whether a pseudo-legal move m is actually legal: it does
// not leave the mover's own king attacked (variant-adjusted), and, in
// Racing Kings, does not give check without simultaneously reaching the
// goal rank.
func (b *Board) Legal(m Move) bool {
	if b.IsAnti() {
		// Antichess kings have no royal status; check never constrains
		// legality there. The forced-capture rule is enforced by the
		// generator's target-mask restriction, not here.
		return true
	}

	us := b.sideToMove
	nb := b.Copy()
	nb.MakeMove(m)

	if ksq := nb.KingSquare(us); ksq != NoSquare {
		them := us.Opposite()
		if nb.AttackersToOcc(ksq, nb.Pieces())&nb.occupancy[them] != 0 {
			return false
		}
	} else if b.IsAtomic() {
		// Our own king vanished in the explosion: illegal, not a win.
		if b.KingSquare(us) != NoSquare {
			return false
		}
	}

	if b.IsRace() {
		if nb.Checkers() != 0 {
			ksq := nb.KingSquare(us)
			if ksq == NoSquare || ksq.Rank() != 7 {
				return false
			}
		}
	}

	return true
}
