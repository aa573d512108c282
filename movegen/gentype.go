// Package movegen enumerates pseudo-legal and legal moves for a
// position.Board across eight supported rule sets. Generation is
// stratified by kind (captures, quiets, non-evasions, evasions,
// quiet-checks, legal) and dispatched over free functions operating
// directly on bitboards, rather than through an interface per piece
// type: the hot per-square emission loops never go through virtual
// calls.
package movegen

import "variantchess/position"

// GenType selects which family of moves a Generate call produces.
type GenType uint8

const (
	Captures GenType = iota
	Quiets
	NonEvasions
	Evasions
	QuietChecks
	Legal
)

// ExtMove pairs a Move with an optional score; Generate itself never
// assigns scores, leaving ordering to the caller.
type ExtMove struct {
	Move  position.Move
	Score int32
}

// MaxMoves is the conventional upper bound on moves from any one
// position, used by callers sizing a destination buffer.
const MaxMoves = 256
