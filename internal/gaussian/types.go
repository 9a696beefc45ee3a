package gaussian

// AngularType enumerates the shell kinds a contracted Gaussian basis
// function can carry (spec SS6, stable and shared with the file formats
// that feed this engine).
type AngularType int

const (
	S AngularType = iota
	SP
	P
	D
	D5
	F
	F7
	G
	G9
	H
	H11
	I
	I13
)

func (t AngularType) String() string {
	switch t {
	case S:
		return "S"
	case SP:
		return "SP"
	case P:
		return "P"
	case D:
		return "D"
	case D5:
		return "D5"
	case F:
		return "F"
	case F7:
		return "F7"
	case G:
		return "G"
	case G9:
		return "G9"
	case H:
		return "H"
	case H11:
		return "H11"
	case I:
		return "I"
	case I13:
		return "I13"
	default:
		return "unknown"
	}
}

// componentsPerShell is the authoritative component count table (spec
// SS3). S/P/SP/D/D5/F/F7 are exactly as spec.md tabulates them; the
// higher shells reserve MO-column slots using the per-branch counts the
// original gaussianset.cpp used before its fallthrough bug ate them (see
// DESIGN.md's Open Question entry) -- kernels never evaluate these, they
// only need a slot count so numMOs stays correct.
var componentsPerShell = map[AngularType]int{
	S:   1,
	P:   3,
	SP:  4,
	D:   6,
	D5:  5,
	F:   8,
	F7:  7,
	G:   15,
	G9:  9,
	H:   21,
	H11: 11,
	I:   28,
	I13: 13,
}

// ComponentsPerShell reports how many MO/AO columns a shell of type t
// consumes. Unknown types contribute zero.
func ComponentsPerShell(t AngularType) int {
	return componentsPerShell[t]
}

// Implemented reports whether the evaluation kernels handle this
// angular type. F and higher are recognized but not evaluated (spec
// SS1 Non-goals).
func Implemented(t AngularType) bool {
	switch t {
	case S, P, D, D5:
		return true
	default:
		return false
	}
}

// Shell is a contracted Gaussian basis function living on one atom. Its
// primitive range is derived, not stored here: Basis.firstPrimitive[s]
// gives the start, and either the next shell's start or the sentinel
// gives the end (spec SS3's primitiveEnd construction).
type Shell struct {
	AtomIndex int
	Type      AngularType
}
