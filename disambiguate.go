package chrono

import "fmt"

// Disambiguation selects which instant a local (wall-clock) reading maps to
// when the reading falls in a gap (spring-forward) or a fold (fall-back).
type Disambiguation int

const (
	// Raise rejects ambiguous or skipped local times outright.
	Raise Disambiguation = iota
	// Earlier picks the earlier of the two candidate offsets in a fold, or
	// projects backward out of a gap.
	Earlier
	// Later picks the later of the two candidate offsets in a fold, or
	// projects forward out of a gap.
	Later
	// Compatible mimics the widely-implemented behavior of most systems:
	// Earlier in a fold, Later in a gap.
	Compatible
)

func (d Disambiguation) String() string {
	switch d {
	case Raise:
		return "raise"
	case Earlier:
		return "earlier"
	case Later:
		return "later"
	case Compatible:
		return "compatible"
	default:
		return fmt.Sprintf("Disambiguation(%d)", int(d))
	}
}

// ParseDisambiguation parses one of "raise", "earlier", "later", "compatible".
func ParseDisambiguation(s string) (Disambiguation, error) {
	switch s {
	case "raise":
		return Raise, nil
	case "earlier":
		return Earlier, nil
	case "later":
		return Later, nil
	case "compatible":
		return Compatible, nil
	default:
		return Raise, newInvalidFormatError(s, "unrecognized disambiguation")
	}
}
