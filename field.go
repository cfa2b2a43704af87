package cron

// FieldKind identifies one of the seven positional components of a
// schedule, in the fixed order the grammar requires.
type FieldKind int

const (
	FieldNanosecond FieldKind = iota
	FieldSecond
	FieldMinute
	FieldHour
	FieldDayOfMonth
	FieldMonth
	FieldDayOfWeek

	fieldCount = int(FieldDayOfWeek) + 1
)

func (k FieldKind) String() string {
	switch k {
	case FieldNanosecond:
		return "nanosecond"
	case FieldSecond:
		return "second"
	case FieldMinute:
		return "minute"
	case FieldHour:
		return "hour"
	case FieldDayOfMonth:
		return "day-of-month"
	case FieldMonth:
		return "month"
	case FieldDayOfWeek:
		return "day-of-week"
	default:
		return "unknown"
	}
}

type fieldBounds struct {
	min, max uint64
}

// fieldRanges gives the declared [min,max] for each FieldKind in positional
// order.
var fieldRanges = [fieldCount]fieldBounds{
	FieldNanosecond: {0, 999999999},
	FieldSecond:     {0, 59},
	FieldMinute:     {0, 59},
	FieldHour:       {0, 23},
	FieldDayOfMonth: {1, 31},
	FieldMonth:      {1, 12},
	FieldDayOfWeek:  {0, 6},
}

const maxAtomsPerField = 12

// atom is one disjunct of a field's match set: matches v iff
// start <= v <= end and (v-start) mod step == 0.
type atom struct {
	start uint64
	end   uint64
	step  uint32
}

func (a atom) matches(v uint64) bool {
	if v < a.start || v > a.end {
		return false
	}
	if a.step == 1 {
		return true
	}
	return (v-a.start)%uint64(a.step) == 0
}

// Field is the parsed representation of one schedule component: an ordered
// list of up to maxAtomsPerField atoms, plus a marker recording whether the
// source text was exactly "*".
type Field struct {
	atoms      []atom
	isWildcard bool
}

// Matches reports whether v satisfies any atom of the field.
func (f Field) Matches(v uint64) bool {
	for _, a := range f.atoms {
		if a.matches(v) {
			return true
		}
	}
	return false
}

// IsWildcard reports whether the field's source text was exactly "*".
func (f Field) IsWildcard() bool {
	return f.isWildcard
}

// NextMatch returns the smallest value in [minCandidate, capValue] that
// satisfies the field, and whether one was found. For each atom it computes
// the first value at or after minCandidate on that atom's step lattice,
// discarding atoms whose bump would overflow or whose candidate lands past
// capValue or the atom's own end.
func (f Field) NextMatch(minCandidate, capValue uint64) (uint64, bool) {
	if minCandidate > capValue {
		return 0, false
	}

	found := false
	var best uint64

	for _, a := range f.atoms {
		if a.start > capValue {
			continue
		}
		atomEnd := a.end
		if atomEnd > capValue {
			atomEnd = capValue
		}
		if minCandidate > atomEnd {
			continue
		}

		candidate := a.start
		if candidate < minCandidate {
			step := uint64(a.step)
			delta := minCandidate - a.start
			rem := delta % step
			if rem == 0 {
				candidate = minCandidate
			} else {
				bumped, ok := addUint64(minCandidate, step-rem)
				if !ok {
					continue
				}
				candidate = bumped
			}
		}

		if candidate > atomEnd {
			continue
		}

		if !found || candidate < best {
			best = candidate
			found = true
		}
	}

	return best, found
}

// addUint64 adds a and b, reporting false on overflow.
func addUint64(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}
