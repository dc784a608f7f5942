package form

// FieldStatus tracks a field through the two-stage validation model as an
// explicit state, not ad hoc booleans:
//
//	Untouched -> TouchedValid <-> TouchedInvalid
//
// Blur transitions a field out of Untouched by validating it alone; a
// submit attempt validates every field regardless of touch state, so
// untouched empty fields land in TouchedInvalid when required checks fail.
type FieldStatus int

const (
	Untouched FieldStatus = iota
	TouchedValid
	TouchedInvalid
)

func (s FieldStatus) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case TouchedValid:
		return "valid"
	case TouchedInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// touched maps a validation outcome onto the status machine.
func touched(valid bool) FieldStatus {
	if valid {
		return TouchedValid
	}
	return TouchedInvalid
}
