package cargov

import "fmt"

// ValidateIncrease reports ErrVersionNotGreater unless next is exactly one
// canonical step above current:
//
//	X.Y.Z -> X.Y.(Z+n)
//	X.Y.Z -> X.(Y+n).0
//	X.Y.Z -> (X+n).0.0
//
// Jumps such as 1.0.0 -> 2.3.4 are rejected even though they sort higher.
func ValidateIncrease(current, next Version) error {
	if !isCanonicalStep(current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrVersionNotGreater, current, next)
	}
	return nil
}

func isCanonicalStep(current, next Version) bool {
	switch {
	case next.Major != current.Major:
		return next.Major > current.Major && next.Minor == 0 && next.Patch == 0
	case next.Minor != current.Minor:
		return next.Minor > current.Minor && next.Patch == 0
	default:
		return next.Patch > current.Patch
	}
}
