package cargov

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is a major.minor.patch triple. It never carries prerelease or
// build metadata.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ParseVersion parses "X.Y.Z". Segments after the third are ignored.
// Fewer than three segments is ErrInvalidFormat; a segment that is not a
// non-negative integer (including one with a leading '-') is ErrInvalidDigit.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 3 {
		return Version{}, fmt.Errorf("%w: %q (expected X.Y.Z)", ErrInvalidFormat, s)
	}

	var nums [3]uint64
	for i, part := range parts[:3] {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q in %q", ErrInvalidDigit, part, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the version as "X.Y.Z" without a "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the next version along the axis named by label. The result
// always satisfies ValidateIncrease against v.
func (v Version) Bump(label BumpLabel) (Version, error) {
	switch label {
	case LabelPatch:
		patch, err := increment(v.Patch)
		if err != nil {
			return Version{}, err
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: patch}, nil
	case LabelMinor:
		minor, err := increment(v.Minor)
		if err != nil {
			return Version{}, err
		}
		return Version{Major: v.Major, Minor: minor}, nil
	case LabelMajor:
		major, err := increment(v.Major)
		if err != nil {
			return Version{}, err
		}
		return Version{Major: major}, nil
	default:
		return Version{}, fmt.Errorf("%w: %s", ErrUnknownBump, label)
	}
}

func increment(n uint64) (uint64, error) {
	if n == math.MaxUint64 {
		return 0, fmt.Errorf("%w: %d + 1", ErrOverflow, n)
	}
	return n + 1, nil
}

// BumpLabel names the version component to advance.
type BumpLabel string

const (
	LabelPatch BumpLabel = "patch"
	LabelMinor BumpLabel = "minor"
	LabelMajor BumpLabel = "major"
)

// ParseBumpLabel maps "patch", "minor" or "major" to a BumpLabel.
func ParseBumpLabel(s string) (BumpLabel, error) {
	switch l := BumpLabel(s); l {
	case LabelPatch, LabelMinor, LabelMajor:
		return l, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownBump, s)
}
