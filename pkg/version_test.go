package cargov

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"0.0.1", Version{0, 0, 1}},
		{"1.2.3", Version{1, 2, 3}},
		{"10.20.30", Version{10, 20, 30}},
		{"1.2.3.4", Version{1, 2, 3}},
		{"01.002.3", Version{1, 2, 3}},
		{"18446744073709551615.0.0", Version{math.MaxUint64, 0, 0}},
	}
	for _, tc := range tests {
		got, err := ParseVersion(tc.input)
		require.NoError(t, err, "ParseVersion(%q)", tc.input)
		assert.Equal(t, tc.want, got, "ParseVersion(%q)", tc.input)
	}
}

func TestParseVersionErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrInvalidFormat},
		{"1", ErrInvalidFormat},
		{"1.2", ErrInvalidFormat},
		{"-2.1.0", ErrInvalidDigit},
		{"1.-1.0", ErrInvalidDigit},
		{"+1.0.0", ErrInvalidDigit},
		{"1.2.x", ErrInvalidDigit},
		{"1..3", ErrInvalidDigit},
		{"1.2.3-rc1", ErrInvalidDigit},
		{" 1.2.3", ErrInvalidDigit},
		{"v1.2.3", ErrInvalidDigit},
		{"18446744073709551616.0.0", ErrInvalidDigit},
	}
	for _, tc := range tests {
		_, err := ParseVersion(tc.input)
		assert.ErrorIs(t, err, tc.want, "ParseVersion(%q)", tc.input)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	for _, v := range []Version{
		{0, 0, 0},
		{0, 0, 1},
		{1, 0, 0},
		{3, 14, 159},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
	} {
		got, err := ParseVersion(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got, "round trip of %s", v)
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3", Version{1, 2, 3}.String())
	assert.Equal(t, "0.10.0", Version{0, 10, 0}.String())
}

func TestVersionBump(t *testing.T) {
	tests := []struct {
		version Version
		label   BumpLabel
		want    Version
	}{
		{Version{0, 0, 1}, LabelPatch, Version{0, 0, 2}},
		{Version{0, 0, 1}, LabelMinor, Version{0, 1, 0}},
		{Version{0, 0, 1}, LabelMajor, Version{1, 0, 0}},
		{Version{1, 2, 3}, LabelPatch, Version{1, 2, 4}},
		{Version{1, 2, 3}, LabelMinor, Version{1, 3, 0}},
		{Version{1, 2, 3}, LabelMajor, Version{2, 0, 0}},
		{Version{1, math.MaxUint64, 3}, LabelMajor, Version{2, 0, 0}},
	}
	for _, tc := range tests {
		got, err := tc.version.Bump(tc.label)
		require.NoError(t, err, "%s.Bump(%s)", tc.version, tc.label)
		assert.Equal(t, tc.want, got, "%s.Bump(%s)", tc.version, tc.label)
		assert.NoError(t, ValidateIncrease(tc.version, got), "bumped version must pass validation")
	}
}

func TestVersionBumpOverflow(t *testing.T) {
	tests := []struct {
		version Version
		label   BumpLabel
	}{
		{Version{0, 0, math.MaxUint64}, LabelPatch},
		{Version{0, math.MaxUint64, 0}, LabelMinor},
		{Version{math.MaxUint64, 0, 0}, LabelMajor},
	}
	for _, tc := range tests {
		_, err := tc.version.Bump(tc.label)
		assert.ErrorIs(t, err, ErrOverflow, "%s.Bump(%s)", tc.version, tc.label)
	}
}

func TestVersionBumpUnknownLabel(t *testing.T) {
	_, err := Version{1, 2, 3}.Bump("prerelease")
	assert.ErrorIs(t, err, ErrUnknownBump)
}

func TestParseBumpLabel(t *testing.T) {
	for _, s := range []string{"patch", "minor", "major"} {
		label, err := ParseBumpLabel(s)
		require.NoError(t, err)
		assert.Equal(t, BumpLabel(s), label)
	}
	for _, s := range []string{"", "Patch", "premajor", "1.2.3"} {
		_, err := ParseBumpLabel(s)
		assert.ErrorIs(t, err, ErrUnknownBump, "ParseBumpLabel(%q)", s)
	}
}
