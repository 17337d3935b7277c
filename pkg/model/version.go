package model

import (
	"strconv"
	"strings"
)

// PackageVersion is an opaque Debian package version string. Values are
// compared with the dpkg ordering algorithm and never mutated.
type PackageVersion string

// Compare returns -1, 0 or 1 depending on whether v sorts before, equal to
// or after other under Debian version ordering. The algorithm is the one
// documented in deb-version(7): epochs compare numerically, then the
// upstream and revision parts are compared as alternating runs of non-digit
// and digit characters. Malformed versions still yield a total order; there
// is no error case.
func (v PackageVersion) Compare(other PackageVersion) int {
	aEpoch, aRest := splitEpoch(string(v))
	bEpoch, bRest := splitEpoch(string(other))
	if aEpoch != bEpoch {
		if aEpoch < bEpoch {
			return -1
		}
		return 1
	}

	aUpstream, aRevision := splitRevision(aRest)
	bUpstream, bRevision := splitRevision(bRest)
	if c := compareRuns(aUpstream, bUpstream); c != 0 {
		return c
	}
	return compareRuns(aRevision, bRevision)
}

// Less reports whether v sorts strictly before other.
func (v PackageVersion) Less(other PackageVersion) bool {
	return v.Compare(other) < 0
}

func (v PackageVersion) String() string {
	return string(v)
}

// splitEpoch splits "epoch:rest" and defaults a missing or non-numeric
// epoch to 0, leaving the full string as the remainder in that case.
func splitEpoch(s string) (int, string) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return 0, s
	}
	epoch, err := strconv.Atoi(s[:idx])
	if err != nil || epoch < 0 {
		return 0, s
	}
	return epoch, s[idx+1:]
}

// splitRevision splits at the last '-' into upstream and Debian revision.
// A version without a '-' has an empty revision.
func splitRevision(s string) (string, string) {
	idx := strings.LastIndexByte(s, '-')
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}

// charOrder maps a byte to its sort weight within a non-digit run:
// '~' sorts before everything including the end of the string, letters sort
// before any other character, and digits terminate the run (weight 0, same
// as end-of-string).
func charOrder(c byte) int {
	switch {
	case c == '~':
		return -1
	case c >= '0' && c <= '9':
		return 0
	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		return int(c)
	default:
		return int(c) + 256
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// compareRuns compares two version fragments by peeling off alternating
// maximal runs of non-digit and digit characters. Digit runs compare as
// integers with leading zeros ignored. An exhausted fragment contributes
// empty runs, which sort below everything except '~'.
func compareRuns(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		// Non-digit run, compared character by character.
		for (i < len(a) && !isDigit(a[i])) || (j < len(b) && !isDigit(b[j])) {
			ac, bc := 0, 0
			if i < len(a) {
				ac = charOrder(a[i])
			}
			if j < len(b) {
				bc = charOrder(b[j])
			}
			if ac != bc {
				if ac < bc {
					return -1
				}
				return 1
			}
			i++
			j++
		}

		// Digit run, compared numerically.
		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}
		firstDiff := 0
		for i < len(a) && j < len(b) && isDigit(a[i]) && isDigit(b[j]) {
			if firstDiff == 0 && a[i] != b[j] {
				if a[i] < b[j] {
					firstDiff = -1
				} else {
					firstDiff = 1
				}
			}
			i++
			j++
		}
		if i < len(a) && isDigit(a[i]) {
			return 1
		}
		if j < len(b) && isDigit(b[j]) {
			return -1
		}
		if firstDiff != 0 {
			return firstDiff
		}
	}
	return 0
}
