// Package semver compares the loosely dotted version strings (e.g.
// "114.0.5735.196", "8.1", "2022.04") that appear throughout the rule
// corpus. These are not semantic-versioning strings in the strict sense
// (they may have any number of numeric segments, or non-numeric ones),
// so the standard library's semver-oriented helpers don't apply and no
// suitable third-party dotted-version-compare library was found among
// the example repos; this package is intentionally a small stdlib-only
// utility (see DESIGN.md).
package semver

import (
	"strconv"
	"strings"
)

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater
// than b, comparing dot-separated segments numerically where possible
// and lexically otherwise. Missing trailing segments compare as zero
// ("8" == "8.0").
func Compare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}

	for i := 0; i < n; i++ {
		var av, bv string
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}

		if c := compareSegment(av, bv); c != 0 {
			return c
		}
	}
	return 0
}

func compareSegment(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)

	if aerr == nil && berr == nil {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}

// LessThan reports whether a < b.
func LessThan(a, b string) bool { return Compare(a, b) < 0 }

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b string) bool { return Compare(a, b) >= 0 }
