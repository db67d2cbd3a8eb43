package domain

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Ordering is the outcome of comparing a declared pin against the latest
// available value.
type Ordering int

const (
	OrderIncomparable Ordering = iota
	OrderEqual
	OrderDeclaredOlder
	OrderDeclaredNewer
)

func (o Ordering) String() string {
	switch o {
	case OrderEqual:
		return "equal"
	case OrderDeclaredOlder:
		return "older"
	case OrderDeclaredNewer:
		return "newer"
	default:
		return "incomparable"
	}
}

// CompareVersions compares a declared version against the latest one.
// A single leading "v" or "V" is stripped from each operand first, and
// exact equality after stripping always wins, regardless of whether the
// operands parse. When both operands are valid semantic versions they are
// compared by semver precedence; otherwise the comparison degrades to
// byte-wise ordering of the stripped strings. Many real-world tags are
// non-semver (date tags, commit-ish strings), so the fallback is a normal
// path, not an exception.
func CompareVersions(declared, latest string) Ordering {
	if declared == "" || latest == "" {
		return OrderIncomparable
	}

	d := stripV(declared)
	l := stripV(latest)

	if d == l {
		return OrderEqual
	}

	dc, lc := "v"+d, "v"+l
	if semver.IsValid(dc) && semver.IsValid(lc) {
		switch semver.Compare(dc, lc) {
		case -1:
			return OrderDeclaredOlder
		case 1:
			return OrderDeclaredNewer
		default:
			return OrderEqual
		}
	}

	if d < l {
		return OrderDeclaredOlder
	}
	return OrderDeclaredNewer
}

// stripV removes at most one leading v/V. Embedded occurrences are kept.
func stripV(version string) string {
	if strings.HasPrefix(version, "v") || strings.HasPrefix(version, "V") {
		return version[1:]
	}
	return version
}
