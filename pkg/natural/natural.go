// Package natural provides digit-aware, case-insensitive ordering of file names.
//
// Embedded runs of decimal digits compare by numeric value, so "frame2.png"
// sorts before "frame10.png". Letters compare after ASCII upper-casing.
package natural

import "slices"

// Compare returns -1 if a sorts before b, 1 if a sorts after b and 0 when the
// two names are equivalent under natural ordering.
//
// Both strings are walked with cursors from the front:
//   - an exhausted string sorts before a non-exhausted one
//   - a digit sorts before a non-digit at the same position
//   - two non-digits compare by their ASCII upper-case byte value
//   - two digits start numeric runs that compare by value, then scanning
//     resumes after both runs
func Compare(a, b string) int {
	i, j := 0, 0
	for {
		switch {
		case i == len(a) && j == len(b):
			return 0
		case i == len(a):
			return -1
		case j == len(b):
			return 1
		}

		ca, cb := a[i], b[j]
		da, db := isDigit(ca), isDigit(cb)

		switch {
		case da && !db:
			return -1
		case !da && db:
			return 1
		case !da && !db:
			ua, ub := toUpper(ca), toUpper(cb)
			if ua != ub {
				if ua < ub {
					return -1
				}
				return 1
			}
			i++
			j++
		default:
			ei, ej := digitRunEnd(a, i), digitRunEnd(b, j)
			if c := compareNumbers(a[i:ei], b[j:ej]); c != 0 {
				return c
			}
			i, j = ei, ej
		}
	}
}

// Less reports whether a sorts strictly before b. It can be passed directly
// to sort.Slice style APIs.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders names in place. The sort is stable, so names that compare
// equal (for example "IMG1.png" and "img1.png") keep their input order and
// sorting an already sorted slice leaves it untouched.
func Sort(names []string) {
	slices.SortStableFunc(names, Compare)
}

// IsSorted reports whether names is already in natural order.
func IsSorted(names []string) bool {
	return slices.IsSortedFunc(names, Compare)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func digitRunEnd(s string, start int) int {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return end
}

// compareNumbers compares two non-empty digit runs by numeric value without
// converting them, so runs longer than any integer type are still ordered.
func compareNumbers(x, y string) int {
	x, y = trimZeros(x), trimZeros(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

func trimZeros(s string) string {
	for len(s) > 0 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
