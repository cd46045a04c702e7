package natural

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "both empty", a: "", b: "", want: 0},
		{name: "empty before non-empty", a: "", b: "a", want: -1},
		{name: "non-empty after empty", a: "a", b: "", want: 1},
		{name: "numeric value not lexical", a: "f2.png", b: "f10.png", want: -1},
		{name: "numeric value reversed", a: "f10.png", b: "f2.png", want: 1},
		{name: "case insensitive", a: "ABC", b: "abc", want: 0},
		{name: "mixed case", a: "aBc", b: "AbC", want: 0},
		{name: "digit before letter", a: "1abc", b: "abc", want: -1},
		{name: "letter after digit", a: "abc", b: "1abc", want: 1},
		{name: "leading zeros equal", a: "img007.png", b: "img7.png", want: 0},
		{name: "leading zeros then remainder", a: "img007a", b: "img7b", want: -1},
		{name: "prefix shorter first", a: "img", b: "img1", want: -1},
		{name: "letters by upper-case value", a: "a", b: "B", want: -1},
		{name: "underscore after upper-cased letters", a: "_", b: "a", want: 1},
		{name: "zero run", a: "0", b: "00", want: 0},
		{name: "multiple numeric runs", a: "v1.2.10", b: "v1.2.9", want: 1},
		{name: "non-ascii by byte value", a: "é", b: "z", want: 1},
		{
			name: "runs longer than int64",
			a:    "x99999999999999999999999",
			b:    "x100000000000000000000000",
			want: -1,
		},
		{
			name: "long runs equal value",
			a:    "x000123456789012345678901234567890",
			b:    "x123456789012345678901234567890",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a), "ordering must be antisymmetric")
			assert.Equal(t, tt.want < 0, Less(tt.a, tt.b))
		})
	}
}

func TestLess_EmptyBoundary(t *testing.T) {
	assert.False(t, Less("", ""))
	assert.True(t, Less("", "a"))
	assert.False(t, Less("a", ""))
}

func TestSort_NumericOrder(t *testing.T) {
	names := []string{"f20.png", "f10.png", "f2.png", "f1.png"}
	Sort(names)
	assert.Equal(t, []string{"f1.png", "f2.png", "f10.png", "f20.png"}, names)
}

func TestSort_FrameNames(t *testing.T) {
	names := []string{"img2.jpg", "img10.jpg", "img1.jpg", "IMG3.jpg"}
	Sort(names)
	assert.Equal(t, []string{"img1.jpg", "img2.jpg", "IMG3.jpg", "img10.jpg"}, names)
}

func TestSort_Idempotent(t *testing.T) {
	names := []string{"b", "A", "a", "10", "9", "x01", "x1", "X1", ""}
	Sort(names)
	first := append([]string(nil), names...)

	Sort(names)
	assert.Equal(t, first, names)
	assert.True(t, IsSorted(names))
}

func TestSort_StableForEquivalentNames(t *testing.T) {
	names := []string{"IMG1.png", "img1.png", "Img01.png"}
	Sort(names)
	assert.Equal(t, []string{"IMG1.png", "img1.png", "Img01.png"}, names)
}

func TestLess_UsableWithSortSlice(t *testing.T) {
	names := []string{"page100", "page9", "Page10", "page1"}
	sort.Slice(names, func(i, j int) bool { return Less(names[i], names[j]) })
	assert.Equal(t, []string{"page1", "page9", "Page10", "page100"}, names)
}

func TestCompare_Transitive(t *testing.T) {
	names := []string{
		"", "0", "00", "1", "01", "2", "10", "a", "A", "a1", "a01", "a2", "a10",
		"a10b", "ab", "B", "b_", "_", "z9", "z10", ".hidden", "1.png", "1a",
	}
	for _, a := range names {
		for _, b := range names {
			for _, c := range names {
				if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
					assert.LessOrEqual(t, Compare(a, c), 0, "%q <= %q <= %q", a, b, c)
				}
			}
		}
	}
}

func TestCompare_TerminatesOnLongInput(t *testing.T) {
	a := strings.Repeat("a1", 10000)
	b := strings.Repeat("A01", 10000)
	assert.Equal(t, 0, Compare(a, b))
}
