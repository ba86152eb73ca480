package display

import "testing"

func TestClassifyViewport(t *testing.T) {
	cases := []struct {
		width int
		want  Category
	}{
		{0, Small},
		{320, Small},
		{767, Small},
		{768, Medium},
		{1023, Medium},
		{1024, Large},
		{1920, Large},
		{-1, Small},
	}

	for _, tc := range cases {
		if got := ClassifyViewport(tc.width); got != tc.want {
			t.Errorf("ClassifyViewport(%d) = %v, want %v", tc.width, got, tc.want)
		}
	}
}

// The three ranges must partition [0, inf): adjacent widths around each
// breakpoint land in adjacent categories and every width maps to exactly
// one bucket.
func TestClassifyViewport_Partition(t *testing.T) {
	prev := ClassifyViewport(0)
	for w := 1; w <= 2*BreakpointLarge; w++ {
		cur := ClassifyViewport(w)
		if cur < prev {
			t.Fatalf("category regressed at width %d: %v -> %v", w, prev, cur)
		}
		if cur-prev > 1 {
			t.Fatalf("category skipped at width %d: %v -> %v", w, prev, cur)
		}
		prev = cur
	}
	if prev != Large {
		t.Errorf("expected Large at width %d, got %v", 2*BreakpointLarge, prev)
	}
}

func TestClassifyOrientation(t *testing.T) {
	if got := ClassifyOrientation(800, 600); got != Landscape {
		t.Errorf("ClassifyOrientation(800, 600) = %v, want Landscape", got)
	}
	if got := ClassifyOrientation(600, 800); got != Portrait {
		t.Errorf("ClassifyOrientation(600, 800) = %v, want Portrait", got)
	}
	// Tie goes to portrait.
	if got := ClassifyOrientation(800, 800); got != Portrait {
		t.Errorf("ClassifyOrientation(800, 800) = %v, want Portrait", got)
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"small", Small, true},
		{"mobile", Small, true},
		{"Tablet", Medium, true},
		{"desktop", Large, true},
		{"large", Large, true},
		{" medium ", Medium, true},
		{"huge", Medium, false},
		{"", Medium, false},
	}

	for _, tc := range cases {
		got, ok := ParseCategory(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseCategory(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
