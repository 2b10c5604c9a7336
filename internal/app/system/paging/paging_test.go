package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{"/clubs", 1},
		{"/clubs?page=1", 1},
		{"/clubs?page=7", 7},
		{"/clubs?page=0", 1},
		{"/clubs?page=-3", 1},
		{"/clubs?page=abc", 1},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := Parse(r); got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, pageSize, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{37, 10, 4},
		{-1, 10, 1},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.pageSize); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.pageSize, got, tt.want)
		}
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name                    string
		page, total, shown      int
		wantPage                int
		wantPrev, wantNext      bool
		wantRangeLo, wantRangeHi int
	}{
		{"empty list", 1, 0, 0, 1, false, false, 0, 0},
		{"single page", 1, 7, 7, 1, false, false, 1, 7},
		{"first of four", 1, 37, 10, 1, false, true, 1, 10},
		{"middle page", 2, 37, 10, 2, true, true, 11, 20},
		{"last partial page", 4, 37, 7, 4, true, false, 31, 37},
		{"page beyond end clamps", 9, 37, 7, 4, true, false, 31, 37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build(tt.page, PageSize, tt.total, tt.shown)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.HasPrev != tt.wantPrev || p.HasNext != tt.wantNext {
				t.Errorf("HasPrev/HasNext = %v/%v, want %v/%v", p.HasPrev, p.HasNext, tt.wantPrev, tt.wantNext)
			}
			if p.RangeStart != tt.wantRangeLo || p.RangeEnd != tt.wantRangeHi {
				t.Errorf("Range = %d–%d, want %d–%d", p.RangeStart, p.RangeEnd, tt.wantRangeLo, tt.wantRangeHi)
			}
		})
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name              string
		page, pages, span int
		want              []int
	}{
		{"centered", 5, 9, 2, []int{3, 4, 5, 6, 7}},
		{"clamped at start", 1, 9, 2, []int{1, 2, 3}},
		{"clamped at end", 9, 9, 2, []int{7, 8, 9}},
		{"fewer pages than span", 1, 2, 3, []int{1, 2}},
		{"degenerate", 1, 0, 2, []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.page, tt.pages, tt.span)
			if len(got) != len(tt.want) {
				t.Fatalf("Window = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Window = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
