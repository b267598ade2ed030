package ui

import "testing"

func TestInputWidth_ClampsNarrowTerminals(t *testing.T) {
	cases := []struct {
		term, want int
	}{
		{80, 70},
		{21, 11},
		{20, 10},
		{8, 10},
		{0, 10},
		{-5, 10},
	}
	for _, tc := range cases {
		if got := inputWidth(tc.term); got != tc.want {
			t.Errorf("inputWidth(%d) = %d, want %d", tc.term, got, tc.want)
		}
	}
}

func TestClampCursor(t *testing.T) {
	cases := []struct {
		cur, n, want int
	}{
		{0, 0, 0},
		{-1, 3, 0},
		{5, 3, 2},
		{1, 3, 1},
	}
	for _, tc := range cases {
		if got := clampCursor(tc.cur, tc.n); got != tc.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tc.cur, tc.n, got, tc.want)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		idx, n, want int
	}{
		{3, 3, 0},
		{-1, 3, 2},
		{1, 3, 1},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := wrapIndex(tc.idx, tc.n); got != tc.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", tc.idx, tc.n, got, tc.want)
		}
	}
}
