package utils

import "testing"

func TestClampPage(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		totalCount int64
		pageSize   int
		wantPage   int
		wantTotal  int
	}{
		{"first page", 1, 30, 12, 1, 3},
		{"exact last page", 3, 30, 12, 3, 3},
		{"beyond last clamps down", 99, 30, 12, 3, 3},
		{"zero page clamps to one", 0, 30, 12, 1, 3},
		{"negative page clamps to one", -5, 30, 12, 1, 3},
		{"no rows still one page", 1, 0, 12, 1, 1},
		{"beyond last with no rows", 7, 0, 12, 1, 1},
		{"partial page counts", 2, 13, 12, 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, total := ClampPage(tc.page, tc.totalCount, tc.pageSize)
			if page != tc.wantPage || total != tc.wantTotal {
				t.Errorf("ClampPage(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.page, tc.totalCount, tc.pageSize, page, total, tc.wantPage, tc.wantTotal)
			}
		})
	}
}

func TestStringPtr(t *testing.T) {
	if StringPtr("") != nil {
		t.Error("StringPtr(\"\") should be nil")
	}
	if got := StringPtr("abc"); got == nil || *got != "abc" {
		t.Errorf("StringPtr(abc) = %v", got)
	}
}
