package telegram

import "testing"

func TestDealRanges(t *testing.T) {
	cases := []struct {
		mode  string
		limit int
	}{
		{"easy", 9},
		{"", 9},
		{"hard", 13},
	}
	for _, tc := range cases {
		for i := 0; i < 200; i++ {
			nums := deal(tc.mode)
			if len(nums) != 4 {
				t.Fatalf("deal(%q) returned %d numbers", tc.mode, len(nums))
			}
			for _, n := range nums {
				if n < 1 || n > tc.limit {
					t.Fatalf("deal(%q) produced %d, want 1..%d", tc.mode, n, tc.limit)
				}
			}
		}
	}
}

func TestCacheKeyIgnoresOrder(t *testing.T) {
	a := &session{Numbers: []int{8, 3, 8, 3}, Target: 24, Mode: "hard"}
	b := &session{Numbers: []int{3, 3, 8, 8}, Target: 24, Mode: "hard"}
	if a.cacheKey() != b.cacheKey() {
		t.Fatalf("keys differ: %q vs %q", a.cacheKey(), b.cacheKey())
	}
	if a.cacheKey() != "3-3-8-8:24:hard" {
		t.Fatalf("key = %q", a.cacheKey())
	}
}

func TestCacheKeyModeDefault(t *testing.T) {
	s := &session{Numbers: []int{1, 2, 3, 4}, Target: 24}
	if s.cacheKey() != "1-2-3-4:24:easy" {
		t.Fatalf("key = %q", s.cacheKey())
	}
}

func TestSessionLifecycle(t *testing.T) {
	const chatID = int64(991)
	if _, ok := getSession(chatID); ok {
		t.Fatal("unexpected session before set")
	}
	setSession(chatID, &session{Numbers: []int{1, 2, 3, 4}, Target: 24})
	s, ok := getSession(chatID)
	if !ok || s.Target != 24 {
		t.Fatalf("got %+v, ok=%v", s, ok)
	}
	clearSession(chatID)
	if _, ok := getSession(chatID); ok {
		t.Fatal("session survived clear")
	}
}
