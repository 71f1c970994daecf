package telegram

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
)

// session is the per-chat deal. The bot is the only stateful surface of
// the system; the game core stays request-scoped.
type session struct {
	Numbers []int
	Target  int
	Mode    string
}

var sessions sync.Map // chatID -> *session

func getSession(chatID int64) (*session, bool) {
	v, ok := sessions.Load(chatID)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session)
	return s, ok
}

func setSession(chatID int64, s *session) { sessions.Store(chatID, s) }
func clearSession(chatID int64)           { sessions.Delete(chatID) }

// deal draws four numbers for the mode. There is no solvability or
// fairness guarantee.
func deal(mode string) []int {
	limit := 9
	if mode == "hard" {
		limit = 13
	}
	nums := make([]int, 4)
	for i := range nums {
		nums[i] = rand.IntN(limit) + 1
	}
	return nums
}

// cacheKey fingerprints a deal for the hint cache: sorted numbers plus
// target and mode, so permutations of the same deal share one entry.
func (s *session) cacheKey() string {
	sorted := append([]int(nil), s.Numbers...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%d", n)
	}
	mode := s.Mode
	if mode == "" {
		mode = "easy"
	}
	return fmt.Sprintf("%s:%d:%s", strings.Join(parts, "-"), s.Target, mode)
}
