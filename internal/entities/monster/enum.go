package monster

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/monster-battle/internal/errors"
)

// NormalizeKey folds an identifier for case-insensitive lookup
func NormalizeKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func enumKey[T ~int](keys []string, v T) string {
	if int(v) < 0 || int(v) >= len(keys) {
		return strconv.Itoa(int(v))
	}
	return keys[v]
}

func parseEnum[T ~int](kind string, keys []string, text string) (T, error) {
	key := NormalizeKey(text)
	for i, k := range keys {
		if k == key {
			return T(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown %s %q", kind, text)
}
