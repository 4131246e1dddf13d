package app

import (
	"strings"

	"github.com/samber/lo"
)

func ParseAddresses(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	return lo.Compact(parts)
}
