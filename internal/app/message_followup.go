package app

import "strings"

func forwardSubject(override, original string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return "Fwd: " + original
}
