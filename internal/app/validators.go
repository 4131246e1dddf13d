package app

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultListCount = 10

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return defaultListCount, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || n <= 0 {
		return 0, validationError(fmt.Sprintf("invalid count %q: must be a positive integer", args[0]), "")
	}
	return n, nil
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
