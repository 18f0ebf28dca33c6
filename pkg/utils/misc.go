package utils

import (
	"os"
	"strings"

	"golang.org/x/exp/constraints"
)

// Min .
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Hostname .
func Hostname() (string, error) {
	return os.Hostname()
}

// MergeStrings .
func MergeStrings(a, b []string) []string {
	var out = make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// NormalizeMAC lowercases a MAC address for use as a stable key.
func NormalizeMAC(mac string) string {
	return strings.ToLower(strings.TrimSpace(mac))
}
