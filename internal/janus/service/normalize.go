package service

import "strings"

// NormalizeEnrollment canonicalizes a scanned enrollment number. Input
// devices pad with varying numbers of leading zeros; stripping them
// collapses every representation of the same number onto one ledger key.
// An all-zero or empty input maps to "0".
func NormalizeEnrollment(raw string) string {
	s := strings.TrimLeft(strings.TrimSpace(raw), "0")
	if s == "" {
		return "0"
	}
	return s
}
