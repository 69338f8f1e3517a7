package validation

import (
	"strconv"
	"strings"
)

var allowedImageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// ImageExt returns the lowercased extension of filename if it is an allowed
// cover image type (jpg, jpeg, png). ok is false for anything else, including
// filenames without a dot.
func ImageExt(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	return ext, allowedImageExts[ext]
}

// LocalPart returns the part of an email identity before the '@'. Identities
// without an '@' (like the admin sentinel) are returned unchanged.
func LocalPart(identity string) string {
	if idx := strings.Index(identity, "@"); idx >= 0 {
		return identity[:idx]
	}
	return identity
}

// FormInt parses an optional form value into an int pointer. Empty values
// return nil without error; malformed values return ok=false.
func FormInt(value string) (*int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// TrimAndLimit trims surrounding whitespace and truncates to max bytes.
// A max of 0 or less means no limit.
func TrimAndLimit(s string, max int) string {
	s = strings.TrimSpace(s)
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
