package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hostbot/pkg/tz"
)

// FormatEventDate formats t in Paris time, "" for the zero time.
func FormatEventDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Paris).Format("02/01/2006")
}

func FormatEventDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Paris).Format("02/01/2006 à 15:04")
}

// ParseOptionalCount parses a positive integer typed in a modal. An empty
// value returns 0 so callers can apply their own default.
func ParseOptionalCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("nombre invalide %q (entier positif attendu)", s)
	}
	return n, nil
}

// ParseID parses a Discord component id suffix (e.g. the "12" of "hb_cancel:12").
func ParseID(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("identifiant invalide %q", s)
	}
	return uint(n), nil
}
