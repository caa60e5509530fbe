// Package util holds input validation and normalisation helpers shared by
// the CLI and the monitor service.
package util

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	domainPattern   = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	unsafeChars     = regexp.MustCompile(`[<>"';\\]`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsValidUsername reports whether s is a plausible account handle:
// alphanumerics, dots, underscores and hyphens, at most 50 characters.
func IsValidUsername(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 1 || len(s) > 50 {
		return false
	}
	return usernamePattern.MatchString(s)
}

// IsValidDomain reports whether s looks like a registrable domain name.
func IsValidDomain(s string) bool {
	return domainPattern.MatchString(strings.TrimSpace(s))
}

// Sanitize strips characters that could smuggle markup or quoting into
// logs and reports.
func Sanitize(s string) string {
	return unsafeChars.ReplaceAllString(strings.TrimSpace(s), "")
}

// NormalizeUsername lowercases the handle and strips the decorations
// people paste alongside it.
func NormalizeUsername(s string) string {
	n := strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"@", "user:", "username:"} {
		n = strings.TrimPrefix(n, prefix)
	}
	return n
}

// NormalizeEmail lowercases the address and strips a mailto: prefix.
func NormalizeEmail(s string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "mailto:")
}

// ReadTargets parses a target list: one identifier per line, blank lines
// and #-comments skipped, invalid entries reported by line number.
func ReadTargets(r io.Reader) ([]string, error) {
	var targets []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if email := NormalizeEmail(s); IsValidEmail(email) {
			targets = append(targets, email)
			continue
		}
		username := NormalizeUsername(s)
		if !IsValidUsername(username) {
			return nil, fmt.Errorf("line %d: invalid target %q", line, s)
		}
		targets = append(targets, username)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	return targets, nil
}
