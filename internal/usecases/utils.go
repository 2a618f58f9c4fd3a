package usecases

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// bareDeadlineLayout is the timezone-less form accepted alongside RFC 3339;
// it is interpreted in the server's local timezone.
const bareDeadlineLayout = "2006-01-02T15:04:05"

// parseAmount parses a decimal string exactly.
func parseAmount(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("not a decimal number: %q", s)
	}
	return r, nil
}

// normalizeAmount canonicalizes a decimal string to two fraction digits,
// e.g. "500" -> "500.00".
func normalizeAmount(s string) (string, error) {
	r, err := parseAmount(s)
	if err != nil {
		return "", err
	}
	return r.FloatString(2), nil
}

// progressPercentage computes current/goal*100, returning 0 for a zero or
// unparseable goal so list rendering never divides by zero.
func progressPercentage(goalAmount, currentAmount string) float64 {
	goal, err := parseAmount(goalAmount)
	if err != nil || goal.Sign() == 0 {
		return 0
	}
	current, err := parseAmount(currentAmount)
	if err != nil {
		return 0
	}

	pct := new(big.Rat).Mul(new(big.Rat).Quo(current, goal), big.NewRat(100, 1))
	f, _ := pct.Float64()
	return f
}

// parseDeadline accepts an RFC 3339 timestamp or a bare local datetime and
// normalizes to UTC.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(bareDeadlineLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized deadline format: %q", s)
	}
	return t.UTC(), nil
}

// validGPA reports whether s parses to a value in [0.0, 4.0].
func validGPA(s string) bool {
	g, err := parseAmount(s)
	if err != nil {
		return false
	}
	return g.Sign() >= 0 && g.Cmp(big.NewRat(4, 1)) <= 0
}

// validAvatarURL requires an http(s) scheme.
func validAvatarURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
