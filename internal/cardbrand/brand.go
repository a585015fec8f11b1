package cardbrand

import (
	"regexp"
	"strings"
)

// Brand is a card network detected from the account number.
type Brand string

const (
	Visa       Brand = "VISA"
	MasterCard Brand = "MC"
	Amex       Brand = "AMEX"
	Discover   Brand = "DISC"
	Unknown    Brand = ""
)

var (
	visaRe       = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	masterCardRe = regexp.MustCompile(`^5[1-5][0-9]{14}$`)
	amexRe       = regexp.MustCompile(`^3[47][0-9]{13}$`)
	discoverRe   = regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)
)

// Detect classifies a card number against the Visa, MasterCard, Amex and
// Discover numeric patterns. Returns Unknown when nothing matches.
func Detect(number string) Brand {
	switch {
	case amexRe.MatchString(number):
		return Amex
	case visaRe.MatchString(number):
		return Visa
	case masterCardRe.MatchString(number):
		return MasterCard
	case discoverRe.MatchString(number):
		return Discover
	default:
		return Unknown
	}
}

// CVVLength returns the security-code length the brand requires: 4 for Amex,
// 3 for everything else.
func CVVLength(b Brand) int {
	if b == Amex {
		return 4
	}
	return 3
}

func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LastN returns the trailing n characters of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// Mask hides all but the first six and last four digits of a card number so
// it can appear in logs.
func Mask(number string) string {
	n := len(number)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + number[n-4:]
	}
	return number[:6] + strings.Repeat("*", n-10) + number[n-4:]
}
