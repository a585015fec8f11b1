package expiry

import (
	"fmt"
	"strconv"
	"time"
)

// Parse converts a two-digit month and two-digit year-within-century pair
// into their numeric values. Both strings must be exactly two digits; the
// month is not range-checked because the gateway itself does not reject
// out-of-range months, only the format.
func Parse(mm, yy string) (month, year int, err error) {
	if err := validateTwoDigits(mm); err != nil {
		return 0, 0, fmt.Errorf("month: %w", err)
	}
	if err := validateTwoDigits(yy); err != nil {
		return 0, 0, fmt.Errorf("year: %w", err)
	}
	month, _ = strconv.Atoi(mm)
	year, _ = strconv.Atoi(yy)
	return month, year, nil
}

// InPast reports whether the (month, year) pair is not strictly in the
// future relative to at. The current month counts as expired: a card whose
// expiry equals the submission month is rejected.
func InPast(month, year int, at time.Time) bool {
	curYear := at.Year() % 100
	curMonth := int(at.Month())
	if year != curYear {
		return year < curYear
	}
	return month <= curMonth
}

// IsTwoDigits reports whether s is exactly two ASCII digits.
func IsTwoDigits(s string) bool {
	return validateTwoDigits(s) == nil
}

func validateTwoDigits(s string) error {
	if len(s) != 2 {
		return fmt.Errorf("must be two digits (got %q)", s)
	}
	for i := 0; i < 2; i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("must be digits (got %q)", s)
		}
	}
	return nil
}
