package transparent

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phimar/qgw/internal/cardbrand"
	"github.com/phimar/qgw/internal/expiry"
)

// The gateway performs almost no client-visible validation of its own: a
// malformed request costs a round trip and comes back as an opaque decline
// or an HTML error page. Validate reimplements the business rules the
// gateway applies server-side so callers fail fast with field-level
// diagnostics instead.
//
// Format rules live as tags on the Payload struct; the cross-field rules
// (variant requiredness, brand detection, expiry, CVV length by brand) are
// a registered struct-level validation. All violations are collected, never
// short-circuited.

var (
	amountRe = regexp.MustCompile(`^\d*\.?\d+$`)
	intRe    = regexp.MustCompile(`^\d+$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
)

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()

	// Report wire field names (form tags) instead of Go field names so
	// issue paths match what goes over the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !amountRe.MatchString(s) {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && f > 0
	})
	v.RegisterValidation("amountstring", func(fl validator.FieldLevel) bool {
		return amountRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("intstring", func(fl validator.FieldLevel) bool {
		return intRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
		return cvvRe.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(payloadCrossChecks, Payload{})

	return v
}

// Validate checks a payload against the gateway's business rules and
// returns every violation found, or nil when the payload is valid. It is
// pure: validating the same payload twice yields the same issues.
func Validate(p *Payload) []Issue {
	err := payloadValidator.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Code: "internal", Message: err.Error()}}
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Code:    fe.Tag(),
			Path:    []string{fe.Field()},
			Message: messageFor(fe),
		})
	}
	return issues
}

func payloadCrossChecks(sl validator.StructLevel) {
	p := sl.Current().Interface().(Payload)

	// trans_method defaults to CC when absent, per the gateway docs.
	method := TransMethodCC
	if p.TransMethod != nil && *p.TransMethod != "" {
		method = strings.ToUpper(*p.TransMethod)
	}

	switch method {
	case TransMethodEFT:
		checkEFTFields(sl, p)
	default:
		checkCardFields(sl, p)
	}
}

func checkCardFields(sl validator.StructLevel, p Payload) {
	number := deref(p.CardNumber)
	if number == "" {
		sl.ReportError(p.CardNumber, "ccnum", "CardNumber", "required_cc", "")
	} else if cardbrand.Detect(number) == cardbrand.Unknown {
		sl.ReportError(p.CardNumber, "ccnum", "CardNumber", "card", "")
	}

	mm := deref(p.CardExpMonth)
	yy := deref(p.CardExpYear)
	if mm == "" {
		sl.ReportError(p.CardExpMonth, "ccmo", "CardExpMonth", "required_cc", "")
	} else if !expiry.IsTwoDigits(mm) {
		sl.ReportError(p.CardExpMonth, "ccmo", "CardExpMonth", "month", "")
	}
	if yy == "" {
		sl.ReportError(p.CardExpYear, "ccyr", "CardExpYear", "required_cc", "")
	} else if !expiry.IsTwoDigits(yy) {
		sl.ReportError(p.CardExpYear, "ccyr", "CardExpYear", "year", "")
	}

	if expiry.IsTwoDigits(mm) && expiry.IsTwoDigits(yy) {
		m, y, _ := expiry.Parse(mm, yy)
		if expiry.InPast(m, y, time.Now()) {
			sl.ReportError(p.CardExpMonth, "ccmo", "CardExpMonth", "expired", "")
		}
	}

	if cvv := deref(p.CVV2); cvv != "" && number != "" {
		want := cardbrand.CVVLength(cardbrand.Detect(number))
		if len(cvv) != want {
			sl.ReportError(p.CVV2, "CVV2", "CVV2", "cvv_length", strconv.Itoa(want))
		}
	}
}

func checkEFTFields(sl validator.StructLevel, p Payload) {
	if deref(p.ABA) == "" {
		sl.ReportError(p.ABA, "aba", "ABA", "required_eft", "")
	}
	if deref(p.CheckingAccount) == "" {
		sl.ReportError(p.CheckingAccount, "checkacct", "CheckingAccount", "required_eft", "")
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "required_cc":
		return fmt.Sprintf("%s is required when trans_method is CC", fe.Field())
	case "required_eft":
		return fmt.Sprintf("%s is required when trans_method is EFT", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "amount":
		return fmt.Sprintf("%s must be a numeric value greater than 0", fe.Field())
	case "amountstring":
		return fmt.Sprintf("%s must be a numeric value", fe.Field())
	case "intstring":
		return fmt.Sprintf("%s must be a non-negative integer", fe.Field())
	case "cvv":
		return "CVV2 must be 3 or 4 digits"
	case "card":
		return "invalid card number format"
	case "month":
		return "month must be two digits"
	case "year":
		return "year must be two digits"
	case "expired":
		return "card expiration date is in the past"
	case "cvv_length":
		return fmt.Sprintf("CVV2 must be %s digits for this card type", fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
