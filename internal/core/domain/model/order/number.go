package order

import (
	"fmt"
	"regexp"
	"time"

	"litstock/internal/pkg/errs"
)

// numberPattern matches the ORD-YYYYMMDD-NNNN order number format.
var numberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{4}$`)

// Number is the human-facing order identifier, unique across all orders and
// sequenced per day: ORD-YYYYMMDD-NNNN. The per-day sequence is derived from
// the highest existing suffix inside the same transaction that inserts the
// order, so two concurrent creations cannot mint the same number.
type Number string

// NewNumber validates a string against the order number format.
func NewNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNN", s))
	}
	return Number(s), nil
}

// FormatNumber builds an order number from a date and a per-day sequence value.
func FormatNumber(date time.Time, sequence int) Number {
	return Number(fmt.Sprintf("ORD-%s-%04d", date.Format("20060102"), sequence))
}

// DayPrefix returns the "ORD-YYYYMMDD-" prefix for a date, used to find the
// highest existing suffix for that day.
func DayPrefix(date time.Time) string {
	return fmt.Sprintf("ORD-%s-", date.Format("20060102"))
}

// String returns the raw order number.
func (n Number) String() string {
	return string(n)
}

// Validate re-checks the format, used when restoring from persistence.
func (n Number) Validate() error {
	_, err := NewNumber(string(n))
	return err
}
