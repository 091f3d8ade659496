package order

import (
	"errors"
	"regexp"
	"strings"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvalidOrder marks every invariant violation below.
var ErrInvalidOrder = errors.New("invalid order")

var (
	ErrEmptyCustomer      = errors.New("customer name is required")
	ErrMissingDate        = errors.New("order date is required")
	ErrNegativeValue      = errors.New("order value cannot be negative")
	ErrValuePrecision     = errors.New("order value cannot have more than two decimal places")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInvalidPickupTime  = errors.New("pickup time must be HH:MM")
	ErrEmptyFlavor        = errors.New("flavor is required")
	ErrEmptySweetType     = errors.New("sweet type is required")
	ErrFieldNotApplicable = errors.New("field does not apply to this order type")
	ErrMissingDetails     = errors.New("order details do not match its type")
)

var pickupTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func invalid(err error) error {
	return errs.Mark(err, ErrInvalidOrder)
}

// Common holds the fields shared by every order type.
type Common struct {
	Customer     string
	Date         caldate.Date
	Value        decimal.Decimal
	Observations string
}

func (c Common) normalized() (Common, error) {
	c.Customer = strings.TrimSpace(c.Customer)
	if c.Customer == "" {
		return Common{}, invalid(ErrEmptyCustomer)
	}
	if c.Date.IsZero() {
		return Common{}, invalid(ErrMissingDate)
	}
	date, err := caldate.Normalize(c.Date)
	if err != nil {
		return Common{}, invalid(err)
	}
	c.Date = date
	if c.Value.IsNegative() {
		return Common{}, invalid(ErrNegativeValue)
	}
	if !c.Value.Equal(c.Value.Truncate(2)) {
		return Common{}, invalid(ErrValuePrecision)
	}
	c.Observations = strings.TrimSpace(c.Observations)
	return c, nil
}

// PickupTime is an optional HH:MM (24h) time of day. Empty means not set.
type PickupTime string

func NewPickupTime(s string) (PickupTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !pickupTimeRegex.MatchString(s) {
		return "", invalid(ErrInvalidPickupTime)
	}
	return PickupTime(s), nil
}

func (p PickupTime) String() string {
	return string(p)
}

func (p PickupTime) IsSet() bool {
	return p != ""
}

func validateQuantity(q int) error {
	if q <= 0 {
		return invalid(ErrInvalidQuantity)
	}
	return nil
}
