package common

import (
	"fmt"
	"strconv"
	"strings"
)

func NewRationalFromString(s string) (RationalNumber, error) {
	return ParseRational(s)
}

// ParseRational accepts a plain integer "n" or a fraction "n/d". Mixed
// numbers like "1 2/3" are not accepted even though String may print them,
// use Fraction for a literal that parses back.
func ParseRational(s string) (RationalNumber, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewRationalFromInteger(n), nil
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RationalNumber{}, fmt.Errorf("%w: malformed rational literal %q", ErrInvalidArgument, s)
	}
	n, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return RationalNumber{}, fmt.Errorf("%w: numerator %v", ErrInvalidArgument, err)
	}
	d, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return RationalNumber{}, fmt.Errorf("%w: denominator %v", ErrInvalidArgument, err)
	}
	return NewRational(n, d)
}

func (r RationalNumber) String() string {
	n, d := r.Numerator(), r.Denominator()
	if abs(n) < d {
		return r.Fraction()
	}
	if n%d == 0 {
		return strconv.FormatInt(n/d, 10)
	}
	return fmt.Sprintf("%d %d/%d", n/d, abs(n%d), d)
}

func (r RationalNumber) Fraction() string {
	return strconv.FormatInt(r.Numerator(), 10) + "/" + strconv.FormatInt(r.Denominator(), 10)
}
