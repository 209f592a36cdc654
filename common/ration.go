package common

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var ErrInvalidArgument = errors.New("invalid argument")

var (
	ZeroRat RationalNumber
	OneRat  RationalNumber
)

func init() {
	OneRat = NewRationalFromInteger(1)
}

// RationalNumber is always kept in lowest terms with a positive denominator,
// the sign lives in the numerator. The zero value is 0/1.
type RationalNumber struct {
	x int64
	y int64
}

func NewRational(n, d int64) (v RationalNumber, err error) {
	if d == 0 {
		return v, fmt.Errorf("%w: denominator must not be zero", ErrInvalidArgument)
	}
	if n == 0 {
		return RationalNumber{0, 1}, nil
	}

	g, err := gcd(abs(n), abs(d))
	if err != nil {
		return v, err
	}
	n, d = n/g, d/g
	if d < 0 {
		// -MinInt64 wraps back to MinInt64
		if n == math.MinInt64 || d == math.MinInt64 {
			return v, fmt.Errorf("%w: %d/%d can not be normalized in int64", ErrInvalidArgument, n, d)
		}
		n, d = -n, -d
	}
	return RationalNumber{n, d}, nil
}

func MustRational(n, d int64) RationalNumber {
	v, err := NewRational(n, d)
	if err != nil {
		panic(fmt.Sprint(n, d, err))
	}
	return v
}

func NewRationalFromInteger(n int64) RationalNumber {
	return RationalNumber{n, 1}
}

func (r RationalNumber) Copy() RationalNumber {
	return RationalNumber{r.Numerator(), r.Denominator()}
}

func (r RationalNumber) Numerator() int64 {
	return r.x
}

func (r RationalNumber) Denominator() int64 {
	if r.y == 0 {
		return 1
	}
	return r.y
}

func (r RationalNumber) Add(o RationalNumber) (RationalNumber, error) {
	a, b, c, d := r.Numerator(), r.Denominator(), o.Numerator(), o.Denominator()
	return NewRational(a*d+b*c, b*d)
}

func (r RationalNumber) Sub(o RationalNumber) (RationalNumber, error) {
	a, b, c, d := r.Numerator(), r.Denominator(), o.Numerator(), o.Denominator()
	return NewRational(a*d-b*c, b*d)
}

func (r RationalNumber) Mul(o RationalNumber) (RationalNumber, error) {
	a, b, c, d := r.Numerator(), r.Denominator(), o.Numerator(), o.Denominator()
	return NewRational(a*c, b*d)
}

// Div fails with ErrInvalidArgument when o is zero.
func (r RationalNumber) Div(o RationalNumber) (RationalNumber, error) {
	a, b, c, d := r.Numerator(), r.Denominator(), o.Numerator(), o.Denominator()
	return NewRational(a*d, b*c)
}

func (r RationalNumber) Neg() RationalNumber {
	return RationalNumber{-r.Numerator(), r.Denominator()}
}

func (r RationalNumber) Abs() RationalNumber {
	return RationalNumber{abs(r.Numerator()), r.Denominator()}
}

func (r RationalNumber) Inv() (RationalNumber, error) {
	return NewRational(r.Denominator(), r.Numerator())
}

func (r RationalNumber) Sign() int {
	switch {
	case r.x < 0:
		return -1
	case r.x > 0:
		return 1
	}
	return 0
}

func (r RationalNumber) IsZero() bool {
	return r.x == 0
}

func (r RationalNumber) IsInteger() bool {
	return r.Denominator() == 1
}

func (r RationalNumber) Equals(o RationalNumber) bool {
	return r.Numerator() == o.Numerator() && r.Denominator() == o.Denominator()
}

// Cmp cross multiplies in big.Int, both denominators are positive so the
// order is preserved and the products can not overflow.
func (r RationalNumber) Cmp(o RationalNumber) int {
	var a, b big.Int
	a.Mul(big.NewInt(r.Numerator()), big.NewInt(o.Denominator()))
	b.Mul(big.NewInt(o.Numerator()), big.NewInt(r.Denominator()))
	return a.Cmp(&b)
}

func (r RationalNumber) LessThan(o RationalNumber) bool {
	return r.Cmp(o) < 0
}

func (r RationalNumber) Float64() float64 {
	return float64(r.Numerator()) / float64(r.Denominator())
}

func gcd(m, n int64) (int64, error) {
	if m == 0 || n == 0 {
		return 0, fmt.Errorf("%w: gcd of zero %d %d", ErrInvalidArgument, m, n)
	}
	for n != 0 {
		m, n = n, m%n
	}
	return abs(m), nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
