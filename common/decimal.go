package common

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	DecimalPlaces = 8

	// 10^19 no longer fits in int64
	maxDecimalExponent = 18
)

// NewRationalFromDecimal converts an exact decimal literal, "0.125" is 1/8.
func NewRationalFromDecimal(s string) (RationalNumber, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return RationalNumber{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if d.IsZero() {
		return NewRational(0, 1)
	}

	n, e := new(big.Int).Set(d.Coefficient()), d.Exponent()
	ten, q, r := big.NewInt(10), new(big.Int), new(big.Int)
	for e < 0 {
		q.QuoRem(n, ten, r)
		if r.Sign() != 0 {
			break
		}
		n.Set(q)
		e++
	}
	if abs32(e) > maxDecimalExponent {
		return RationalNumber{}, fmt.Errorf("%w: decimal %s overflows int64", ErrInvalidArgument, s)
	}

	m := big.NewInt(1)
	p := new(big.Int).Exp(ten, big.NewInt(int64(abs32(e))), nil)
	if e >= 0 {
		n.Mul(n, p)
	} else {
		m = p
	}
	if !n.IsInt64() || !m.IsInt64() {
		return RationalNumber{}, fmt.Errorf("%w: decimal %s overflows int64", ErrInvalidArgument, s)
	}
	return NewRational(n.Int64(), m.Int64())
}

func (r RationalNumber) Decimal(places int32) decimal.Decimal {
	n := decimal.NewFromInt(r.Numerator())
	d := decimal.NewFromInt(r.Denominator())
	return n.DivRound(d, places)
}

func (r RationalNumber) StringFixed(places int32) string {
	return r.Decimal(places).StringFixed(places)
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
