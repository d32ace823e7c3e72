package model

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const minorInMajor = 100

// Amount is a currency amount kept in major and minor units.
// The zero value is a valid zero amount.
type Amount struct {
	major int64
	minor int64
}

func NewAmount(major, minor int64) Amount {
	total := major*minorInMajor + minor
	return Amount{
		major: total / minorInMajor,
		minor: total % minorInMajor,
	}
}

func (a Amount) TotalMinor() int64 {
	return a.major*minorInMajor + a.minor
}

func (a Amount) ToFloat64() float64 {
	return float64(a.major) + float64(a.minor)/minorInMajor
}

func (a Amount) IsZero() bool {
	return a.TotalMinor() == 0
}

func (a Amount) Neg() Amount {
	return NewAmount(0, -a.TotalMinor())
}

// Points returns the whole currency units of the amount, truncated toward
// zero. One point is worth one currency unit once a redemption is staged.
func (a Amount) Points() int64 {
	return a.major
}

func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.TotalMinor(), -2)
}

func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(b), err)
	}
	*a = FromDecimal(d)
	return nil
}

func FromFloat(amount float64) (Amount, error) {
	if amount < 0 {
		return Amount{}, errors.New("amount must be positive")
	}
	const maxPreciseInt = 9007199254740992
	if amount*minorInMajor >= maxPreciseInt {
		return Amount{}, errors.New("amount overflow")
	}

	totalMinor := int64(math.Round(amount * minorInMajor))
	return NewAmount(0, totalMinor), nil
}

// FromDecimal rounds d half away from zero to minor units.
func FromDecimal(d decimal.Decimal) Amount {
	return NewAmount(0, d.Shift(2).Round(0).IntPart())
}

// FromPoints converts points to currency using the configured rate.
func FromPoints(points int64, rate decimal.Decimal) Amount {
	return FromDecimal(decimal.NewFromInt(points).Mul(rate))
}

func (a Amount) ToPGNumeric() pgtype.Numeric {
	return pgtype.Numeric{
		Int:   big.NewInt(a.TotalMinor()),
		Exp:   -2,
		Valid: true,
	}
}

func FromPGNumeric(n pgtype.Numeric) (Amount, error) {
	if !n.Valid || n.Int == nil {
		return Amount{}, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return Amount{}, errors.New("amount is not a finite number")
	}
	return FromDecimal(decimal.NewFromBigInt(n.Int, n.Exp)), nil
}
