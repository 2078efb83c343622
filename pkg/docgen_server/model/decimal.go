package model

import "github.com/shopspring/decimal"

// Decimal is the monetary/quantity number type of the data model.
// Values round half away from zero, the same behavior the document
// templates expect for 2-decimal money amounts.
type Decimal struct {
	value decimal.Decimal
}

// NewDecimalFromString parses s into a Decimal.
func NewDecimalFromString(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{
		value: d,
	}, nil
}

// NewDecimalFromStringOrZero parses s into a Decimal. Unparsable input
// yields zero. Missing or malformed numeric form fields count as zero.
func NewDecimalFromStringOrZero(s string) Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}
	}
	return Decimal{
		value: d,
	}
}

func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{
		value: decimal.NewFromFloat(f),
	}
}

func NewDecimalFromInt(i int64) Decimal {
	return Decimal{
		value: decimal.NewFromInt(i),
	}
}

func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: d.value.Add(other.value)}
}

func (d Decimal) Mul(other Decimal) Decimal {
	return Decimal{value: d.value.Mul(other.value)}
}

// Round2 rounds to 2 decimal places.
func (d Decimal) Round2() Decimal {
	return Decimal{value: d.value.Round(2)}
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

func (d Decimal) IsNegative() bool {
	return d.value.IsNegative()
}

func (d Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

// Fixed2 renders the value with exactly 2 decimal places.
func (d Decimal) Fixed2() string {
	return d.value.StringFixed(2)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.value.String()), nil
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	return d.value.UnmarshalJSON(b)
}

func (d Decimal) String() string {
	return d.value.String()
}
