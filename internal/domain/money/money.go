package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrInvalidAmount  = errors.New("invalid decimal amount")
)

// Money is a non-negative amount held in integer cents.
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// Parse reads a decimal string with at most two fractional digits ("33.33", "200", "0.5").
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" || (hasFrac && (frac == "" || len(frac) > 2)) {
		return Money{}, ErrInvalidAmount
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	var f int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return Money{}, ErrInvalidAmount
		}
	}
	return Money{cents: w*100 + f}, nil
}

func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// PercentHalfUp returns pct percent of m rounded half-up to the nearest cent.
func (m Money) PercentHalfUp(pct int) Money {
	return Money{cents: (m.cents*int64(pct) + 50) / 100}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Price is a slot or booking price: a decimal amount or the free sentinel.
type Price struct {
	amount Money
	free   bool
}

func Free() Price { return Price{free: true} }

func NewPrice(amount Money) Price { return Price{amount: amount} }

func PriceFromCents(cents *int64) (Price, error) {
	if cents == nil {
		return Free(), nil
	}
	m, err := FromCents(*cents)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(m), nil
}

// ParsePrice accepts a decimal string or "free" (case-insensitive).
func ParsePrice(s string) (Price, error) {
	if strings.EqualFold(strings.TrimSpace(s), "free") {
		return Free(), nil
	}
	m, err := Parse(s)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(m), nil
}

func (p Price) IsFree() bool { return p.free }

// Amount is zero for a free price.
func (p Price) Amount() Money {
	if p.free {
		return Zero()
	}
	return p.amount
}

// CentsPtr is nil for a free price.
func (p Price) CentsPtr() *int64 {
	if p.free {
		return nil
	}
	c := p.amount.cents
	return &c
}

func (p Price) String() string {
	if p.free {
		return "free"
	}
	return p.amount.String()
}

// MarshalJSON writes the decimal string, or "free".
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: price must be a string", ErrInvalidAmount)
	}
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: amount must be a string", ErrInvalidAmount)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
