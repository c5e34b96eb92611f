package app

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Amount is money in minor units (cents).
type Amount int64

// MinGoalAmount is the smallest goal a campaign may ask for.
const MinGoalAmount Amount = 100_00

// MinDonationAmount is the smallest accepted donation.
const MinDonationAmount Amount = 1_00

// maxAmountDigits bounds whole-unit digits so cents always fit in int64.
const maxAmountDigits = 15

var (
	ErrAmountSyntax    = errors.New("amount is not a decimal number")
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrAmountRange     = errors.New("amount is too large")
)

// ParseAmount parses decimal text such as "1500", "99.9" or "-3.25".
// At most two fraction digits are accepted; exponents and separators are not.
func ParseAmount(raw string) (Amount, error) {
	text := strings.TrimSpace(raw)
	negative := false
	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}
	whole, frac, _ := strings.Cut(text, ".")
	if whole == "" && frac == "" {
		return 0, ErrAmountSyntax
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, ErrAmountSyntax
	}
	if len(frac) > 2 {
		return 0, ErrAmountPrecision
	}
	whole = strings.TrimLeft(whole, "0")
	if len(whole) > maxAmountDigits {
		return 0, ErrAmountRange
	}

	var units int64
	if whole != "" {
		parsed, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			return 0, ErrAmountRange
		}
		units = parsed
	}
	cents := int64(0)
	for i := 0; i < 2; i++ {
		cents *= 10
		if i < len(frac) {
			cents += int64(frac[i] - '0')
		}
	}
	value := units*100 + cents
	if negative {
		value = -value
	}
	return Amount(value), nil
}

func allDigits(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the plain decimal form used on the wire, e.g. "1500.00".
func (a Amount) String() string {
	units, cents, negative := a.split()
	out := strconv.FormatInt(units, 10) + "." + twoDigits(cents)
	if negative {
		return "-" + out
	}
	return out
}

// Format renders the amount for display with thousands separators, e.g. "1,500.00".
func (a Amount) Format() string {
	units, cents, negative := a.split()
	digits := strconv.FormatInt(units, 10)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	b.WriteByte('.')
	b.WriteString(twoDigits(cents))
	return b.String()
}

func (a Amount) split() (int64, int64, bool) {
	value := int64(a)
	negative := value < 0
	if negative {
		value = -value
	}
	return value / 100, value % 100, negative
}

func twoDigits(value int64) string {
	if value < 10 {
		return "0" + strconv.FormatInt(value, 10)
	}
	return strconv.FormatInt(value, 10)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
// Values with more than two decimals or in exponent form (1E+3) are
// rounded half away from zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		*a = 0
		return nil
	}
	text = strings.Trim(text, `"`)
	parsed, err := ParseAmount(text)
	if errors.Is(err, ErrAmountPrecision) || errors.Is(err, ErrAmountSyntax) {
		parsed, err = roundAmount(text)
	}
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func roundAmount(text string) (Amount, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrAmountSyntax
	}
	scaled := value * 100
	if math.Abs(scaled) >= math.MaxInt64 {
		return 0, ErrAmountRange
	}
	if scaled < 0 {
		return Amount(int64(scaled - 0.5)), nil
	}
	return Amount(int64(scaled + 0.5)), nil
}

// PercentOf returns part/total as a whole percentage clamped to [0, 100].
func PercentOf(part Amount, total Amount) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	if part >= total {
		return 100
	}
	return int(int64(part) * 100 / int64(total))
}
