package tax

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	units = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen"}
	tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

// AmountInWords renders an amount in the Indian numbering system, e.g.
// 150000.5 is "One Lakh Fifty Thousand Rupees and Fifty Paisa Only.". The
// amount is rounded to paise first. Non-finite amounts render as "".
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	d := decimal.NewFromFloat(amount).Round(2)
	negative := d.IsNegative()
	d = d.Abs()

	rupees := d.IntPart()
	paise := d.Sub(decimal.NewFromInt(rupees)).Shift(2).IntPart()

	var b strings.Builder
	if negative && (rupees > 0 || paise > 0) {
		b.WriteString("Minus ")
	}
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(indianWords(rupees))
	}
	b.WriteString(" Rupees")
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(chunkWords(paise))
		b.WriteString(" Paisa")
	}
	b.WriteString(" Only.")
	return b.String()
}

// indianWords spells n > 0 as crore, lakh, thousand and hundreds groups.
// Crore counts above 999 are spelled recursively.
func indianWords(n int64) string {
	var parts []string
	if n >= crore {
		c := n / crore
		if c >= thousand {
			parts = append(parts, indianWords(c), "Crore")
		} else {
			parts = append(parts, chunkWords(c), "Crore")
		}
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, chunkWords(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= thousand {
		parts = append(parts, chunkWords(n/thousand), "Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, chunkWords(n))
	}
	return strings.Join(parts, " ")
}

// chunkWords spells 0 < n < 1000.
func chunkWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, units[n/100], "Hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, units[n%10])
		}
	case n >= 10:
		parts = append(parts, teens[n-10])
	case n > 0:
		parts = append(parts, units[n])
	}
	return strings.Join(parts, " ")
}
