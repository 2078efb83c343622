package docgen

import (
	"math"
	"strings"
)

var onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
var teenWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
var tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
var scaleWords = []string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion"}

// AmountInWords converts the integer part of a non-negative amount into
// English words using short-scale grouping. The fractional part is
// ignored. Zero yields "Zero". Groups beyond the top of the scale table
// reuse it for the leading digits ("One Thousand Quadrillion"); amounts
// beyond the int64 range clamp to the largest representable value.
func AmountInWords(amount float64) string {
	if amount >= math.MaxInt64 {
		return intInWords(math.MaxInt64)
	}
	num := int64(amount)
	if num == 0 {
		return "Zero"
	}
	return intInWords(num)
}

func intInWords(num int64) string {
	var parts []string
	for i := 0; num > 0; i++ {
		if i == len(scaleWords)-1 {
			parts = append([]string{intInWords(num) + " " + scaleWords[i]}, parts...)
			break
		}
		chunk := int(num % 1000)
		num /= 1000
		if chunk == 0 {
			continue
		}
		text := threeDigitsInWords(chunk)
		if scaleWords[i] != "" {
			text += " " + scaleWords[i]
		}
		parts = append([]string{text}, parts...)
	}
	return strings.Join(parts, " ")
}

func threeDigitsInWords(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teenWords[n-10]
	case n < 100:
		if n%10 == 0 {
			return tensWords[n/10]
		}
		return tensWords[n/10] + " " + onesWords[n%10]
	}

	tail := threeDigitsInWords(n % 100)
	if tail == "" {
		return onesWords[n/100] + " Hundred"
	}
	return onesWords[n/100] + " Hundred " + tail
}
