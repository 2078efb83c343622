package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "Zero"},
		{1, "One"},
		{7, "Seven"},
		{10, "Ten"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand One"},
		{1250, "One Thousand Two Hundred Fifty"},
		{1000000, "One Million"},
		{2000001, "Two Million One"},
		{1000000000, "One Billion"},
		{1000000000000, "One Trillion"},
		{1000000000000000, "One Quadrillion"},
		{1e18, "One Thousand Quadrillion"},
		{2.5e18, "Two Thousand Five Hundred Quadrillion"},
		{1250.99, "One Thousand Two Hundred Fifty"}, // fractional part ignored
		// Beyond int64 range, clamped to the largest representable amount.
		{1e19, "Nine Thousand Two Hundred Twenty Three Quadrillion Three Hundred Seventy Two Trillion Thirty Six Billion Eight Hundred Fifty Four Million Seven Hundred Seventy Five Thousand Eight Hundred Seven"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, AmountInWords(tc.amount), "amount %v", tc.amount)
	}
}
