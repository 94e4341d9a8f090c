package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{45000, "₹45,000"},
		{100000, "₹1,00,000"},
		{500000, "₹5,00,000"},
		{12345678.5, "₹1,23,45,678.50"},
		{50000000, "₹5,00,00,000"},
		{23536.74, "₹23,536.74"},
		{-1500, "-₹1,500"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatINR(tc.amount), "amount %v", tc.amount)
	}
}
