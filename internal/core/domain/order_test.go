package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_AmountMinor(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{500, 50000},
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Order{Amount: tc.amount}.AmountMinor(), "amount %v", tc.amount)
	}
}
