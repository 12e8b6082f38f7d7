package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unicart/unicart/internal/transport"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []Line
		want  transport.CartSummary
	}{
		{
			name:  "empty cart",
			lines: nil,
			want:  transport.CartSummary{Subtotal: 0, Shipping: 9.99, Tax: 0, Total: 9.99},
		},
		{
			name:  "below free shipping threshold",
			lines: []Line{{Price: 49, Quantity: 1}},
			want:  transport.CartSummary{Subtotal: 49, Shipping: 9.99, Tax: 3.92, Total: 62.91},
		},
		{
			name:  "at free shipping threshold",
			lines: []Line{{Price: 25, Quantity: 2}},
			want:  transport.CartSummary{Subtotal: 50, Shipping: 0, Tax: 4, Total: 54},
		},
		{
			name:  "above free shipping threshold",
			lines: []Line{{Price: 60, Quantity: 1}},
			want:  transport.CartSummary{Subtotal: 60, Shipping: 0, Tax: 4.8, Total: 64.8},
		},
		{
			name:  "multiple lines sum before threshold check",
			lines: []Line{{Price: 19.99, Quantity: 2}, {Price: 5.5, Quantity: 3}},
			want:  transport.CartSummary{Subtotal: 56.48, Shipping: 0, Tax: 4.52, Total: 61},
		},
		{
			name:  "float price stays exact",
			lines: []Line{{Price: 0.1, Quantity: 3}},
			want:  transport.CartSummary{Subtotal: 0.3, Shipping: 9.99, Tax: 0.02, Total: 10.31},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Summarize(tt.lines)
			assert.Equal(t, tt.want, got)
		})
	}
}
