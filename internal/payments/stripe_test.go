package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{20.00, 2000},
		{19.99, 1999},
		{0.5, 50},
		{0, 0},
		{129.95, 12995},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.price), "price %v", tt.price)
	}
}
