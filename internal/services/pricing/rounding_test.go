package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundPrice(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency string
		want     float64
	}{
		{"sat rounds half-up to whole units", 12.6, "sat", 13},
		{"sat half exactly", 12.5, "sat", 13},
		{"sat below half", 12.4, "sat", 12},
		{"jpy is zero-decimal", 99.5, "jpy", 100},
		{"yen is zero-decimal", 99.4, "yen", 99},
		{"two-decimal currency half-up", 12.345, "usd", 12.35},
		{"two-decimal currency truncating noise", 12.344, "usd", 12.34},
		{"unknown currency defaults to two decimals", 12.345, "xyz", 12.35},
		{"zero stays zero", 0, "sat", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundPrice(tt.value, tt.currency))
		})
	}
}

func TestDecimalsFor(t *testing.T) {
	assert.Equal(t, int32(0), decimalsFor("sat"))
	assert.Equal(t, int32(0), decimalsFor("jpy"))
	assert.Equal(t, int32(2), decimalsFor("eur"))
	assert.Equal(t, int32(2), decimalsFor(""))
}
