package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
	}{
		{"1000", FromPesos(1000)},
		{"799.50", Amount(79950)},
		{"799.5", Amount(79950)},
		{"0.25", Amount(25)},
		{" 1500 ", FromPesos(1500)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("")
	assert.Error(t, err)
	_, err = Parse("-100")
	assert.Error(t, err)
	_, err = Parse("abc")
	assert.Error(t, err)
}

func TestPesosRounding(t *testing.T) {
	assert.Equal(t, int64(800), Amount(79950).Pesos())
	assert.Equal(t, int64(799), Amount(79949).Pesos())
	assert.Equal(t, int64(0), Amount(0).Pesos())
}

func TestArithmetic(t *testing.T) {
	a := FromPesos(1500)
	assert.Equal(t, FromPesos(4500), a.Mul(3))
	assert.Equal(t, FromPesos(2300), a.Add(FromPesos(800)))
	assert.True(t, a.IsPositive())
	assert.False(t, Amount(0).IsPositive())
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "₱1,000", FromPesos(1000).Display())
	assert.Equal(t, "₱999", FromPesos(999).Display())
	assert.Equal(t, "₱1,234,567", FromPesos(1234567).Display())
	// Display rounds, computation does not.
	assert.Equal(t, "₱800", Amount(79950).Display())
}
