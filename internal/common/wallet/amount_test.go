package wallet

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEther(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"50000", "50000000000000000000000"},
		{"1", "1000000000000000000"},
		{"0.5", "500000000000000000"},
		{".25", "250000000000000000"},
		{"1.", "1000000000000000000"},
		{"0", "0"},
		{"0.000000000000000001", "1"},
		{"+2", "2000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEther(tt.in)
			require.NoError(t, err)
			want, _ := new(big.Int).SetString(tt.want, 10)
			assert.Equal(t, 0, want.Cmp(got), "got %s", got)
		})
	}
}

func TestParseEther_Invalid(t *testing.T) {
	for _, in := range []string{"", "-1", "abc", "1.2.3", ".", "1e18", " 1", "0.0000000000000000001", "1,000"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseEther(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatEther(t *testing.T) {
	tests := []struct {
		wei  string
		want string
	}{
		{"0", "0"},
		{"1000000000000000000", "1"},
		{"1500000000000000000", "1.5"},
		{"1", "0.000000000000000001"},
		{"50000000000000000000000", "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			wei, _ := new(big.Int).SetString(tt.wei, 10)
			assert.Equal(t, tt.want, FormatEther(wei))
		})
	}
	assert.Equal(t, "0", FormatEther(nil))
}
