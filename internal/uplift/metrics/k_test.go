package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseK(t *testing.T) {
	tests := []struct {
		in      string
		want    K
		wantErr bool
	}{
		{in: "5", want: Count(5)},
		{in: " 12 ", want: Count(12)},
		{in: "0.3", want: Fraction(0.3)},
		{in: "1.0", want: Fraction(1)},
		{in: "3e-1", want: Fraction(0.3)},
		{in: "ten", wantErr: true},
		{in: "0.3.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseK(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidK)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestK_String(t *testing.T) {
	assert.Equal(t, "5", Count(5).String())
	assert.Equal(t, "0.3", Fraction(0.3).String())
	assert.Equal(t, "1.0", Fraction(1).String())
	assert.True(t, Count(5).IsCount())
	assert.False(t, DefaultK.IsCount())
	assert.True(t, K{}.IsZero())
	assert.False(t, Fraction(0).IsZero())
	assert.False(t, Count(0).IsZero())
}

func TestK_JSON(t *testing.T) {
	type payload struct {
		K K `json:"k"`
	}

	tests := []struct {
		raw  string
		want K
	}{
		{raw: `{"k":5}`, want: Count(5)},
		{raw: `{"k":0.25}`, want: Fraction(0.25)},
		{raw: `{"k":"0.5"}`, want: Fraction(0.5)},
		{raw: `{"k":0.0}`, want: Fraction(0)},
		{raw: `{"k":null}`, want: K{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &p))
			assert.Equal(t, tt.want, p.K)

			out, err := json.Marshal(p)
			require.NoError(t, err)

			var back payload
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, tt.want, back.K)
		})
	}
}

func TestK_Validate(t *testing.T) {
	tests := []struct {
		name    string
		k       K
		n       int
		wantErr bool
	}{
		{name: "count in range", k: Count(2), n: 3},
		{name: "count equal to n", k: Count(3), n: 3, wantErr: true},
		{name: "zero count", k: Count(0), n: 3, wantErr: true},
		{name: "fraction in range", k: Fraction(0.99), n: 3},
		{name: "fraction of one", k: Fraction(1), n: 3, wantErr: true},
		{name: "zero fraction", k: Fraction(0), n: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.k.Validate(tt.n)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidK)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestK_ValidateRange(t *testing.T) {
	tests := []struct {
		name    string
		k       K
		wantErr bool
	}{
		{name: "count", k: Count(500)},
		{name: "fraction", k: Fraction(0.3)},
		{name: "zero count", k: Count(0), wantErr: true},
		{name: "negative count", k: Count(-2), wantErr: true},
		{name: "zero fraction", k: Fraction(0), wantErr: true},
		{name: "fraction of one", k: Fraction(1), wantErr: true},
		{name: "fraction above one", k: Fraction(1.5), wantErr: true},
		{name: "unset", k: K{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.k.ValidateRange()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidK)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestK_Size(t *testing.T) {
	assert.Equal(t, 2, Count(2).size(10))
	assert.Equal(t, 3, Fraction(0.3).size(10))
	assert.Equal(t, 1, Fraction(0.5).size(3))
}
