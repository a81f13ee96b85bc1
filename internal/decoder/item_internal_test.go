package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitParsePrice(t *testing.T) {
	tests := map[string]struct {
		value   string
		want    string
		wantErr error
	}{
		"with currency":    {value: "85.50 GBP", want: "85.50"},
		"without currency": {value: "9.9", want: "9.90"},
		"padded":           {value: "  12 EUR ", want: "12.00"},
		"empty":            {value: "", wantErr: ErrInvalidPrice},
		"not a number":     {value: "free", wantErr: ErrInvalidPrice},
		"zero":             {value: "0.00 GBP", wantErr: ErrInvalidPrice},
		"negative":         {value: "-1.00 GBP", wantErr: ErrInvalidPrice},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			price, err := parsePrice(tt.value)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr == nil {
				assert.Equal(t, tt.want, price.StringFixed(2), "should parse price")
			}
		})
	}
}
