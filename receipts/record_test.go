package receipts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTokenID(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"0", true},
		{"42", true},
		{" 7 ", true},
		{"1.5", true},
		{"", false},
		{"   ", false},
		{"abc", false},
		{"-1", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateTokenID(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTokenID)
			}
		})
	}
}

func TestFind(t *testing.T) {
	records := []Record{
		{TokenID: "1", ItemName: "Coffee"},
		{TokenID: "2", ItemName: "Tea"},
		{TokenID: "1", ItemName: "Duplicate"},
	}

	r, err := Find(records, "1")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", r.ItemName)

	_, err = Find(records, "9999")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Find(records, "01")
	assert.ErrorIs(t, err, ErrNotFound, "lookup compares the raw string")

	_, err = Find(nil, "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsDemo(t *testing.T) {
	assert.True(t, Record{Owner: DemoOwner}.IsDemo())
	assert.False(t, Record{Owner: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}.IsDemo())
}
