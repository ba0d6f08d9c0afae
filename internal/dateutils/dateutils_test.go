package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"day first", "25/03/2024", time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)},
		{"ambiguous reads day first", "03/04/2024", time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC)},
		{"month first when day first is impossible", "12/25/2024", time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)},
		{"iso", "2024-03-25", time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)},
		{"european dots", "25.03.2024", time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)},
		{"month name", "25-Mar-2024", time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)},
		{"single digits", "5/3/2024", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{"surrounding whitespace", "  2024-03-25 ", time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateString(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}
}

func TestParseDateString_EmptyAndInvalid(t *testing.T) {
	got, err := ParseDateString("   ")
	assert.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDateString("not a date")
	assert.Error(t, err)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-03-25", NormalizeDate("25/03/2024"))
	assert.Equal(t, "2024-12-25", NormalizeDate("12/25/2024"))
	assert.Equal(t, "yesterday", NormalizeDate(" yesterday "))
	assert.Equal(t, "", NormalizeDate(""))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "25 Mar 2024", CleanDateString("  25   Mar\t2024 "))
}
