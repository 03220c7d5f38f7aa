package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		1:   "A",
		2:   "B",
		26:  "Z",
		27:  "AA",
		52:  "AZ",
		702: "ZZ",
		703: "AAA",
	}
	for col, want := range cases {
		assert.Equal(t, want, ColumnLetter(col), "col %d", col)
		assert.Equal(t, col, LetterToColumn(want), "letters %s", want)
	}
}

func TestParseRange(t *testing.T) {
	g, err := ParseRange("A2:F21")
	require.NoError(t, err)
	assert.Equal(t, GridRange{StartRow: 2, StartCol: 1, EndRow: 21, EndCol: 6}, g)

	// tham chiếu ô đơn: End = Start
	g, err = ParseRange("B5")
	require.NoError(t, err)
	assert.Equal(t, GridRange{StartRow: 5, StartCol: 2, EndRow: 5, EndCol: 2}, g)

	_, err = ParseRange("5A")
	assert.Error(t, err)
	_, err = ParseRange("")
	assert.Error(t, err)
}

func TestRowRange(t *testing.T) {
	assert.Equal(t, "A7:F7", RowRange(7, 6))
}
