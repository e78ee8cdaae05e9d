package stepreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnWidthsJagged(t *testing.T) {
	t.Parallel()
	widths := columnWidths([][]string{
		{"a", "bb"},
		{"cccc"},
		{"d", "e", "ff"},
	})
	assert.Equal(t, []int{4, 2, 2}, widths)
}

func TestColumnWidthsEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, columnWidths(nil))
}

func TestTrimASCIISpaceKeepsNonBreakingSpace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "\u00A0x\u00A0", trimASCIISpace(" \t\r\n\u00A0x\u00A0\r\n "))
}

func TestFieldValueNonStruct(t *testing.T) {
	t.Parallel()
	_, err := RetrieveMethod("just a string")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}
