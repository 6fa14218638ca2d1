package csvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDelimiter(t *testing.T) {
	t.Run("Semicolon Header", func(t *testing.T) {
		assert.Equal(t, ';', DetectDelimiter("Network;Player;Game ID;Stake"))
	})

	t.Run("Comma Header", func(t *testing.T) {
		assert.Equal(t, ',', DetectDelimiter("Network,Player,Game ID,Stake"))
	})

	t.Run("Mixed Header Prefers Majority", func(t *testing.T) {
		// Commas inside a quoted title must not flip the choice when
		// semicolons dominate.
		assert.Equal(t, ';', DetectDelimiter(`Network;Player;"Stake, Rake";Date`))
		assert.Equal(t, ',', DetectDelimiter("a,b,c;d"))
	})

	t.Run("Tie Defaults To Comma", func(t *testing.T) {
		assert.Equal(t, ',', DetectDelimiter("a;b,c"))
	})
}

func TestSplitRow(t *testing.T) {
	t.Run("Plain Fields", func(t *testing.T) {
		fields := SplitRow("GGNetwork,hero123,555", ',')
		assert.Equal(t, []string{"GGNetwork", "hero123", "555"}, fields)
	})

	t.Run("Quoted Delimiter Is Literal", func(t *testing.T) {
		fields := SplitRow(`"Sunday Special, $100",GGNetwork`, ',')
		assert.Equal(t, []string{"Sunday Special, $100", "GGNetwork"}, fields)
	})

	t.Run("Fields Are Trimmed", func(t *testing.T) {
		fields := SplitRow("  a ; b ;c  ", ';')
		assert.Equal(t, []string{"a", "b", "c"}, fields)
	})

	t.Run("Unterminated Quote Keeps Remainder", func(t *testing.T) {
		fields := SplitRow(`a,"b,c`, ',')
		assert.Equal(t, []string{"a", "b,c"}, fields)
	})

	t.Run("Empty Fields Survive", func(t *testing.T) {
		fields := SplitRow("a,,c", ',')
		assert.Equal(t, []string{"a", "", "c"}, fields)
	})
}

func TestSplitLines(t *testing.T) {
	t.Run("Drops Blank Lines", func(t *testing.T) {
		lines := SplitLines("header\n\nrow1\n   \nrow2\n")
		assert.Equal(t, []string{"header", "row1", "row2"}, lines)
	})

	t.Run("Handles CRLF", func(t *testing.T) {
		lines := SplitLines("header\r\nrow1\r\n")
		assert.Equal(t, []string{"header", "row1"}, lines)
	})
}

func TestField(t *testing.T) {
	cols := []string{"a", "b"}
	assert.Equal(t, "b", Field(cols, 1))
	assert.Equal(t, "", Field(cols, 5))
	assert.Equal(t, "", Field(cols, -1))
}
