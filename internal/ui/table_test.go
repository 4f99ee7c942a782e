package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// KeyValueBlock
// ---------------------------------------------------------------------------

func TestKeyValueBlockContainsTitleAndPairs(t *testing.T) {
	result := KeyValueBlock("Pool Locator", [][2]string{
		{"Address", "0x123456"},
		{"Schema", "ERC20WithData"},
	})
	assert.Contains(t, result, "Pool Locator")
	assert.Contains(t, result, "Address")
	assert.Contains(t, result, "0x123456")
	assert.Contains(t, result, "ERC20WithData")
}

func TestKeyValueBlockEmptyTitle(t *testing.T) {
	result := KeyValueBlock("", [][2]string{{"Key", "Value"}})
	assert.Contains(t, result, "Key")
	assert.Contains(t, result, "Value")
}

func TestKeyValueBlockPreservesOrder(t *testing.T) {
	result := KeyValueBlock("Locator", [][2]string{
		{"Address", "AAA"},
		{"Schema", "BBB"},
		{"Type", "CCC"},
	})
	a, b, c := strings.Index(result, "AAA"), strings.Index(result, "BBB"), strings.Index(result, "CCC")
	require.Greater(t, a, -1)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestKeyValueBlockHasBorder(t *testing.T) {
	result := KeyValueBlock("Bordered", [][2]string{{"Key", "Val"}})
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

func TestTableRender(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "Operation", Width: 10},
		{Title: "Method", Width: 16},
	})
	tbl.AddRow(Row{"mint", "mintWithData"})
	tbl.AddRow(Row{"burn", "burnWithData"})

	result := tbl.Render()
	assert.Contains(t, result, "Operation")
	assert.Contains(t, result, "----------")
	assert.Contains(t, result, "mintWithData")
	assert.Less(t, strings.Index(result, "mint"), strings.Index(result, "burn"))
	assert.Len(t, strings.Split(strings.TrimSuffix(result, "\n"), "\n"), 4)
}

func TestTableRowShorterThanColumns(t *testing.T) {
	tbl := NewTable([]Column{{Title: "A", Width: 5}, {Title: "B", Width: 5}})
	tbl.AddRow(Row{"only"})
	assert.Contains(t, tbl.Render(), "only")
}

func TestTableAutoWidth(t *testing.T) {
	tbl := NewTable([]Column{{Title: "Event"}, {Title: "Sig", Width: 3}})
	tbl.AddRow(Row{"ApprovalForAll", "abcdef"})

	lines := strings.Split(strings.TrimSuffix(tbl.Render(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", len("ApprovalForAll"))+" ---", lines[1])
	assert.Contains(t, lines[2], "ApprovalForAll")
	assert.Contains(t, lines[2], "abc")
	assert.NotContains(t, lines[2], "abcd")
}

func TestKeyValueBlockAlignsKeys(t *testing.T) {
	result := KeyValueBlock("", [][2]string{{"A", "one"}, {"Longer", "two"}})
	assert.Contains(t, result, "A:       one")
	assert.Contains(t, result, "Longer:  two")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "abcde", pad("abcde", 5))
	assert.Equal(t, "abc", pad("abcdef", 3))
	assert.Equal(t, "", pad("x", 0))
}
