package generate

import (
	"fmt"
	"strconv"
)

// LabelFn renders the label of the idx-th object or attribute.
// It must be pure: the same idx always yields the same label.
type LabelFn func(idx int) string

// DecimalLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixLabelFn returns prefix + decimal index, e.g. "g0", "g1".
// The returned function panics if idx < 0.
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixLabelFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnLabelFn returns spreadsheet-style column names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
