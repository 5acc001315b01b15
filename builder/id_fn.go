// SPDX-License-Identifier: MIT
// Package: citynav/builder
//
// id_fn.go — city naming schemes: index → unique, stable name.

package builder

import "strconv"

// IDFn maps a zero-based city index to its name.
type IDFn func(idx int) string

// CityIDFn names cities "City1", "City2", …
func CityIDFn(idx int) string {
	return "City" + strconv.Itoa(idx+1)
}

// DefaultIDFn names cities by decimal index: "0", "1", …
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn names cities like spreadsheet columns: "A", …, "Z", "AA", …
func ExcelColumnIDFn(idx int) string {
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}
