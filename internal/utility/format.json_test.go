// Package utility - Test parse số từ json.Number và string (query param).
package utility

import (
	"encoding/json"
	"testing"
)

func TestP2Int64_CacKieuDauVao(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"json.Number", json.Number("42"), 42},
		{"string query param", "7", 7},
		{"string rỗng", "", 0},
		{"string không phải số", "abc", 0},
		{"int", 5, 5},
		{"int64", int64(9), 9},
		{"float64", float64(3), 3},
		{"nil", nil, 0},
	}
	for _, c := range cases {
		got := P2Int64(c.in)
		if got != c.want {
			t.Errorf("%s: P2Int64(%v) = %d, muốn %d", c.name, c.in, got, c.want)
		}
	}
}

func TestP2Float64_CacKieuDauVao(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"json.Number", json.Number("1.5"), 1.5},
		{"string", "2.25", 2.25},
		{"float64", float64(3.75), 3.75},
		{"nil", nil, 0},
	}
	for _, c := range cases {
		got := P2Float64(c.in)
		if got != c.want {
			t.Errorf("%s: P2Float64(%v) = %v, muốn %v", c.name, c.in, got, c.want)
		}
	}
}
