// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmns82839-rgb/Matrices/matrix"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{3, 2, "3"},
		{10, 2, "10"},
		{100, 2, "100"},
		{2.5, 2, "2.5"},
		{2.25, 2, "2.25"},
		{1.005, 2, "1"},
		{0.004, 2, "0"},
		{0, 2, "0"},
		{math.Copysign(0, -1), 2, "0"},
		{-0.001, 2, "-0"},
		{-1.5, 2, "-1.5"},
		{1.23456, 4, "1.2346"},
		{19, 4, "19"},
		{0.1 + 0.2, 4, "0.3"},
		{7, 0, "7"},
		{0.125, 2, "0.13"},
		{0.625, 2, "0.63"},
		{-0.125, 2, "-0.13"},
		{0.375, 2, "0.38"},
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{1.00005, 4, "1.0001"},
		{0.3125, 3, "0.313"},
		{1e21, 2, "1e+21"},
		{-2.5e22, 4, "-2.5e+22"},
		{9.99e20, 2, "999000000000000000000"},
		{math.NaN(), 2, "NaN"},
		{math.Inf(1), 2, "Infinity"},
		{math.Inf(-1), 4, "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matrix.FormatFixed(tt.v, tt.decimals), "FormatFixed(%v, %d)", tt.v, tt.decimals)
	}
}

func TestFormatRaw(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		v    float64
		want string
	}{
		{3, "3"},
		{-4, "-4"},
		{0.5, "0.5"},
		{a + b, "0.30000000000000004"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{1.5e-10, "1.5e-10"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-2.5e22, "-2.5e+22"},
		{math.Copysign(0, -1), "0"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matrix.FormatRaw(tt.v), "FormatRaw(%v)", tt.v)
	}
}
