package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		k    kind
		v    value
		want string
	}{
		{kindInt, value{i: -5}, "-5"},
		{kindInt, value{i: math.MaxInt32}, "2147483647"},
		{kindFloat, value{f: 2.5}, "2.5"},
		{kindFloat, value{f: 0.1}, "0.1"},
		{kindFloat, value{f: 3.14159265}, "3.14159"},
		{kindFloat, value{f: 1e6}, "1e+06"},
		{kindFloat, value{f: 123456}, "123456"},
		{kindFloat, value{f: 0.0001}, "0.0001"},
		{kindFloat, value{f: 0}, "0"},
		{kindChar, value{c: 'A'}, "A"},
		{kindChar, value{c: ' '}, " "},
		{kindString, value{s: "a\nb"}, "a\nb"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.k, tt.v), "%s %+v", tt.k, tt.v)
	}
}

func TestFormatFloatSpecials(t *testing.T) {
	assert.Equal(t, "inf", formatFloat(float32(math.Inf(1))))
	assert.Equal(t, "-inf", formatFloat(float32(math.Inf(-1))))
	assert.Equal(t, "nan", formatFloat(float32(math.NaN())))
}

func TestFormatOnlyLooksAtOwnSlot(t *testing.T) {
	v := value{i: 1, f: 2, c: 'c', s: "s"}

	assert.Equal(t, "1", formatValue(kindInt, v))
	assert.Equal(t, "2", formatValue(kindFloat, v))
	assert.Equal(t, "c", formatValue(kindChar, v))
	assert.Equal(t, "s", formatValue(kindString, v))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", kindInt.String())
	assert.Equal(t, "string", kindString.String())
	assert.Equal(t, "unknown", kindCount.String())
}
