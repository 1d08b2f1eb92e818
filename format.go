package main

import (
	"math"
	"strconv"
)

//
// Render a value the way print shows it.  Floats come out in the
// shortest of fixed or exponent notation with six significant digits
// and no trailing zeros, e.g. 0.1, 3.14159, 1e+06
//

func formatValue(k kind, v value) string {

	var retBuf string

	switch k {
	default:
		unexpectedKindError(k)

	case kindInt:
		retBuf = strconv.FormatInt(int64(v.i), 10)

	case kindFloat:
		retBuf = formatFloat(v.f)

	case kindChar:
		retBuf = string([]byte{v.c})

	case kindString:
		retBuf = v.s
	}

	return retBuf
}

func formatFloat(f float32) string {

	switch {
	case math.IsNaN(float64(f)):
		if math.Signbit(float64(f)) {
			return "-nan"
		}
		return "nan"

	case math.IsInf(float64(f), 1):
		return "inf"

	case math.IsInf(float64(f), -1):
		return "-inf"
	}

	return strconv.FormatFloat(float64(f), 'g', 6, 32)
}
