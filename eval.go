package main

import (
	"errors"
	"math"
	"strings"
)

var errDivisionByZero = errors.New("division by zero")

//
// An operator writes its result into the target's slot.  Operands are
// read through the same slot, whatever kind they were declared with
//

type binaryFunc func(dst *value, l, r value) error

type unaryFunc func(dst *value, v value)

//
// The operator x kind matrix.  Columns are indexed by kind; a nil
// entry means the operator does not apply to that kind
//

var binaryOps = map[string][kindCount]binaryFunc{
	"+": {
		func(d *value, l, r value) error { d.i = l.i + r.i; return nil },
		func(d *value, l, r value) error { d.f = l.f + r.f; return nil },
		func(d *value, l, r value) error { d.c = l.c + r.c; return nil },
		func(d *value, l, r value) error { d.s = l.s + r.s; return nil },
	},
	"-": {
		func(d *value, l, r value) error { d.i = l.i - r.i; return nil },
		func(d *value, l, r value) error { d.f = l.f - r.f; return nil },
		func(d *value, l, r value) error { d.c = l.c - r.c; return nil },
		func(d *value, l, r value) error { d.s = stripAll(l.s, r.s); return nil },
	},
	"*": {
		func(d *value, l, r value) error { d.i = l.i * r.i; return nil },
		func(d *value, l, r value) error { d.f = l.f * r.f; return nil },
		func(d *value, l, r value) error { d.c = l.c * r.c; return nil },
		nil,
	},
	"/": {
		func(d *value, l, r value) error {
			if r.i == 0 {
				return errDivisionByZero
			}
			d.i = l.i / r.i
			return nil
		},
		func(d *value, l, r value) error { d.f = l.f / r.f; return nil },
		func(d *value, l, r value) error {
			if r.c == 0 {
				return errDivisionByZero
			}
			d.c = l.c / r.c
			return nil
		},
		nil,
	},
	"%": {
		func(d *value, l, r value) error {
			if r.i == 0 {
				return errDivisionByZero
			}
			d.i = l.i % r.i
			return nil
		},
		func(d *value, l, r value) error {
			d.f = float32(math.Mod(float64(l.f), float64(r.f)))
			return nil
		},
		func(d *value, l, r value) error {
			if r.c == 0 {
				return errDivisionByZero
			}
			d.c = l.c % r.c
			return nil
		},
		nil,
	},
	"^": {
		func(d *value, l, r value) error {
			d.i = int32(math.Pow(float64(l.i), float64(r.i)))
			return nil
		},
		func(d *value, l, r value) error {
			d.f = float32(math.Pow(float64(l.f), float64(r.f)))
			return nil
		},
		func(d *value, l, r value) error {
			d.c = byte(int64(math.Pow(float64(l.c), float64(r.c))))
			return nil
		},
		nil,
	},
	"&": {
		func(d *value, l, r value) error { d.i = boolToInt32(l.i != 0 && r.i != 0); return nil },
		func(d *value, l, r value) error { d.f = boolToFloat32(l.f != 0 && r.f != 0); return nil },
		func(d *value, l, r value) error { d.c = boolToByte(l.c != 0 && r.c != 0); return nil },
		nil,
	},
	"|": {
		func(d *value, l, r value) error { d.i = boolToInt32(l.i != 0 || r.i != 0); return nil },
		func(d *value, l, r value) error { d.f = boolToFloat32(l.f != 0 || r.f != 0); return nil },
		func(d *value, l, r value) error { d.c = boolToByte(l.c != 0 || r.c != 0); return nil },
		nil,
	},
}

var notOps = [kindCount]unaryFunc{
	func(d *value, v value) { d.i = boolToInt32(v.i == 0) },
	func(d *value, v value) { d.f = boolToFloat32(v.f == 0) },
	func(d *value, v value) { d.c = boolToByte(v.c == 0) },
	nil,
}

//
// How the complaint about an unsupported operator reads
//

var opVerbs = map[string]string{
	"!": "noting",
	"+": "adding",
	"-": "subtracting",
	"*": "multiplying",
	"/": "dividing",
	"%": "modulating",
	"^": "exponentiating",
	"&": "anding",
	"|": "oring",
}

//
// Evaluate 'target = ...' where target resolved to loc.  Shapes are
// tried in order: plain copy, '!' negation, then the binary
// operators.  Whatever happens, the target keeps its kind and, on any
// diagnostic, its previous value
//

func (r *run) evaluate(loc int, tokens []string) *diagnostic {

	target := r.vars.get(loc)
	k := target.kind

	switch {
	case len(tokens) == 3:
		src, d := r.operand(tokens[2])
		if d != nil {
			return d
		}

		nval := target.value
		nval.setSlot(k, src)
		r.vars.set(loc, nval)

	case len(tokens) >= 4 && tokens[2] == "!":
		src, d := r.operand(tokens[3])
		if d != nil {
			return d
		}

		op := notOps[k]
		if op == nil {
			return newDiagnostic(EUNSUPPORTED, opVerbs["!"])
		}

		nval := target.value
		op(&nval, src)
		r.vars.set(loc, nval)

	case len(tokens) >= 5 && isBinaryOp(tokens[3]):
		return r.evaluateBinary(loc, tokens[3], tokens[2], tokens[4])

	default:
		return newDiagnostic(EWDYM)
	}

	return nil
}

func (r *run) evaluateBinary(loc int, opName, lname, rname string) *diagnostic {

	target := r.vars.get(loc)
	k := target.kind

	//
	// Both operands are resolved before anything else, and a missing
	// left operand is reported ahead of a missing right one
	//

	left, d := r.operand(lname)
	if d != nil {
		return d
	}

	right, d := r.operand(rname)
	if d != nil {
		return d
	}

	op := binaryOps[opName][k]
	if op == nil {
		return newDiagnostic(EUNSUPPORTED, opVerbs[opName])
	}

	nval := target.value

	if err := op(&nval, left, right); err != nil {
		if errors.Is(err, errDivisionByZero) {
			return newDiagnostic(EDIVISIONBYZERO, paint(colorRedSeq, rname))
		}
		return newDiagnostic("%s", err.Error())
	}

	r.vars.set(loc, nval)

	return nil
}

func isBinaryOp(name string) bool {

	_, ok := binaryOps[name]

	return ok
}

func (r *run) operand(name string) (value, *diagnostic) {

	loc := r.vars.find(name)
	if loc == notFound {
		d := newDiagnostic(EOPERANDMISSING, paint(colorRedSeq, name))
		return value{}, d.suggest(name, r.vars.names())
	}

	return r.vars.get(loc).value, nil
}

//
// "banana" - "an" is "ba": every non-overlapping occurrence goes
//

func stripAll(s, sub string) string {

	if sub == "" {
		return s
	}

	return strings.ReplaceAll(s, sub, "")
}

func boolToInt32(b bool) int32 {

	if b {
		return 1
	}

	return 0
}

func boolToFloat32(b bool) float32 {

	if b {
		return 1
	}

	return 0
}

func boolToByte(b bool) byte {

	if b {
		return 1
	}

	return 0
}
