package main

//
// The variable store is a plain ordered slice.  Names are not unique
// at the storage level: insert never checks, declare does.  Lookups
// scan the whole slice and the LAST match wins, so with duplicates
// present, deleting one copy exposes the previous one
//

type symtab struct {
	vars []variable
}

//
// A freshly declared char holds a blank, not NUL
//

func zeroValue() value {

	return value{c: ' '}
}

func (st *symtab) find(name string) int {

	loc := notFound

	for i := range st.vars {
		if st.vars[i].name == name {
			loc = i
		}
	}

	return loc
}

//
// declare refuses a name that already resolves
//

func (st *symtab) declare(name string, k kind, val value) (int, bool) {

	if st.find(name) != notFound {
		return notFound, false
	}

	return st.insert(variable{name: name, kind: k, value: val}), true
}

func (st *symtab) insert(v variable) int {

	st.vars = append(st.vars, v)

	return len(st.vars) - 1
}

func (st *symtab) get(loc int) *variable {

	return &st.vars[loc]
}

//
// Store into the slot selected by the variable's own kind
//

func (st *symtab) set(loc int, val value) {

	v := &st.vars[loc]

	traceVar(v, v.value, val)

	v.value = val
}

func (st *symtab) remove(loc int) {

	st.vars = append(st.vars[:loc], st.vars[loc+1:]...)
}

func (st *symtab) clear() {

	st.vars = nil
}

func (st *symtab) len() int {

	return len(st.vars)
}

func (st *symtab) names() []string {

	names := make([]string, 0, len(st.vars))

	for i := range st.vars {
		names = append(names, st.vars[i].name)
	}

	return names
}

//
// Copy the slot of kind k from src into dst, leaving dst's other
// slots alone
//

func (dst *value) setSlot(k kind, src value) {

	switch k {
	default:
		unexpectedKindError(k)

	case kindInt:
		dst.i = src.i

	case kindFloat:
		dst.f = src.f

	case kindChar:
		dst.c = src.c

	case kindString:
		dst.s = src.s
	}
}

func traceVar(v *variable, oval, nval value) {

	if e := g.log.Trace(); e.Enabled() {
		e.Str("variable", v.name).
			Str("kind", v.kind.String()).
			Str("from", formatValue(v.kind, oval)).
			Str("to", formatValue(v.kind, nval)).
			Msg("variable changed")
	}
}
