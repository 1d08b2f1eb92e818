package main

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

var errStepLimit = errors.New("step limit exceeded")

func newRun(src source, rep reporter, con console) *run {

	id := uuid.NewString()

	return &run{
		id:               id,
		filename:         src.filename,
		lines:            src.lines,
		rep:              rep,
		con:              con,
		log:              g.log.With().Str("run", id).Str("file", src.filename).Logger(),
		legacyTruthiness: g.cfg.LegacyTruthiness,
		traceLines:       g.cfg.Debug,
	}
}

//
// Drive the file from line 0 until the program counter falls off
// either end, or a statement stops the file.  A statement that
// assigns the program counter sets r.jumped, and the loop then leaves
// the counter alone; everything else advances by one.  Self-jumps and
// backward jumps are fine, so a program may well never end: maxSteps
// (0 means no limit) bounds the number of executed statements
//

func (r *run) execute() error {

	r.log.Debug().Int("lines", len(r.lines)).Msg("run started")

	for r.status == statusRunning {
		if r.pc < 0 || r.pc >= len(r.lines) {
			r.status = statusFinished
			break
		}

		if checkInterrupts() {
			r.con.write("\n" + fmt.Sprintf(EINTERRUPTED, r.pc+1) + "\n")
			r.status = statusInterrupted
			break
		}

		if r.maxSteps > 0 && r.numStatements >= r.maxSteps {
			r.status = statusStepLimit
			break
		}

		line := r.lines[r.pc]

		if r.traceLines {
			r.traceLine(line)
		}

		tokens := tokenize(line)

		r.jumped = false

		if len(tokens) != 0 {
			cur := r.pc

			r.numStatements++

			if d := r.executeStmt(tokens); d != nil {
				r.rep.report(cur, d.msg)

				if d.fatal {
					if q, ok := r.rep.(quitter); ok {
						q.quit()
					}
					r.status = statusAborted
				}
			}
		}

		if !r.jumped {
			r.pc++
		}
	}

	r.log.Debug().
		Str("status", r.status.String()).
		Int64("statements", r.numStatements).
		Msg("run stopped")

	if r.status == statusStepLimit {
		return errStepLimit
	}

	return nil
}

//
// Print the source line about to run, right-aligning the line number
// to the width of the largest one
//

func (r *run) traceLine(line string) {

	width := int(math.Log10(float64(len(r.lines)))) + 1

	r.con.write(fmt.Sprintf("%s: # %*d : %s\n",
		paint(colorGreenSeq, r.filename), width, r.pc+1, line))
}

//
// Run one statement.  A Go runtime fault while executing it (an
// interpreter bug, not a user error) is logged and the statement is
// treated as a no-op, so the rest of the file still runs.  Our own
// interpreterError panics are passed on upstream
//

func (r *run) executeStmt(tokens []string) (d *diagnostic) {

	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(runtime.Error); !ok {
				panic(e)
			}

			r.log.Debug().
				Int("line", r.pc+1).
				Str("error", fmt.Sprint(e)).
				Msg("Invalid syntax or smth")

			d = nil
		}
	}()

	return r.executeStmtInternal(tokens)
}

func (r *run) executeStmtInternal(tokens []string) *diagnostic {

	if e := r.log.Debug(); e.Enabled() {
		e.Int("line", r.pc+1).Strs("tokens", tokens).Msg("tokens")
	}

	kw, ok := lookupKeyword(tokens[0])
	if !ok {
		return r.executeBare(tokens)
	}

	if len(tokens) < minTokens[kw.stmt] {
		return newDiagnostic(EINCOMPLETE, paint(colorRedSeq, tokens[0]))
	}

	switch kw.stmt {
	default:
		fatalError("Unexpected statement %d", int(kw.stmt))

	case stmtDeclare:
		return r.executeDeclare(kw.kind, tokens)

	case stmtCall:
		return r.executeCall(tokens[1])

	case stmtGoto:
		return r.executeGoto(tokens[1])

	case stmtJmp:
		r.executeJmp(tokens[1])

	case stmtReturn:
		return r.executeReturn()

	case stmtScan:
		return r.executeScan(tokens[1])

	case stmtPrint:
		return r.executePrint(tokens[1])

	case stmtDelete:
		return r.executeDelete(tokens[1])

	case stmtBranch:
		return r.executeBranch(tokens[1], tokens[2])

	case stmtExists:
		return r.executeExists(tokens[1], tokens[2])

	case stmtExit:
		r.executeExit()
	}

	return nil
}

//
// A line that does not start with a keyword.  Label lines are inert;
// anything else must be an assignment to an existing variable.  Using
// a name that was never declared is the one error that abandons the
// file
//

func (r *run) executeBare(tokens []string) *diagnostic {

	if len(tokens) > 1 && tokens[1] == labelDelim {
		return nil
	}

	loc := r.vars.find(tokens[0])
	if loc == notFound {
		name := paint(colorRedSeq+colorBoldSeq+colorUnderlineSeq, tokens[0])
		return newFatalDiagnostic(ENEVEREXISTED, name)
	}

	if len(tokens) < 2 || tokens[1] != assignDelim {
		return newDiagnostic(EWDYM)
	}

	return r.evaluate(loc, tokens)
}

//
// 'int x', 'int x = 5' or 'int x = y'.  An existing variable on the
// right wins over a literal of the same spelling, and only its slot
// of the declared kind is copied
//

func (r *run) executeDeclare(k kind, tokens []string) *diagnostic {

	name := tokens[1]

	if r.vars.find(name) != notFound {
		return newDiagnostic(EALREADYEXISTS, paint(colorRedSeq, name))
	}

	val := zeroValue()

	if len(tokens) > 3 && tokens[2] == assignDelim {
		if loc := r.vars.find(tokens[3]); loc != notFound {
			val.setSlot(k, r.vars.get(loc).value)
		} else {
			val.setSlot(k, parseLiteral(k, tokens[3]))
		}
	}

	r.vars.declare(name, k, val)

	r.log.Debug().
		Str("name", name).
		Str("kind", k.String()).
		Str("value", formatValue(k, val)).
		Msg("declared")

	return nil
}

func (r *run) executeCall(label string) *diagnostic {

	target := findLabel(r.lines, label)
	if target == notFound {
		return r.labelMissing(ELABELNOTFOUND, label)
	}

	r.callStack = append(r.callStack, callFrame{label: label, origin: r.pc})

	r.jump(target, "call", label)

	return nil
}

func (r *run) executeGoto(label string) *diagnostic {

	target := findLabel(r.lines, label)
	if target == notFound {
		return r.labelMissing(ELABELNOTFOUND, label)
	}

	r.jump(target, "goto", label)

	return nil
}

//
// jmp takes a raw line index, no label lookup
//

func (r *run) executeJmp(arg string) {

	r.jump(int(parseIntLiteral(arg)), "jmp", arg)
}

func (r *run) executeReturn() *diagnostic {

	if len(r.callStack) == 0 {
		return newDiagnostic(ERETURNEMPTY)
	}

	frame := r.callStack[len(r.callStack)-1]
	r.callStack = r.callStack[:len(r.callStack)-1]

	r.jump(frame.origin+1, "return", frame.label)

	return nil
}

//
// Numbers and chars read one whitespace-delimited token, strings read
// whatever is left of the current input line.  Nothing to read leaves
// the kind's zero in the variable
//

func (r *run) executeScan(name string) *diagnostic {

	loc := r.vars.find(name)
	if loc == notFound {
		return r.variableMissing(ESCANMISSING, name)
	}

	v := r.vars.get(loc)
	nval := v.value

	var input string
	var err error

	if v.kind == kindString {
		input, err = r.con.readLine()
	} else {
		input, err = r.con.readToken()
	}

	if err != nil {
		r.log.Debug().Err(err).Str("name", name).Msg("scan read failed")
		input = ""
	}

	nval.setSlot(v.kind, parseLiteral(v.kind, input))

	r.vars.set(loc, nval)

	return nil
}

func (r *run) executePrint(name string) *diagnostic {

	loc := r.vars.find(name)
	if loc == notFound {
		return r.variableMissing(EPRINTMISSING, name)
	}

	v := r.vars.get(loc)

	r.con.write(formatValue(v.kind, v.value))

	return nil
}

func (r *run) executeDelete(name string) *diagnostic {

	loc := r.vars.find(name)
	if loc == notFound {
		return r.variableMissing(EDELETEMISSING, name)
	}

	r.vars.remove(loc)

	return nil
}

func (r *run) executeBranch(name, label string) *diagnostic {

	loc := r.vars.find(name)
	if loc == notFound {
		return r.variableMissing(EBRANCHMISSING, name)
	}

	if !truthy(r.vars.get(loc), r.legacyTruthiness) {
		return nil
	}

	target := findLabel(r.lines, label)
	if target == notFound {
		return r.labelMissing(EBRANCHLABEL, label)
	}

	r.jump(target, "branch", label)

	return nil
}

//
// exists only cares whether the name resolves.  An absent variable is
// not an error here
//

func (r *run) executeExists(name, label string) *diagnostic {

	if r.vars.find(name) == notFound {
		return nil
	}

	target := findLabel(r.lines, label)
	if target == notFound {
		return r.labelMissing(EBRANCHLABEL, label)
	}

	r.jump(target, "exists", label)

	return nil
}

func (r *run) executeExit() {

	r.vars.clear()

	r.status = statusExited
}

func (r *run) jump(target int, how, to string) {

	r.log.Debug().
		Str("via", how).
		Str("to", to).
		Int("from", r.pc+1).
		Int("target", target+1).
		Msg("jump")

	r.pc = target
	r.jumped = true
}

func (r *run) variableMissing(f, name string) *diagnostic {

	d := newDiagnostic(f, paint(colorRedSeq, name))

	return d.suggest(name, r.vars.names())
}

func (r *run) labelMissing(f, label string) *diagnostic {

	d := newDiagnostic(f, paint(colorRedSeq, label))

	return d.suggest(label, labelNames(r.lines))
}

//
// Truthiness per kind.  The legacy table reproduces the historical
// behavior of testing the int slot for floats and chars, which means
// a float never branches and a char always does
//

func truthy(v *variable, legacy bool) bool {

	switch v.kind {
	default:
		unexpectedKindError(v.kind)

	case kindInt:
		return v.value.i != 0

	case kindFloat:
		if legacy {
			return v.value.i != 0
		}
		return v.value.f != 0

	case kindChar:
		if legacy {
			return v.value.i != ' '
		}
		return v.value.c != ' '

	case kindString:
		return v.value.s != ""
	}

	return false
}

//
// Literal conversions.  Like a stream extraction, the longest numeric
// prefix is used and garbage yields zero
//

func parseLiteral(k kind, s string) value {

	var val value

	switch k {
	default:
		unexpectedKindError(k)

	case kindInt:
		val.i = parseIntLiteral(s)

	case kindFloat:
		val.f = parseFloatLiteral(s)

	case kindChar:
		if len(s) != 0 {
			val.c = s[0]
		}

	case kindString:
		val.s = s
	}

	return val
}

func parseIntLiteral(s string) int32 {

	for end := len(s); end > 0; end-- {
		i, err := strconv.ParseInt(s[:end], 10, 32)
		if err == nil {
			return int32(i)
		}

		//
		// Out of range saturates
		//

		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return int32(i)
		}
	}

	return 0
}

func parseFloatLiteral(s string) float32 {

	for end := len(s); end > 0; end-- {
		f, err := strconv.ParseFloat(s[:end], 32)
		if err == nil {
			return float32(f)
		}

		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return float32(f)
		}
	}

	return 0
}
