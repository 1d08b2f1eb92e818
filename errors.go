package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

//
// Diagnostic message formats.  Each takes the offending name (already
// colorized) where it has a %s
//

const (
	EALREADYEXISTS      = "Variable %s already exists"
	ELABELNOTFOUND      = "Label %s was not found in the entire file at all... what are you doing??"
	EBRANCHLABEL        = "Label %s was not found in the entire file at all to be branched... like how the heck are you..."
	ERETURNEMPTY        = "You have not gone anywhere before you go back... idiot"
	ESCANMISSING        = "Well how many freaking times do I have to tell you that variable %s does not exist for scanning?? What a jerk..."
	EPRINTMISSING       = "Hell no I am not repeating this again... Variable %s does not exist for printing"
	EDELETEMISSING      = "Damn... Variable %s does not exist for deletion"
	EBRANCHMISSING      = "Oof... Variable %s does not exist for branching"
	EOPERANDMISSING     = "Variable... uff, %s does not exist... yey"
	EUNSUPPORTED        = "What do you mean by %s a string from another string??"
	EWDYM               = "Wdym by that??"
	EINCOMPLETE         = "What do you mean by a lonely %s?? It needs more than that"
	EDIVISIONBYZERO     = "Division by 0, %s is zero"
	ENEVEREXISTED       = "That's it. I am done. Variable %s never existed (or is deleted now) but you decided to use it anyways. I am gone"
	EDIDYOUMEAN         = " (did you mean %s?)"
	EINTERRUPTED        = "Interrupted at line %d"
	EFILENOTFOUND       = "You idiot. You didn't realize that %s does not exist... bruh moment"
	ENOFILES            = "You literally forgot the main thing... really??"
	EUNKNOWNFLAG        = "Idk what the heck are you talking about... What do you mean by %s??"
	ERANDOMCRASH        = "You're too unlucky! The pointless timer just randomly failed!! "
	ERANDOMCRASHTRAILER = "This happens 1/10th of the times. Quitting please don't stop me I shall end my life (process) right now"
)

//
// A diagnostic is what a statement hands back when it could not do
// its job.  Only the fatal ones end the file
//

type diagnostic struct {
	msg   string
	fatal bool
}

func newDiagnostic(f string, args ...any) *diagnostic {

	return &diagnostic{msg: fmt.Sprintf(f, args...)}
}

func newFatalDiagnostic(f string, args ...any) *diagnostic {

	return &diagnostic{msg: fmt.Sprintf(f, args...), fatal: true}
}

//
// Append a "did you mean" hint when something close exists
//

func (d *diagnostic) suggest(target string, candidates []string) *diagnostic {

	if s := suggestName(target, candidates); s != "" {
		d.msg += fmt.Sprintf(EDIDYOUMEAN, paint(colorGreenSeq, s))
	}

	return d
}

//
// The diagnostics sink.  report must always return; it never stops
// the run by itself
//

type reporter interface {
	report(line int, msg string)
}

//
// Reporters that want to make a scene when a file is abandoned
// implement quitter as well
//

type quitter interface {
	quit()
}

//
// The stock reporter.  It takes its time
//

type witchReporter struct {
	out   io.Writer
	bar   *progressBar
	pause func(ms int)
}

func newWitchReporter(out io.Writer, bar *progressBar) *witchReporter {

	return &witchReporter{out: out, bar: bar, pause: pause}
}

func (w *witchReporter) report(line int, msg string) {

	header := fmt.Sprintf("Line #%d has witnessed a witch. Diagnosing...", line+1)

	fmt.Fprintln(w.out, header)

	w.bar.draw(float64(len(header)-barWidthSlack), diagnoseBarTime)

	fmt.Fprint(w.out, "Skill issue. ")
	w.pause(diagnosePause)

	fmt.Fprintln(w.out, strings.TrimSuffix(msg, "\n"))
	w.pause(diagnosePause)

	fmt.Fprintln(w.out, "Eh... whatever I guess...")
	w.pause(diagnosePause)
}

func (w *witchReporter) quit() {

	fmt.Fprintln(w.out, "Quitting...")

	w.bar.draw(quitBarWidth, quitBarTime)
}

//
// Errors raised by the interpreter itself, i.e. bugs.  We find the
// file and line of our caller and panic; the recover wrapper in
// lastsmall.go prints them
//

type interpreterError struct {
	msg  string
	file string
	line int
}

func fatalError(f string, args ...any) {

	msg := strings.TrimRight(fmt.Sprintf(f, args...), "\n")

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		crash("Unable to find caller frame!")
	}

	panic(&interpreterError{msg, file, line})
}

func unexpectedKindError(k kind) {

	fatalError("Unexpected variable kind %d", int(k))
}
