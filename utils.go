package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/danswartzendruber/liner"
	"github.com/tklauser/go-sysconf"
	"golang.org/x/term"
)

//
// The I/O collaborator used by scan and print.  readToken returns the
// next whitespace-delimited word, possibly from a later input line.
// readLine returns whatever is left of the current line; if a
// previous readToken consumed the whole line, that is the empty
// string, exactly like a getline after a stream extraction
//

type console interface {
	readToken() (string, error)
	readLine() (string, error)
	write(s string)
}

type lineSource func(prompt string) (string, error)

type streamConsole struct {
	next    lineSource
	out     io.Writer
	rest    string
	midLine bool
	lastOut string
}

func newStreamConsole(in io.Reader, out io.Writer) *streamConsole {

	br := bufio.NewReader(in)

	next := func(string) (string, error) {
		s, err := br.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || s == "") {
			return "", err
		}

		return strings.TrimRight(s, "\r\n"), nil
	}

	return &streamConsole{next: next, out: out}
}

//
// On a terminal, scan reads through liner.  The partial output line
// is handed to liner as the prompt, so editing redraws it instead of
// wiping it.  A ^C at the prompt counts as an interrupt
//

type prompter interface {
	Prompt(prompt string) (string, error)
}

func newLinerConsole(l prompter, out io.Writer) *streamConsole {

	sc := &streamConsole{out: out}

	sc.next = func(prompt string) (string, error) {
		fmt.Fprint(sc.out, "\r")

		s, err := l.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				g.interrupted.Store(true)
			}
			return "", err
		}

		sc.lastOut = ""

		return s, nil
	}

	return sc
}

func (sc *streamConsole) fill() error {

	s, err := sc.next(sc.lastOut)
	if err != nil {
		return err
	}

	sc.rest = s
	sc.midLine = true

	return nil
}

func (sc *streamConsole) readToken() (string, error) {

	for {
		sc.rest = strings.TrimLeft(sc.rest, " \t\v\f\r")

		if sc.rest != "" {
			break
		}

		if err := sc.fill(); err != nil {
			return "", err
		}
	}

	end := strings.IndexAny(sc.rest, " \t\v\f\r")
	if end < 0 {
		end = len(sc.rest)
	}

	tok := sc.rest[:end]
	sc.rest = sc.rest[end:]

	return tok, nil
}

func (sc *streamConsole) readLine() (string, error) {

	if !sc.midLine {
		if err := sc.fill(); err != nil {
			return "", err
		}
	}

	s := sc.rest

	sc.rest = ""
	sc.midLine = false

	return s, nil
}

func (sc *streamConsole) write(s string) {

	fmt.Fprint(sc.out, s)

	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		sc.lastOut = s[i+1:]
	} else {
		sc.lastOut += s
	}
}

//
// Pick the console for scan/print: liner when we are talking to a
// person, plain buffered streams otherwise
//

func setupConsole() console {

	if interactive() {
		g.inputLiner = setupLiner()
		return newLinerConsole(g.inputLiner, os.Stdout)
	}

	return newStreamConsole(os.Stdin, os.Stdout)
}

func interactive() bool {

	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func setupLiner() *liner.State {

	l := liner.NewLiner()

	l.SetMultiLineMode(false)

	//
	// liner holds the tty in raw mode, so no SIGINT arrives while a
	// prompt is up.  Have it hand ^C back to us instead
	//

	l.SetCtrlCAborts(true)

	return l
}

//
// Restore terminal state.  NB: we cannot call (or cause to be called)
// crash(), as that would recurse
//

func cleanupLiner(linerState **liner.State) {

	if *linerState != nil {
		(*linerState).Close()
		*linerState = nil
	}
}

//
// Wrap s in an ANSI sequence, unless colors are off
//

func paint(seq, s string) string {

	if !g.color {
		return s
	}

	return seq + s + colorResetSeq
}

//
// Every decorative pause goes through here so the frustration
// multiplier applies everywhere
//

func pause(ms int) {

	d := time.Duration(float64(ms)*g.cfg.FrustrationMultiplier) * time.Millisecond

	time.Sleep(d)
}

//
// Check to see if sigHdlr has posted an interrupt, and consume it
//

func checkInterrupts() bool {

	return g.interrupted.CompareAndSwap(true, false)
}

func pluralize(str string, num int64) string {

	//
	// Oddity: 0 is considered plural
	//

	if num != 1 {
		return str + "s"
	}

	return str
}

//
// Run statistics
//

type stats struct {
	elapsed time.Time
	utime   int64
	stime   int64
}

func startStatistics() stats {

	utime, stime := getCPUInfo(1)

	return stats{elapsed: time.Now(), utime: utime, stime: stime}
}

func printStatistics(w io.Writer, st stats, numStatements int64) {

	elapsed := time.Since(st.elapsed)
	utime, stime := getCPUInfo(1)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "CPU Usage: elapsed = %s / user = %s / system = %s\n",
		formatCPUTime(elapsed), formatCPUTime(cpuSeconds(utime-st.utime)),
		formatCPUTime(cpuSeconds(stime-st.stime)))
	fmt.Fprintf(w, "%d %s executed\n", numStatements,
		pluralize("statement", numStatements))
}

//
// hh:mm:ss, truncated to the second
//

func formatCPUTime(d time.Duration) string {

	d = d.Truncate(time.Second)

	h := d / time.Hour
	d -= h * time.Hour

	m := d / time.Minute
	d -= m * time.Minute

	return fmt.Sprintf("%02d:%02d:%02d", int64(h), int64(m), int64(d/time.Second))
}

func cpuSeconds(secs int64) time.Duration {

	return time.Duration(secs) * time.Second
}

//
// User and system CPU seconds of this process, from /proc.  Where
// there is no /proc we report zeros
//

func getCPUInfo(divisor int64) (int64, int64) {

	clktck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || clktck <= 0 {
		return 0, 0
	}

	clktck /= divisor
	if clktck == 0 {
		clktck = 1
	}

	contents, err := os.ReadFile("/proc/self/stat")
	if err != nil {
		return 0, 0
	}

	return parseProcStat(string(contents), clktck)
}

func parseProcStat(contents string, clktck int64) (int64, int64) {

	//
	// The command name in field 2 is parenthesized and may contain
	// blanks, so count fields from the closing paren
	//

	if i := strings.LastIndexByte(contents, ')'); i >= 0 {
		contents = "pid (comm)" + contents[i+1:]
	}

	fields := strings.Fields(contents)
	if len(fields) < 15 {
		return 0, 0
	}

	utime, err := strconv.ParseInt(fields[13], 10, 64)
	if err != nil {
		return 0, 0
	}

	stime, err := strconv.ParseInt(fields[14], 10, 64)
	if err != nil {
		return 0, 0
	}

	return utime / clktck, stime / clktck
}

//
// Something has gone horribly wrong.  Write the message to stderr on
// a dup'ed descriptor (stdout may be redirected), restore the terminal
// and exit
//

func crash(msg string) {

	var w *os.File

	cleanupLiner(&g.inputLiner)

	if msg != "" {
		fd, err := syscall.Dup(int(os.Stderr.Fd()))
		if err == nil {
			w = os.NewFile(uintptr(fd), "stderr on new fd")
		} else {
			w = os.Stderr
		}

		fmt.Fprintln(w, msg)
	}

	os.Exit(1)
}
