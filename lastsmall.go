package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/goforj/godump"
	"golang.org/x/term"
)

func main() {

	//
	// Close the liner instance on the way out, to make sure we end up
	// back in normal (cooked) terminal mode
	//

	defer func() {
		cleanupLiner(&g.inputLiner)
	}()

	filenames, ok := processArgs(os.Args[1:], os.Stdout)
	if !ok {
		os.Exit(0)
	}

	if g.cfg.Debug {
		printVersionInfo(os.Stdout)
	}

	go sigHdlr()

	if g.cfg.PointlessTimer {
		msg := "You have to wait 5 seconds for the below pointless progress bar to finish counting"

		fmt.Println(paint(colorRedSeq, msg))

		newProgressBar(os.Stdout).draw(float64(len(msg)-barWidthSlack), startupBarTime)
	}

	if g.cfg.RandomCrash && rand.IntN(randomCrashOdds) == 0 {
		fmt.Println(paint(colorRedSeq, ERANDOMCRASH) + ERANDOMCRASHTRAILER)

		newWitchReporter(os.Stdout, newProgressBar(os.Stdout)).quit()

		return
	}

	if len(filenames) == 0 {
		fmt.Println(paint(colorRedSeq, ENOFILES))
		return
	}

	con := setupConsole()
	rep := newWitchReporter(os.Stdout, newProgressBar(os.Stdout))

	for _, filename := range filenames {
		src, err := readSource(filename)
		if err != nil {
			g.log.Debug().Err(err).Str("file", filename).Msg("unable to read source")
			fmt.Printf(EFILENOTFOUND+"\n", paint(colorRedSeq, filename))
		}

		runFile(src, rep, con)
	}
}

//
// Work out the settings and the list of files.  Returns false if the
// program should stop right here (help was printed)
//

func processArgs(args []string, out io.Writer) ([]string, bool) {

	var filenames []string
	var debugFlag, statsFlag bool

	configPath, explicit := defaultConfigFile, false

	options := parseOptions(args, flags)

	for _, opt := range options {
		switch {
		default:
			fatalError("Unexpected option %q", opt.flag.longNames)

		case opt.flag == nil:
			if opt.unrecognized == "" {
				continue
			}

			if looksLikeFlag(opt.unrecognized) && !fileExists(opt.unrecognized) {
				fmt.Fprintf(out, EUNKNOWNFLAG+"\n", paint(colorRedSeq, opt.unrecognized))
			} else {
				filenames = append(filenames, opt.unrecognized)
			}

		case opt.flag == &flags[flagHelp]:
			g.color = term.IsTerminal(int(os.Stdout.Fd()))
			printHelp(out, flags)
			return nil, false

		case opt.flag == &flags[flagDebug]:
			debugFlag = !debugFlag

		case opt.flag == &flags[flagStats]:
			statsFlag = !statsFlag

		case opt.flag == &flags[flagConfig]:
			if len(opt.arguments) != 0 {
				configPath, explicit = opt.arguments[0], true
			}
		}
	}

	cfg, err := loadConfig(configPath, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	cfg.Debug = cfg.Debug != debugFlag
	cfg.Stats = cfg.Stats != statsFlag

	applyConfig(cfg)

	return filenames, true
}

func applyConfig(cfg config) {

	g.cfg = cfg

	if cfg.Color != nil {
		g.color = *cfg.Color
	} else {
		g.color = term.IsTerminal(int(os.Stdout.Fd()))
	}

	g.log = setupLogger(os.Stderr, cfg.Debug)
}

func fileExists(filename string) bool {

	fi, err := os.Stat(filename)

	return err == nil && fi.Mode().IsRegular()
}

//
// Read a source file into lines.  Line terminators (and a trailing
// '\r') are stripped
//

func readSource(filename string) (source, error) {

	src := source{filename: filename}

	file, err := os.Open(filename)
	if err != nil {
		return src, err
	}
	defer file.Close()

	src.lines, err = readLines(file)

	return src, err
}

func readLines(rd io.Reader) ([]string, error) {

	var lines []string

	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

//
// Run one file with fresh state, then do the debug/statistics
// epilogue
//

func runFile(src source, rep reporter, con console) *run {

	st := startStatistics()

	r := newRun(src, rep, con)
	r.maxSteps = g.cfg.MaxSteps

	call(func() {
		if err := r.execute(); err != nil {
			r.log.Warn().Err(err).Int64("statements", r.numStatements).Msg("run stopped early")
		}
	})

	if g.cfg.Debug {
		godump.Dump(dumpVariables(&r.vars))
	}

	if g.cfg.Stats {
		printStatistics(os.Stdout, st, r.numStatements)
	}

	return r
}

//
// Files run strictly one after another, each with its own state
//

func runAll(sources []source, rep reporter, con console) []*run {

	runs := make([]*run, 0, len(sources))

	for _, src := range sources {
		runs = append(runs, runFile(src, rep, con))
	}

	return runs
}

type dumpedVariable struct {
	Name  string
	Kind  string
	Value string
}

func dumpVariables(st *symtab) []dumpedVariable {

	out := make([]dumpedVariable, 0, st.len())

	for i := 0; i < st.len(); i++ {
		v := st.get(i)
		out = append(out, dumpedVariable{v.name, v.kind.String(), formatValue(v.kind, v.value)})
	}

	return out
}

//
// The first ^C asks the running file to stop at the next line.  If
// the interpreter has not picked that up by the time a second one
// arrives (say, it is blocked reading input), we give up
//

func sigHdlr() {

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, syscall.SIGINT)

	for {
		sig := <-ch

		switch sig {
		default:
			crash(fmt.Sprintf("Unexpected signal %d", sig))

		case syscall.SIGINT:
			if !g.interrupted.CompareAndSwap(false, true) {
				crash("Interrupted")
			}
		}
	}
}

//
// This procedure is called by the panic deferred recovery function.
// Two cases: a fatalError from our own code, where the failing file
// and line were recorded at the panic site, or an internally generated
// Go runtime panic, where we have to walk the stack past
// 'runtime.gopanic' to find the code that actually blew up
//

func decodePanic(e any) {

	switch e := e.(type) {
	default:
		var panicFrame runtime.Frame
		var panicSeen bool
		var panicCount int

		pcs := make([]uintptr, 64)

		frames := runtime.CallersFrames(pcs[:runtime.Callers(1, pcs)])

		for {
			frame, more := frames.Next()

			if frame.Function == "runtime.gopanic" {
				panicSeen = true
				panicCount++
			} else if panicSeen && !strings.HasPrefix(frame.Function, "runtime.") {
				panicFrame = frame
				panicSeen = false
			}

			if !more {
				break
			}
		}

		if panicCount == 0 {
			crash("Unable to locate panic caller")
		}

		fmt.Printf("%v at %s line %d\n", e, filepath.Base(panicFrame.File),
			panicFrame.Line)

		debug.PrintStack()

	case *interpreterError:
		fmt.Printf("%q at %s line %d\n", e.msg, filepath.Base(e.file), e.line)

		debug.PrintStack()
	}
}

//
// Wrapper routine for a function.  We need this so that panic calls
// can be caught and decoded before returning to our caller
//

func call(f func()) {

	defer func() {
		err := recover()
		if err != nil {
			decodePanic(err)
		}
	}()

	f()
}

func printVersionInfo(w io.Writer) {

	fmt.Fprintf(w, "lastsmall version %s - built %s\n",
		VERSION, buildTimestampStr)
}
