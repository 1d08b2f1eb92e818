package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/danswartzendruber/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamConsoleTokens(t *testing.T) {
	con := newStreamConsole(strings.NewReader("  1 two\n\n\tthree\r\n"), io.Discard)

	for _, want := range []string{"1", "two", "three"} {
		tok, err := con.readToken()
		require.NoError(t, err)
		assert.Equal(t, want, tok)
	}

	_, err := con.readToken()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamConsoleLineAfterToken(t *testing.T) {
	con := newStreamConsole(strings.NewReader("7 and the rest\nnext line\n7\nlast"), io.Discard)

	tok, err := con.readToken()
	require.NoError(t, err)
	assert.Equal(t, "7", tok)

	line, err := con.readLine()
	require.NoError(t, err)
	assert.Equal(t, " and the rest", line)

	line, err = con.readLine()
	require.NoError(t, err)
	assert.Equal(t, "next line", line)

	_, err = con.readToken()
	require.NoError(t, err)

	line, err = con.readLine()
	require.NoError(t, err)
	assert.Equal(t, "", line, "the token used up its line")

	line, err = con.readLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line, "an unterminated last line still counts")

	_, err = con.readLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamConsoleWriteTracksPartialLine(t *testing.T) {
	var out bytes.Buffer
	con := newStreamConsole(strings.NewReader(""), &out)

	con.write("hello")
	con.write(" there")
	assert.Equal(t, "hello there", con.lastOut)

	con.write("!\nenter: ")
	assert.Equal(t, "enter: ", con.lastOut)
	assert.Equal(t, "hello there!\nenter: ", out.String())
}

func TestStreamConsolePassesPrompt(t *testing.T) {
	var prompts []string

	con := &streamConsole{out: io.Discard}
	con.next = func(prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return "5", nil
	}

	con.write("n? ")
	_, err := con.readToken()
	require.NoError(t, err)

	assert.Equal(t, []string{"n? "}, prompts)
}

type abortingPrompter struct {
	prompts []string
}

func (p *abortingPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return "", liner.ErrPromptAborted
}

func TestLinerConsoleCtrlCInterrupts(t *testing.T) {
	t.Cleanup(func() { g.interrupted.Store(false) })

	p := &abortingPrompter{}
	con := newLinerConsole(p, io.Discard)

	con.write("n? ")
	_, err := con.readToken()

	require.ErrorIs(t, err, liner.ErrPromptAborted)
	assert.Equal(t, []string{"n? "}, p.prompts)
	assert.True(t, checkInterrupts())
}

func TestLinerConsoleCtrlCStopsScan(t *testing.T) {
	t.Cleanup(func() { g.interrupted.Store(false) })

	var out bytes.Buffer

	r := newRun(program(
		"int n",
		"scan n",
		"string s = after",
		"print s",
	), &captureReporter{}, newLinerConsole(&abortingPrompter{}, &out))

	require.NoError(t, r.execute())

	assert.Equal(t, statusInterrupted, r.status)
	assert.Contains(t, out.String(), "Interrupted at line 3")
	assert.NotContains(t, out.String(), "after")
	assert.False(t, g.interrupted.Load(), "the run consumed the interrupt")
}

func TestPaint(t *testing.T) {
	saved := g.color
	t.Cleanup(func() { g.color = saved })

	g.color = false
	assert.Equal(t, "x", paint(colorRedSeq, "x"))

	g.color = true
	assert.Equal(t, colorRedSeq+"x"+colorResetSeq, paint(colorRedSeq, "x"))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "statements", pluralize("statement", 0))
	assert.Equal(t, "statement", pluralize("statement", 1))
	assert.Equal(t, "statements", pluralize("statement", 2))
}

func TestFormatCPUTime(t *testing.T) {
	assert.Equal(t, "00:00:00", formatCPUTime(0))
	assert.Equal(t, "00:00:00", formatCPUTime(999*time.Millisecond))
	assert.Equal(t, "00:01:05", formatCPUTime(cpuSeconds(65)))
	assert.Equal(t, "01:02:05", formatCPUTime(time.Hour+2*time.Minute+5500*time.Millisecond))
}

func TestParseProcStat(t *testing.T) {
	stat := "1234 (my prog) R 1 1234 1234 0 -1 4194304 100 0 0 0 250 50 0 0 20 0 1 0"

	utime, stime := parseProcStat(stat, 100)

	assert.Equal(t, int64(2), utime)
	assert.Equal(t, int64(0), stime)

	utime, stime = parseProcStat("garbage", 100)
	assert.Zero(t, utime)
	assert.Zero(t, stime)
}

func TestPrintStatistics(t *testing.T) {
	var out bytes.Buffer

	printStatistics(&out, startStatistics(), 1)

	assert.Contains(t, out.String(), "CPU Usage: elapsed = 00:00:00")
	assert.Contains(t, out.String(), "1 statement executed\n")
}

func TestCheckInterruptsConsumes(t *testing.T) {
	t.Cleanup(func() { g.interrupted.Store(false) })

	assert.False(t, checkInterrupts())

	g.interrupted.Store(true)
	assert.True(t, checkInterrupts())
	assert.False(t, checkInterrupts())
}
