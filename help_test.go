package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordWrap(t *testing.T) {
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wordWrap("aaa bbb ccc", 7))
	assert.Equal(t, []string{"short"}, wordWrap("short", 40))
	assert.Equal(t, []string{"abcde", "fgh"}, wordWrap("abcdefgh", 5), "no blank to break on")
	assert.Nil(t, wordWrap("", 10))
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer

	printHelp(&buf, flags)

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, helpHeader))
	assert.True(t, strings.HasSuffix(out, helpFooter))
	assert.Contains(t, out, "  -h, -m, -?, --help, --manual, --man .. Print this help message\n")
	assert.Contains(t, out, "  -d, --debug "+strings.Repeat(".", 26)+" Show each line ran\n")
	assert.Contains(t, out, "  -c, --config file "+strings.Repeat(".", 20)+" Read settings")
}

func TestPrintFlagHelpWraps(t *testing.T) {
	var buf bytes.Buffer

	printFlagHelp(&buf, &flag{
		description: strings.Repeat("word ", 12),
		longNames:   []string{"wordy"},
	})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "      --wordy "), "no short names leaves room for them")
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", descriptionIndent)+" word"))
	for _, l := range lines {
		assert.LessOrEqual(t, visibleLen(l), helpWidth+1)
	}
}

func TestVisibleLen(t *testing.T) {
	assert.Equal(t, 2, visibleLen(colorCyanSeq+"ab"+colorResetSeq))
	assert.Equal(t, 3, visibleLen("abc"))
}
