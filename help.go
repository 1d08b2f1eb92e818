package main

import (
	"fmt"
	"io"
	"strings"
)

const helpHeader = "Usage: Just use the program already... pass in the filename ok?\n" +
	"       lastsmall filename" + lsFileSuffix + "\n" +
	"You have some options tho:\n"

const helpFooter = "\nNo you don't report any bugs because I will never resolve them.\n"

func printHelp(w io.Writer, flags []flag) {

	fmt.Fprint(w, helpHeader)

	for i := range flags {
		printFlagHelp(w, &flags[i])
	}

	fmt.Fprint(w, helpFooter)
}

//
// One flag per entry: short names, long names, arguments, then a
// dotted leader out to the description column.  If the names run
// past that column the description starts on a fresh line
//

func printFlagHelp(w io.Writer, f *flag) {

	var names []string

	for _, c := range f.shortNames {
		names = append(names, "-"+paint(colorCyanSeq, string(c)))
	}

	for _, l := range f.longNames {
		names = append(names, "--"+paint(colorCyanSeq, l))
	}

	head := strings.Repeat(" ", flagIndent)
	if len(f.shortNames) == 0 {
		head += "    "
	}

	head += strings.Join(names, ", ")

	for _, a := range f.arguments {
		head += " " + paint(colorGreenSeq, a)
	}

	head += " "

	fmt.Fprint(w, head)

	if used := visibleLen(head); used > descriptionIndent {
		fmt.Fprint(w, "\n"+strings.Repeat(" ", descriptionIndent-1)+".")
	} else {
		fmt.Fprint(w, strings.Repeat(".", descriptionIndent-used))
	}

	for i, line := range wordWrap(f.description, helpWidth-descriptionIndent) {
		if i != 0 {
			fmt.Fprint(w, strings.Repeat(" ", descriptionIndent))
		}
		fmt.Fprintln(w, " "+line)
	}
}

//
// Split s on spaces into lines of at most width bytes.  A word longer
// than the width is cut where it stands
//

func wordWrap(s string, width int) []string {

	var lines []string

	if width <= 0 {
		return []string{s}
	}

	for len(s) > width {
		cut := strings.LastIndexByte(s[:width+1], ' ')
		if cut <= 0 {
			lines = append(lines, s[:width])
			s = s[width:]
			continue
		}

		lines = append(lines, s[:cut])
		s = s[cut+1:]
	}

	if len(s) != 0 {
		lines = append(lines, s)
	}

	return lines
}

//
// Printable width of s, not counting ANSI color sequences
//

func visibleLen(s string) int {

	n := 0
	inEscape := false

	for _, ch := range s {
		switch {
		case ch == '\033':
			inEscape = true

		case inEscape:
			if ch == 'm' {
				inEscape = false
			}

		default:
			n++
		}
	}

	return n
}
