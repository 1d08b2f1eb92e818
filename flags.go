package main

import (
	"strings"
)

//
// Command line parsing.  Three spellings are accepted: '--name',
// '-abc' (a cluster of one-letter flags) and the DOS-ish '/name' or
// '/x'.  Anything that matches no flag comes back as an option with
// a nil flag and the raw argument in unrecognized, and it is up to
// the caller to decide whether that was a filename or a typo
//

type flag struct {
	description string
	longNames   []string
	shortNames  []byte
	arguments   []string
}

type option struct {
	flag         *flag
	arguments    []string
	unrecognized string
}

type flagStyle int

const (
	flagNone flagStyle = iota
	flagLong
	flagShort
	flagSlash
)

const (
	flagHelp = iota
	flagDebug
	flagStats
	flagConfig
)

var flags = []flag{
	flagHelp: {
		description: "Print this help message",
		longNames:   []string{"help", "manual", "man"},
		shortNames:  []byte{'h', 'm', '?'},
	},
	flagDebug: {
		description: "Show each line ran",
		longNames:   []string{"debug"},
		shortNames:  []byte{'d'},
	},
	flagStats: {
		description: "Print how long the torture took and how many statements it needed",
		longNames:   []string{"stats"},
		shortNames:  []byte{'s'},
	},
	flagConfig: {
		description: "Read settings from a YAML file instead of " + defaultConfigFile,
		longNames:   []string{"config"},
		shortNames:  []byte{'c'},
		arguments:   []string{"file"},
	},
}

func classifyArg(s string) flagStyle {

	switch {
	default:
		return flagNone

	case len(s) > 2 && strings.HasPrefix(s, "--"):
		return flagLong

	case len(s) > 1 && s[0] == '-':
		return flagShort

	case len(s) > 1 && s[0] == '/':
		return flagSlash
	}
}

func parseOptions(args []string, flags []flag) []option {

	var options []option

	for i := 0; i < len(args); i++ {
		arg := args[i]

		//
		// Build an option for f, consuming its arguments from the
		// following command line words
		//

		create := func(f *flag) {
			opt := option{flag: f}

			for range f.arguments {
				if i+1 >= len(args) {
					break
				}
				i++
				opt.arguments = append(opt.arguments, args[i])
			}

			options = append(options, opt)
		}

		switch classifyArg(arg) {
		default:
			options = append(options, option{unrecognized: arg})

		case flagLong:
			if f := findLongFlag(flags, arg[2:]); f != nil {
				create(f)
			} else {
				options = append(options, option{unrecognized: arg})
			}

		case flagShort:
			for _, c := range []byte(arg[1:]) {
				if f := findShortFlag(flags, c); f != nil {
					create(f)
				} else {
					options = append(options, option{unrecognized: "-" + string(c)})
				}
			}

		case flagSlash:
			name := arg[1:]

			f := findLongFlag(flags, name)
			if f == nil && len(name) == 1 {
				f = findShortFlag(flags, name[0])
			}

			if f != nil {
				create(f)
			} else {
				options = append(options, option{unrecognized: arg})
			}
		}
	}

	return options
}

func findLongFlag(flags []flag, name string) *flag {

	for i := range flags {
		for _, l := range flags[i].longNames {
			if l == name {
				return &flags[i]
			}
		}
	}

	return nil
}

func findShortFlag(flags []flag, c byte) *flag {

	for i := range flags {
		for _, s := range flags[i].shortNames {
			if s == c {
				return &flags[i]
			}
		}
	}

	return nil
}

//
// Does an unrecognized argument look like it was meant as a flag?
//

func looksLikeFlag(s string) bool {

	return strings.HasPrefix(s, "-") || strings.HasPrefix(s, "/")
}
