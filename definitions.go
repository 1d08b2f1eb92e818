package main

import (
	"sync/atomic"

	"github.com/danswartzendruber/liner"
	"github.com/rs/zerolog"
)

//
// Constants
//

const VERSION = "1.0.0"

const lsFileSuffix = ".ls"

const defaultConfigFile = "lastsmall.yaml"

const labelDelim = ":"
const assignDelim = "="

const notFound = -1

const maxLineLen = 1024 * 1024

//
// Help layout
//

const flagIndent = 2
const descriptionIndent = 40
const helpWidth = 80

//
// Decorative timing.  All pauses are in milliseconds and get
// scaled by the frustration multiplier
//

const diagnosePause = 2000
const startupBarTime = 5.0
const diagnoseBarTime = 2.0
const quitBarTime = 5.0
const quitBarWidth = 11 - 7
const barWidthSlack = 7

const randomCrashOdds = 10

const colorRedSeq = "\033[31m"
const colorGreenSeq = "\033[32m"
const colorCyanSeq = "\033[36m"
const colorBoldSeq = "\033[1m"
const colorUnderlineSeq = "\033[4m"
const colorResetSeq = "\033[0m"
const hideCursorSeq = "\033[?25l"
const showCursorSeq = "\033[?25h"

//
// Variable kinds.  The order matters: it indexes the columns of the
// operator matrix in eval.go
//

type kind int

const (
	kindInt kind = iota
	kindFloat
	kindChar
	kindString
	kindCount
)

var kindNames = [kindCount]string{"int", "float", "char", "string"}

func (k kind) String() string {

	if k < 0 || k >= kindCount {
		return "unknown"
	}

	return kindNames[k]
}

//
// Type definitions
//

//
// A value carries one slot per kind.  Only the slot selected by the
// owning variable's kind is meaningful, but operators read operands
// through the *target's* kind, so the other slots keep their zero
// values and are observable
//

type value struct {
	i int32
	f float32
	c byte
	s string
}

type variable struct {
	name  string
	kind  kind
	value value
}

type callFrame struct {
	label  string
	origin int
}

type runStatus int

const (
	statusRunning runStatus = iota
	statusFinished
	statusExited
	statusAborted
	statusInterrupted
	statusStepLimit
)

var runStatusNames = map[runStatus]string{
	statusRunning:     "running",
	statusFinished:    "finished",
	statusExited:      "exited",
	statusAborted:     "aborted",
	statusInterrupted: "interrupted",
	statusStepLimit:   "step limit",
}

func (s runStatus) String() string {

	return runStatusNames[s]
}

//
// This structure contains the state of one file's run.  A fresh one
// is built for every file, nothing carries over
//

type run struct {
	id               string
	filename         string
	lines            []string
	pc               int
	jumped           bool
	vars             symtab
	callStack        []callFrame
	status           runStatus
	numStatements    int64
	maxSteps         int64
	rep              reporter
	con              console
	log              zerolog.Logger
	legacyTruthiness bool
	traceLines       bool
}

type source struct {
	filename string
	lines    []string
}

//
// Global variables
//

var buildTimestampStr string

//
// This structure contains the process-wide settings
//

var g struct {
	cfg         config
	log         zerolog.Logger
	inputLiner  *liner.State
	color       bool
	interrupted atomic.Bool
}
