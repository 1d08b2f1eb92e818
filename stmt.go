package main

//
// Statement keywords.  Every statement has a plain spelling and one
// or more synonyms; the declaration keywords also carry the kind they
// declare
//

type stmtKind int

const (
	stmtNone stmtKind = iota
	stmtDeclare
	stmtCall
	stmtGoto
	stmtJmp
	stmtReturn
	stmtScan
	stmtPrint
	stmtDelete
	stmtBranch
	stmtExists
	stmtExit
)

type keyword struct {
	stmt stmtKind
	kind kind
}

var keywordMap = map[string]keyword{
	"int":                 {stmtDeclare, kindInt},
	"whole_number":        {stmtDeclare, kindInt},
	"float":               {stmtDeclare, kindFloat},
	"fake_or_real_number": {stmtDeclare, kindFloat},
	"char":                {stmtDeclare, kindChar},
	"idk_ascii_character": {stmtDeclare, kindChar},
	"string":              {stmtDeclare, kindString},
	"letters":             {stmtDeclare, kindString},
	"call":                {stmt: stmtCall},
	"literally_just_call": {stmt: stmtCall},
	"goto":                {stmt: stmtGoto},
	"literally_just_go":   {stmt: stmtGoto},
	"jmp":                 {stmt: stmtJmp},
	"return":              {stmt: stmtReturn},
	"goback":              {stmt: stmtReturn},
	"scan":                {stmt: stmtScan},
	"beg":                 {stmt: stmtScan},
	"print":               {stmt: stmtPrint},
	"seg":                 {stmt: stmtPrint},
	"delete":              {stmt: stmtDelete},
	"obliterate":          {stmt: stmtDelete},
	"explode":             {stmt: stmtDelete},
	"branch":              {stmt: stmtBranch},
	"exists":              {stmt: stmtExists},
	"exit":                {stmt: stmtExit},
	"escape_the_torture":  {stmt: stmtExit},
}

//
// Minimum number of tokens, keyword included, a statement needs
//

var minTokens = map[stmtKind]int{
	stmtDeclare: 2,
	stmtCall:    2,
	stmtGoto:    2,
	stmtJmp:     2,
	stmtReturn:  1,
	stmtScan:    2,
	stmtPrint:   2,
	stmtDelete:  2,
	stmtBranch:  3,
	stmtExists:  3,
	stmtExit:    1,
}

func lookupKeyword(token string) (keyword, bool) {

	kw, ok := keywordMap[token]

	return kw, ok
}
