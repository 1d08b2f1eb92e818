package main

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

//
// Labels are not stored anywhere.  Every jump re-tokenizes the whole
// file looking for lines of the form 'name : ...'.  The scan never
// stops early: a later duplicate label silently wins
//

func findLabel(lines []string, name string) int {

	loc := notFound

	for j := range lines {
		if label, ok := labelOf(lines[j]); ok && label == name {
			loc = j
		}
	}

	return loc
}

func labelOf(line string) (string, bool) {

	tokens := tokenize(line)

	if len(tokens) < 2 || tokens[1] != labelDelim {
		return "", false
	}

	return tokens[0], true
}

func labelNames(lines []string) []string {

	var names []string

	for j := range lines {
		if label, ok := labelOf(lines[j]); ok {
			names = append(names, label)
		}
	}

	return names
}

//
// Closest candidate for a name that failed to resolve, or "" if
// nothing is remotely similar
//

func suggestName(target string, candidates []string) string {

	if target == "" || len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}

	sort.Sort(ranks)

	return ranks[0].Target
}
