package main

//
// The lexer has no notion of keywords, numbers or operators.  It only
// splits a line into runs.  A run of identifier characters is one
// token, every other non-blank character is a token of its own, and a
// double-quoted literal is one token with its escapes decoded.  '#'
// outside a literal ends the line
//

func tokenize(line string) []string {

	var tokens []string
	var buf []byte

	if len(line) == 0 {
		return tokens
	}

	flush := func() {
		if len(buf) != 0 {
			tokens = append(tokens, string(buf))
			buf = buf[:0]
		}
	}

	isID := isIdentChar(line[0])

	for i := 0; i < len(line); i++ {
		ch := line[i]

		switch {
		case ch == '"':
			flush()

			for i++; i < len(line) && line[i] != '"'; i++ {
				if line[i] == '\\' && i+1 < len(line) {
					i++
					buf = append(buf, decodeEscape(line[i]))
				} else {
					buf = append(buf, line[i])
				}
			}

			//
			// An empty literal is still a token
			//

			tokens = append(tokens, string(buf))
			buf = buf[:0]

		case ch == '\\':
			if i+1 < len(line) {
				i++
				buf = append(buf, decodeEscape(line[i]))
			} else {
				buf = append(buf, ch)
			}
			isID = true

		case ch == '#':
			flush()
			return tokens

		case ch == ' ' || ch == '\t' || ch == '\n':
			flush()

		default:
			id := isIdentChar(ch)

			if id != isID {
				isID = id
				flush()
			} else if !id {
				//
				// Operators never merge
				//

				flush()
			}

			buf = append(buf, ch)
		}
	}

	flush()

	return tokens
}

func isIdentChar(ch byte) bool {

	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch == '_' || ch == '.'
}

func decodeEscape(ch byte) byte {

	switch ch {
	default:
		return ch

	case 'n':
		return '\n'

	case 't':
		return '\t'
	}
}
