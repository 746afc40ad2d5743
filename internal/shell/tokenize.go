// Package shell tokenizes and highlights shell command lines for review.
//
// The tokenizer is a single pass over one physical line. It does not understand shell grammar beyond what a reviewer
// needs to scan a command: which word runs, which words are flags, where strings, operators and comments are.
package shell

import "strings"

// TokenClass classifies a token.
type TokenClass int

// Token classes.
const (
	Plain TokenClass = iota
	Command
	Keyword
	Flag
	StringLiteral
	Operator
	Comment
)

func (c TokenClass) String() string {
	switch c {
	case Command:
		return "command"
	case Keyword:
		return "keyword"
	case Flag:
		return "flag"
	case StringLiteral:
		return "string"
	case Operator:
		return "operator"
	case Comment:
		return "comment"
	default:
		return "plain"
	}
}

// Token is a classified slice of the input line.
type Token struct {
	Text  string
	Class TokenClass
}

var keywords = map[string]struct{}{
	"if": {}, "then": {}, "else": {}, "elif": {}, "fi": {},
	"for": {}, "while": {}, "do": {}, "done": {},
	"case": {}, "esac": {}, "in": {}, "function": {},
	"return": {}, "exit": {}, "export": {}, "local": {},
	"set": {}, "unset": {}, "source": {}, "eval": {},
}

// IsKeyword reports whether word is a recognized shell keyword or builtin.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// scanState is the tokenizer state threaded through the scan loop.
type scanState struct {
	line      string
	pos       int
	firstWord bool // the next word starts a new command segment
	tokens    []Token
}

func (s *scanState) emit(end int, class TokenClass) {
	s.tokens = append(s.tokens, Token{Text: s.line[s.pos:end], Class: class})
	s.pos = end
}

// Tokenize splits one line into classified tokens. Concatenating the token texts reproduces line exactly.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return []Token{{Text: line, Class: Comment}}
	}

	s := scanState{firstWord: true, line: line}
	for s.pos < len(line) {
		c := line[s.pos]
		switch {
		case isSpace(c):
			end := s.pos + 1
			for end < len(line) && isSpace(line[end]) {
				end++
			}
			s.emit(end, Plain)
		case c == '"' || c == '\'':
			end := strings.IndexByte(line[s.pos+1:], c)
			if end < 0 {
				end = len(line)
			} else {
				end = s.pos + 1 + end + 1
			}
			s.emit(end, StringLiteral)
			s.firstWord = false
		case c == '&' && s.pos+1 < len(line) && line[s.pos+1] == '&':
			s.emit(s.pos+2, Operator)
			s.firstWord = true
		case isOperator(c):
			s.emit(s.pos+1, Operator)
			s.firstWord = true
		default:
			end := s.pos + 1
			for end < len(line) && !isDelimiter(line, end) {
				end++
			}
			s.emit(end, classifyWord(line[s.pos:end], s.firstWord))
			s.firstWord = false
		}
	}
	return s.tokens
}

func classifyWord(word string, first bool) TokenClass {
	switch {
	case strings.HasPrefix(word, "-"):
		return Flag
	case IsKeyword(word):
		return Keyword
	case first:
		return Command
	default:
		return Plain
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isOperator(c byte) bool {
	switch c {
	case '|', ';', '>', '<':
		return true
	}
	return false
}

// isDelimiter reports whether a word ends before line[i].
func isDelimiter(line string, i int) bool {
	c := line[i]
	if isSpace(c) || isOperator(c) || c == '"' || c == '\'' {
		return true
	}
	return c == '&' && i+1 < len(line) && line[i+1] == '&'
}
