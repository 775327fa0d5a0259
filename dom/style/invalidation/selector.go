package invalidation

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

type hintKind uint8

const (
	idHint hintKind = iota
	classHint
	localNameHint
)

func (k hintKind) String() string {
	switch k {
	case idHint:
		return "id"
	case classHint:
		return "class"
	}
	return "local-name"
}

// hint names an element property which has to be present for a selector
// to match.
type hint struct {
	kind hintKind
	name string
}

type tokens []*scanner.Token

// scan tokenizes a selector group, dropping comments. Scanning stops at
// the first error.
func scan(input string) tokens {
	var toks tokens
	s := scanner.New(input)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return toks
		case scanner.TokenComment:
			continue
		}
		toks = append(toks, tok)
	}
}

func (toks tokens) String() string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.Value)
	}
	return b.String()
}

func (toks tokens) trim() tokens {
	for len(toks) > 0 && toks[0].Type == scanner.TokenS {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Type == scanner.TokenS {
		toks = toks[:len(toks)-1]
	}
	return toks
}

func isChar(tok *scanner.Token, chars string) bool {
	return tok.Type == scanner.TokenChar && strings.Contains(chars, tok.Value)
}

// nesting returns +1 for tokens opening a block, -1 for tokens closing one.
func nesting(tok *scanner.Token) int {
	switch {
	case tok.Type == scanner.TokenFunction, isChar(tok, "(["):
		return 1
	case isChar(tok, ")]"):
		return -1
	}
	return 0
}

// splitSelectorList splits a selector group at top-level commas.
func splitSelectorList(group string) []tokens {
	var sels []tokens
	toks := scan(group)
	depth, start := 0, 0
	for i, tok := range toks {
		depth += nesting(tok)
		if depth == 0 && isChar(tok, ",") {
			sels = append(sels, toks[start:i].trim())
			start = i + 1
		}
	}
	return append(sels, toks[start:].trim())
}

// rightmostCompound returns the compound selector following the last
// combinator of a complex selector.
func rightmostCompound(sel tokens) tokens {
	sel = sel.trim()
	depth, start := 0, 0
	for i, tok := range sel {
		depth += nesting(tok)
		if depth == 0 && (tok.Type == scanner.TokenS || isChar(tok, ">+~")) {
			start = i + 1
		}
	}
	return sel[start:]
}

// hintFor finds the best hint in a compound selector. IDs are preferred
// over classes, which are preferred over element names. If the compound
// selector carries none of them, hintFor returns false.
func hintFor(compound tokens) (hint, bool) {
	var class, local string
	depth := 0
	for i, tok := range compound {
		if d := nesting(tok); d != 0 || depth > 0 {
			depth += d
			continue
		}
		switch {
		case tok.Type == scanner.TokenHash:
			return hint{kind: idHint, name: unescape(tok.Value[1:])}, true
		case isChar(tok, ".") && i+1 < len(compound) && compound[i+1].Type == scanner.TokenIdent:
			if class == "" {
				class = unescape(compound[i+1].Value)
			}
		case tok.Type == scanner.TokenIdent && i == 0:
			local = unescape(tok.Value)
		case isChar(tok, "|") && i == 1 && i+1 < len(compound) && compound[i+1].Type == scanner.TokenIdent:
			local = unescape(compound[i+1].Value) // ns|name
		}
	}
	switch {
	case class != "":
		return hint{kind: classHint, name: class}, true
	case local != "":
		return hint{kind: localNameHint, name: strings.ToLower(local)}, true
	}
	return hint{}, false
}

// unescape resolves CSS escapes in an identifier, e.g. `md\:flex` or
// `\31 0`, as they are written in stylesheets but not in documents.
func unescape(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}
	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		if ident[i] != '\\' || i+1 == len(ident) {
			b.WriteByte(ident[i])
			continue
		}
		i++
		j := i
		for j < len(ident) && j-i < 6 && isHexDigit(ident[j]) {
			j++
		}
		if j == i { // escaped literal character
			b.WriteByte(ident[i])
			continue
		}
		code, _ := strconv.ParseUint(ident[i:j], 16, 32)
		if code == 0 || code > 0x10FFFF || (code >= 0xD800 && code <= 0xDFFF) {
			code = 0xFFFD
		}
		b.WriteRune(rune(code))
		if j < len(ident) && strings.IndexByte(" \t\n\f", ident[j]) >= 0 {
			j++ // white space terminating a hex escape
		}
		i = j - 1
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c|0x20 >= 'a' && c|0x20 <= 'f')
}
