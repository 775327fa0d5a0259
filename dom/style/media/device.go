package media

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/tyse/core/dimen"
)

// Device is the context media queries are evaluated in.
type Device struct {
	MediaType     string   // "screen" or "print"
	ViewportWidth dimen.DU // width of the viewport or page area
}

// Screen creates a screen device with a given viewport width.
func Screen(width dimen.DU) *Device {
	return &Device{MediaType: "screen", ViewportWidth: width}
}

// Print creates a print device with a given page width.
func Print(width dimen.DU) *Device {
	return &Device{MediaType: "print", ViewportWidth: width}
}

// Evaluate checks a media query list against the device. The list matches
// if any of its comma-separated queries matches. An empty list matches
// every device.
func (d *Device) Evaluate(mediaList string) bool {
	if strings.TrimSpace(mediaList) == "" {
		return true
	}
	for _, query := range splitQueries(mediaList) {
		if d.evaluateQuery(query) {
			return true
		}
	}
	return false
}

// splitQueries tokenizes a media query list and splits it at commas.
// White space and comments are dropped. A list which cannot be tokenized
// results in a single empty query.
func splitQueries(mediaList string) [][]*scanner.Token {
	var queries [][]*scanner.Token
	var query []*scanner.Token
	s := scanner.New(mediaList)
	for {
		tok := s.Next()
		switch {
		case tok.Type == scanner.TokenError:
			return [][]*scanner.Token{nil}
		case tok.Type == scanner.TokenEOF:
			return append(queries, query)
		case tok.Type == scanner.TokenS, tok.Type == scanner.TokenComment:
			continue
		case tok.Type == scanner.TokenChar && tok.Value == ",":
			queries = append(queries, query)
			query = nil
		default:
			query = append(query, tok)
		}
	}
}

// evaluateQuery evaluates a single query of the form
//
//     [not|only] type [and (feature: value)]*
//     (feature: value) [and (feature: value)]*
//
// Malformed queries do not match, even if negated.
func (d *Device) evaluateQuery(query []*scanner.Token) bool {
	if len(query) == 0 {
		return false
	}
	negate := false
	if isIdent(query[0], "not") {
		negate, query = true, query[1:]
	} else if isIdent(query[0], "only") {
		query = query[1:]
	}
	match := true
	if len(query) > 0 && query[0].Type == scanner.TokenIdent {
		match = d.matchesType(strings.ToLower(query[0].Value))
		query = query[1:]
		if len(query) > 0 {
			if len(query) == 1 || !isIdent(query[0], "and") {
				return false
			}
			query = query[1:]
		}
	}
	for len(query) > 0 {
		// ( name : value )
		if len(query) < 5 || !isChar(query[0], "(") || query[1].Type != scanner.TokenIdent ||
			!isChar(query[2], ":") || !isChar(query[4], ")") {
			tracer().Debugf("malformed media query")
			return false
		}
		match = match && d.matchesFeature(strings.ToLower(query[1].Value), query[3])
		query = query[5:]
		if len(query) > 0 {
			if len(query) == 1 || !isIdent(query[0], "and") {
				return false
			}
			query = query[1:]
		}
	}
	tracer().Debugf("media query evaluates to %v (negated=%v)", match, negate)
	return match != negate
}

func isIdent(tok *scanner.Token, word string) bool {
	return tok.Type == scanner.TokenIdent && strings.EqualFold(tok.Value, word)
}

func isChar(tok *scanner.Token, c string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == c
}

func (d *Device) matchesType(t string) bool {
	return t == "all" || t == d.MediaType
}

func (d *Device) matchesFeature(name string, value *scanner.Token) bool {
	if value.Type != scanner.TokenDimension {
		return false
	}
	length, ok := ParseLength(value.Value)
	if !ok {
		return false
	}
	switch name {
	case "min-width":
		return d.ViewportWidth >= length
	case "max-width":
		return d.ViewportWidth <= length
	}
	return false
}

// ParseLength reads an absolute CSS length in px or pt. CSS defines
// 1px to be 0.75pt.
func ParseLength(s string) (dimen.DU, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	var unit float64
	switch {
	case strings.HasSuffix(s, "px"):
		unit = 0.75 * float64(dimen.PT)
	case strings.HasSuffix(s, "pt"):
		unit = float64(dimen.PT)
	default:
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-2]), 64)
	if err != nil {
		return 0, false
	}
	return dimen.DU(n * unit), true
}
