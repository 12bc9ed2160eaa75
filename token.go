package main

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/width"
)

// TokenKind classifies a scanned word.
type TokenKind uint8

const (
	Number TokenKind = iota
	Literal
	Comment
	DeclarationMark
	Identifier
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Literal:
		return "literal"
	case Comment:
		return "comment"
	case DeclarationMark:
		return "declaration"
	case Identifier:
		return "identifier"
	}
	return fmt.Sprintf("invalid<%d>", uint8(k))
}

// Token is a classified, immutable unit. Num carries the payload of a
// Number; Name carries the payload of every other kind -- for a Literal it
// is the text between the delimiters, otherwise the raw word text.
type Token struct {
	Kind TokenKind
	Num  int
	Name string
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("%v(%v)", t.Kind, t.Num)
	}
	return fmt.Sprintf("%v(%q)", t.Kind, t.Name)
}

// Tokenizer converts a Scanner's words into Tokens.
type Tokenizer struct {
	scan *Scanner
}

func NewTokenizer(scan *Scanner) *Tokenizer { return &Tokenizer{scan: scan} }

// Next returns the next token, or ok=false at end of input.
func (t *Tokenizer) Next() (Token, bool) {
	word, ok := t.scan.Next()
	if !ok {
		return Token{}, false
	}
	return classify(word), true
}

// classify applies the kind rules in priority order: numeric parse first,
// then the leading literal and comment delimiters, then the trailing
// declaration character, then identifier. The declaration test runs on the
// raw text, so an identifier that happens to end in は (e.g. 倍は) is a
// declaration-marking token, not a plain identifier.
func classify(w Word) Token {
	if n, ok := parseNumber(w.Text); ok {
		return Token{Kind: Number, Num: n, Name: w.Text}
	}
	r := []rune(w.Text)
	switch {
	case r[0] == literalOpen:
		return Token{Kind: Literal, Name: literalName(r)}
	case r[0] == commentMark:
		return Token{Kind: Comment, Name: w.Text}
	case r[len(r)-1] == declareMark:
		return Token{Kind: DeclarationMark, Name: w.Text}
	}
	return Token{Kind: Identifier, Name: w.Text}
}

// literalName strips the one leading and one trailing delimiter. The
// trailing delimiter may be missing when the scanner auto-closed the span at
// end of input.
func literalName(r []rune) string {
	r = r[1:]
	if len(r) > 0 && r[len(r)-1] == literalClose {
		r = r[:len(r)-1]
	}
	return string(r)
}

var numberPattern = regexp.MustCompile(`^-?[0-9]+$`)

// parseNumber folds full-width digits (and the full-width minus) to their
// ASCII equivalents before testing the numeric grammar, so １２３ and 123
// produce the same integer.
func parseNumber(text string) (int, bool) {
	folded := width.Fold.String(text)
	if !numberPattern.MatchString(folded) {
		return 0, false
	}
	n, err := strconv.Atoi(folded)
	if err != nil {
		return 0, false
	}
	return n, true
}
