package main

import "unicode"

// The fixed character set of the notation.
const (
	literalOpen  = '「'
	literalClose = '」'
	commentMark  = '※'
	declareMark  = 'は'
	aliasMark    = 'と'
)

// isBlank reports whether r separates words. Besides ordinary whitespace
// (which includes the full-width space), four particle characters are
// separators and never content.
func isBlank(r rune) bool {
	switch r {
	case '、', '。', aliasMark, 'を':
		return true
	}
	return unicode.IsSpace(r)
}

// Word is a raw, unclassified span of source text.
type Word struct {
	Text string
}

// Scanner is a forward-only cursor over an immutable source buffer,
// producing one Word per call. It never fails: an unmatched 「 or ※ is
// closed at end of input and the best-effort span returned.
type Scanner struct {
	src []rune
	pos int
}

func NewScanner(text string) *Scanner { return &Scanner{src: []rune(text)} }

// Next returns the next word, or ok=false at end of input.
func (s *Scanner) Next() (word Word, ok bool) {
	for s.pos < len(s.src) && isBlank(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return Word{}, false
	}

	start := s.pos
	switch s.src[s.pos] {
	case commentMark:
		s.pos++
		s.skipThrough(commentMark)
	case literalOpen:
		s.pos++
		s.skipThrough(literalClose)
	case declareMark:
		// A bare は is its own word; when the character just before it
		// (already consumed as a separator) was the alias particle と, the
		// two form the compound declaration word とは.
		s.pos++
		if start > 0 && s.src[start-1] == aliasMark {
			return Word{Text: string([]rune{aliasMark, declareMark})}, true
		}
	default:
		// Maximal run of non-blank characters. The run may itself end in は
		// (as in 倍は); that is resolved by token classification, not here.
		for s.pos < len(s.src) && !isBlank(s.src[s.pos]) {
			s.pos++
		}
	}
	return Word{Text: string(s.src[start:s.pos])}, true
}

// skipThrough advances just past the next occurrence of close, or to end of
// input when the delimiter is unmatched.
func (s *Scanner) skipThrough(close rune) {
	for s.pos < len(s.src) {
		r := s.src[s.pos]
		s.pos++
		if r == close {
			return
		}
	}
}
