package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(text string) (words []string) {
	s := NewScanner(text)
	for {
		word, ok := s.Next()
		if !ok {
			return words
		}
		words = append(words, word.Text)
	}
}

func TestScanner(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only blanks", " \t\n　、。", nil},
		{"plain words", "足す 引く", []string{"足す", "引く"}},
		{"full-width space separates", "足す　引く", []string{"足す", "引く"}},
		{"particles separate", "3を、4。足す", []string{"3", "4", "足す"}},
		{"literal keeps delimiters", "「こんにちは」", []string{"「こんにちは」"}},
		{"literal keeps inner blanks", "「こん にちは」書く", []string{"「こん にちは」", "書く"}},
		{"unmatched literal auto-closes", "「こんにちは", []string{"「こんにちは"}},
		{"comment keeps delimiters", "※めも※ 1", []string{"※めも※", "1"}},
		{"unmatched comment auto-closes", "1 ※めも", []string{"1", "※めも"}},
		{"bare declaration char", "「倍」 は", []string{"「倍」", "は"}},
		{"alias compound", "「倍」とは", []string{"「倍」", "とは"}},
		{"alias compound after blank run", "「倍」 とは", []string{"「倍」", "とは"}},
		{"glued declaration char stays in word", "倍は 2", []string{"倍は", "2"}},
		{"literal then glued body", "「倍」は", []string{"「倍」", "は"}},
		{"numbers", "42 -5 １２３", []string{"42", "-5", "１２３"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, scanAll(tc.in))
		})
	}
}

func TestScanner_forwardOnly(t *testing.T) {
	s := NewScanner("一 二")
	w1, ok1 := s.Next()
	w2, ok2 := s.Next()
	_, ok3 := s.Next()
	_, ok4 := s.Next()
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3, "end of input")
	assert.False(t, ok4, "end of input is sticky")
	assert.Equal(t, "一", w1.Text)
	assert.Equal(t, "二", w2.Text)
}
