package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonAnswer(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		want       bool
		wantReason string
	}{
		{"empty", "", true, "empty_or_trivial"},
		{"single char", "x", true, "empty_or_trivial"},
		{"repeated char", "aaaaaa", true, "repeated_single_character"},
		{"dont know ru", "не знаю", true, "dont_know_phrase"},
		{"dont know uz", "bilmayman", true, "dont_know_phrase"},
		{"dont know en", "don't know", true, "dont_know_phrase"},
		{"strong phrase inside long text", "честно говоря я не знаю как работает этот механизм внутри", true, "dont_know_phrase"},
		{"keyboard mash", "qwertyuiop qwerty", true, "keyboard_row"},
		{"no vowels", "dhrtkpsmfgl", true, "low_vowel_ratio"},
		{"word repetition", "blabla blabla blabla blabla", true, "word_repetition"},
		{"real answer", "A dict maps keys to values using a hash table", false, ""},
		{"hedged but substantive", "I am not sure about internals but a dict uses open addressing to resolve key collisions", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := IsNonAnswer(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
