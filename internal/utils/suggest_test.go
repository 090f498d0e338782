package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"clear", "del", "paren", "power", "sq", "sqrt", "square"}

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "single typo", word: "powr", want: "power"},
		{name: "prefix wins a tie", word: "sqr", want: "sqrt"},
		{name: "case insensitive", word: "CLEAR", want: "clear"},
		{name: "too far", word: "banana", want: ""},
		{name: "empty word", word: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Suggest(tt.word, candidates))
		})
	}
}
