package analyzer

import (
	"reflect"
	"testing"

	"brstemmer/stemmer"
)

func TestTokenizer_Tokenize_WithStemming(t *testing.T) {
	tok := NewTokenizer(stemmer.Default(), 2, true)

	tokens := tok.Tokenize("Os meninos estão cantando felizmente")
	want := []string{"menino", "est", "cant", "feliz"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected %v, got %v", want, tokens)
	}
}

func TestTokenizer_Tokenize_WithoutStemming(t *testing.T) {
	tok := NewTokenizer(nil, 2, true)

	tokens := tok.Tokenize("Os meninos estão cantando")
	want := []string{"meninos", "estão", "cantando"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected %v, got %v", want, tokens)
	}
}

func TestTokenizer_StopwordsDisabled(t *testing.T) {
	tok := NewTokenizer(nil, 1, false)

	tokens := tok.Tokenize("a casa e o livro")
	if len(tokens) != 5 {
		t.Errorf("expected 5 tokens, got %d: %v", len(tokens), tokens)
	}
}

func TestTokenizer_MinLength(t *testing.T) {
	tok := NewTokenizer(nil, 3, false)

	tokens := tok.Words("pé já água sol")
	want := []string{"água", "sol"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("expected %v, got %v", want, tokens)
	}
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer(stemmer.Default(), 2, true)

	if tokens := tok.Tokenize(""); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
	if tokens := tok.Tokenize("123 -- 456"); len(tokens) != 0 {
		t.Errorf("expected 0 tokens for input without letters, got %v", tokens)
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"casa amarela", 2},
		{"guarda-chuva", 2},
		{"d'água", 2},
		{"ação, reação.", 2},
		{"PORTUGUÊS", 1},
		{"123números456", 1},
		{"", 0},
	}

	for _, tt := range tests {
		words := splitWords(tt.input)
		if len(words) != tt.expected {
			t.Errorf("splitWords(%q) = %d words, want %d: %v", tt.input, len(words), tt.expected, words)
		}
	}
}
