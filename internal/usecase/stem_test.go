package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"brstemmer/internal/adapter/analyzer"
	"brstemmer/internal/domain"
	"brstemmer/stemmer"
)

func TestStemUseCase_StemWords(t *testing.T) {
	uc := NewStemUseCase(analyzer.NewTokenizer(nil, 1, false), stemmer.Default())

	got := uc.StemWords([]string{"Bons", "felizmente", ""})
	want := []domain.Pair{
		{Word: "Bons", Stem: "bom"},
		{Word: "felizmente", Stem: "feliz"},
		{Word: "", Stem: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStemUseCase_StemReader(t *testing.T) {
	uc := NewStemUseCase(analyzer.NewTokenizer(nil, 2, true), stemmer.Default())

	var got []domain.Pair
	err := uc.StemReader(context.Background(), strings.NewReader("Os livros\n\ncantando, bons\n"), func(p domain.Pair) error {
		got = append(got, p)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Pair{
		{Word: "livros", Stem: "livro"},
		{Word: "cantando", Stem: "cant"},
		{Word: "bons", Stem: "bom"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStemUseCase_StemReaderEmitError(t *testing.T) {
	uc := NewStemUseCase(analyzer.NewTokenizer(nil, 1, false), stemmer.Default())
	stop := errors.New("stop")

	err := uc.StemReader(context.Background(), strings.NewReader("bons casas"), func(domain.Pair) error {
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected emit error, got %v", err)
	}
}
