package normalize

import (
	"errors"
	"testing"
)

func TestBuzzwordsFieldVariants(t *testing.T) {
	raw := `[
		{"buzzword":"RAG","definition":"Retrieval augmented generation."},
		{"term":"Embedding","definition":"A vector representation of text."},
		{"term":"","definition":"dropped, empty name"},
		{"buzzword":"Dropped","definition":""}
	]`

	entries, err := Buzzwords(raw)
	if err != nil {
		t.Fatalf("Buzzwords failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Buzzword != "RAG" || entries[1].Buzzword != "Embedding" {
		t.Errorf("got %q and %q", entries[0].Buzzword, entries[1].Buzzword)
	}
}

func TestBuzzwordsFenced(t *testing.T) {
	raw := "Sure! Here you go:\n```\n" +
		`[{"term":"Token","definition":"A unit of text the model reads."}]` +
		"\n```"

	entries, err := Buzzwords(raw)
	if err != nil {
		t.Fatalf("Buzzwords failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Buzzword != "Token" {
		t.Errorf("got %+v", entries)
	}
}

func TestBuzzwordsLineHeuristic(t *testing.T) {
	raw := `Here are some AI buzzwords:
1. **Transformer**: The architecture behind modern language models.
2. Fine-tuning - Adapting a pretrained model to a narrower task.
Hallucination: Confident output that is factually wrong.`

	entries, err := Buzzwords(raw)
	if err != nil {
		t.Fatalf("Buzzwords failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(entries), entries)
	}
	if entries[0].Buzzword != "Transformer" {
		t.Errorf("got %q, want Transformer (markers stripped)", entries[0].Buzzword)
	}
	if entries[1].Buzzword != "Fine-tuning" {
		t.Errorf("got %q, want Fine-tuning", entries[1].Buzzword)
	}
}

func TestBuzzwordsNoValidContent(t *testing.T) {
	_, err := Buzzwords("I had trouble generating buzzwords today")
	var nvc *NoValidContentError
	if !errors.As(err, &nvc) {
		t.Fatalf("expected *NoValidContentError, got %v", err)
	}
}
