package domain

import (
	"context"

	"versecraft/internal/adapters/tagger"
	"versecraft/internal/core/phoneme"
)

// TaggerPort tokenizes and tags one line of text
type TaggerPort interface {
	Tag(line string) []tagger.Token
}

// LexiconPort resolves words to pronunciations
type LexiconPort interface {
	Lookup(word, tag string) ([]phoneme.Phoneme, error)
	LookupOrFallback(word, tag string) ([]phoneme.Phoneme, error)
}

// AnalyzerPort is the service surface consumed by transports
type AnalyzerPort interface {
	ParseSentence(ctx context.Context, text string) (Sentence, error)
	AnalyzeRhyme(ctx context.Context, lines []string) (RhymeAnalysis, error)
	AnalyzeScheme(ctx context.Context, lines []string) (SchemeAnalysis, error)
}
