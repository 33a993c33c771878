package service_word

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/humanbelnik/wordchain/internal/model"
)

const (
	minWordLen       = 3
	minDefinitionLen = 10
)

var shape = regexp.MustCompile(`[aeiou].$|.[aeiou]$`)

// Grammatical classes that never count as playable words. Matched against the
// normalized class annotation, so "Abreviação" and "abreviacao" both hit.
var classBlocklist = []string{
	"simbolo",
	"abreviacao",
	"letra",
	"sigla",
	"sufixo",
	"prefixo",
	"onomatopeia",
	"abreviado",
	"interjeicao",
}

//go:generate mockery --name=VerdictCache --output=./mocks/cache --filename=cache.go
type VerdictCache interface {
	Lookup(ctx context.Context, word string) (model.Verdict, error)
	Store(ctx context.Context, word string, verdict model.Verdict) error
}

//go:generate mockery --name=DefinitionLookup --output=./mocks/dictionary --filename=dictionary.go
type DefinitionLookup interface {
	Lookup(ctx context.Context, word string) (model.Definition, error)
}

type Service struct {
	cache      VerdictCache
	corpus     model.Corpus
	dictionary DefinitionLookup
	logger     *slog.Logger
}

type ServiceOption func(*Service)

// WithDictionary enables the remote fallback for words outside the corpus.
func WithDictionary(d DefinitionLookup) ServiceOption {
	return func(s *Service) {
		s.dictionary = d
	}
}

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(
	cache VerdictCache,
	corpus model.Corpus,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		cache:  cache,
		corpus: corpus,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsValid expects an already normalized word. Continuity and repetition are
// not its concern. Infra failures resolve to false.
func (s *Service) IsValid(ctx context.Context, word string) bool {
	if !HasShape(word) {
		return false
	}

	verdict, err := s.cache.Lookup(ctx, word)
	if err != nil {
		s.logger.Warn("verdict cache lookup failed", slog.String("word", word), slog.String("error", err.Error()))
	}
	switch verdict {
	case model.VerdictValid:
		return true
	case model.VerdictInvalid:
		return false
	}

	if s.corpus.Contains(word) {
		s.store(ctx, word, model.VerdictValid)
		return true
	}

	if s.dictionary == nil {
		return false
	}

	def, err := s.dictionary.Lookup(ctx, word)
	if err != nil {
		s.logger.Warn("dictionary lookup failed", slog.String("word", word), slog.String("error", err.Error()))
		return false
	}

	verdict = judge(def)
	s.store(ctx, word, verdict)
	return verdict == model.VerdictValid
}

// HasShape is the cheap local guard: at least three characters and a vowel
// touching one of the last two.
func HasShape(word string) bool {
	return utf8.RuneCountInString(word) >= minWordLen && shape.MatchString(word)
}

func judge(def model.Definition) model.Verdict {
	if !def.Found || utf8.RuneCountInString(strings.TrimSpace(def.Text)) < minDefinitionLen {
		return model.VerdictInvalid
	}

	class := Normalize(def.Class)
	for _, blocked := range classBlocklist {
		if strings.Contains(class, blocked) {
			return model.VerdictInvalid
		}
	}
	return model.VerdictValid
}

func (s *Service) store(ctx context.Context, word string, verdict model.Verdict) {
	if err := s.cache.Store(ctx, word, verdict); err != nil {
		s.logger.Warn("verdict cache store failed", slog.String("word", word), slog.String("error", err.Error()))
	}
}
