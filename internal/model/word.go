package model

type Verdict = string

const (
	VerdictUnknown Verdict = ""
	VerdictValid   Verdict = "VALID"
	VerdictInvalid Verdict = "INVALID"
)

// Definition is what a remote dictionary knows about a word.
type Definition struct {
	Found bool
	Text  string
	Class string
}

// Corpus is the immutable set of inherently accepted words.
type Corpus struct {
	words map[string]struct{}
}

func NewCorpus(words []string) Corpus {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return Corpus{words: set}
}

func (c Corpus) Contains(word string) bool {
	_, ok := c.words[word]
	return ok
}

func (c Corpus) Len() int {
	return len(c.words)
}
