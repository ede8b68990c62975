// Package markovpass generates human-pronounceable passphrases with a
// guaranteed entropy floor, by walking a character-level Markov chain
// built from a text corpus.
package markovpass

import (
	"io"
	"math/rand/v2"
	"sync"

	"github.com/vitalvas/markovpass/corpus"
	"github.com/vitalvas/markovpass/markovchain"
)

const (
	DefaultNumber        = 1
	DefaultMinEntropy    = 60.0
	DefaultNgramLength   = 3
	DefaultMinWordLength = 5
)

// Options controls corpus preparation and passphrase generation.
type Options struct {
	Number        int     `yaml:"number"`
	MinEntropy    float64 `yaml:"min_entropy"`
	NgramLength   int     `yaml:"ngram_length"`
	MinWordLength int     `yaml:"min_word_length"`
}

// Default resets the options to the standard generation parameters.
func (o *Options) Default() {
	*o = Options{
		Number:        DefaultNumber,
		MinEntropy:    DefaultMinEntropy,
		NgramLength:   DefaultNgramLength,
		MinWordLength: DefaultMinWordLength,
	}
}

// Passphrase is one generated passphrase together with the entropy,
// in bits, that was accumulated while generating it.
type Passphrase struct {
	Text    string
	Entropy float64
}

// GenPassphrases reads a corpus, builds the Markov chain, and generates
// Number passphrases of at least MinEntropy bits each. The chain is
// immutable once built, so generation fans out across goroutines with
// one independent generator per passphrase.
func GenPassphrases(r io.Reader, opts Options) ([]Passphrase, error) {
	c, err := corpus.New(r, opts.NgramLength, opts.MinWordLength)
	if err != nil {
		return nil, err
	}

	chain, err := markovchain.New(c.Ngrams())
	if err != nil {
		return nil, err
	}

	if opts.Number <= 0 {
		return []Passphrase{}, nil
	}

	// Seed all generators up front so entropy-source failures surface
	// before any goroutine starts.
	rngs := make([]*rand.Rand, opts.Number)
	for i := range rngs {
		if rngs[i], err = NewRand(); err != nil {
			return nil, err
		}
	}

	out := make([]Passphrase, opts.Number)
	var wg sync.WaitGroup
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, entropy := chain.Passphrase(rngs[i], opts.MinEntropy)
			out[i] = Passphrase{Text: text, Entropy: entropy}
		}(i)
	}
	wg.Wait()

	return out, nil
}
