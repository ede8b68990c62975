package corpus

import "errors"

var (
	// ErrNgramLength is returned when the requested ngram length is below two.
	ErrNgramLength = errors.New("corpus: ngram length must be greater than one")

	// ErrNotEnoughText is returned when the cleaned text is shorter than one ngram.
	ErrNotEnoughText = errors.New("corpus: cleaned text is shorter than one ngram")
)
