package markovchain

import "errors"

var (
	// ErrNoNgrams is returned when the input sequence is empty.
	ErrNoNgrams = errors.New("markovchain: no ngrams in input")

	// ErrZeroEntropy is returned when every transition in the input is
	// deterministic, so traversal would consume no randomness.
	ErrZeroEntropy = errors.New("markovchain: input has no entropy")

	// ErrZeroStartOfWordEntropy is returned when fewer than two distinct
	// word-start ngrams carry weight, so passphrase starts would be fixed.
	ErrZeroStartOfWordEntropy = errors.New("markovchain: input has no start-of-word entropy")
)
