package corpus

import (
	"io"
)

// Corpus holds cleaned text prepared for cyclic ngram extraction. The
// cleaned form has exactly one space before each retained word and
// nothing else besides letters and apostrophes, so an ngram beginning
// with a space marks a word start.
type Corpus struct {
	text        []rune
	wrapAround  []rune
	ngramLength int
}

// New reads the whole input, cleans it, and prepares the wraparound
// tail so that the extracted ngram sequence is cyclic: every ngram has
// a successor, including the one ending at the final rune.
//
// Returns ErrNgramLength when ngramLength is below two and
// ErrNotEnoughText when the cleaned text cannot fill a single ngram.
func New(r io.Reader, ngramLength, minWordLength int) (*Corpus, error) {
	if ngramLength < 2 {
		return nil, ErrNgramLength
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := []rune(cleanCorpus(string(raw), minWordLength))
	if len(text) < ngramLength {
		return nil, ErrNotEnoughText
	}

	wrapAround := make([]rune, 0, 2*ngramLength)
	wrapAround = append(wrapAround, text[len(text)-ngramLength:]...)
	wrapAround = append(wrapAround, text[:ngramLength]...)

	return &Corpus{
		text:        text,
		wrapAround:  wrapAround,
		ngramLength: ngramLength,
	}, nil
}

// Ngrams returns every ngram-length rune window of the cleaned text in
// order, followed by the windows that wrap from the end of the text
// back to its beginning. The result has exactly one ngram per rune of
// cleaned text.
func (c *Corpus) Ngrams() []string {
	ngrams := make([]string, 0, len(c.text))

	for i := 0; i+c.ngramLength < len(c.text); i++ {
		ngrams = append(ngrams, string(c.text[i:i+c.ngramLength]))
	}
	for i := 0; i+c.ngramLength < len(c.wrapAround); i++ {
		ngrams = append(ngrams, string(c.wrapAround[i:i+c.ngramLength]))
	}

	return ngrams
}
