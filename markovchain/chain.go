package markovchain

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vitalvas/markovpass/aliasdist"
)

// Chain is a character-level Markov chain over fixed-length ngrams,
// built once from a cyclic ngram sequence and read-only afterwards.
// Passphrase may be called concurrently as long as each caller supplies
// its own Rand.
type Chain struct {
	nodes           map[string]*node
	startingNgrams  []string
	startingDist    *aliasdist.Distribution
	startingEntropy float64
	totalEntropy    float64
}

// New builds a Chain from a sequence of equal-length ngrams in corpus
// order. The sequence is treated as cyclic: the successor of the last
// ngram is the first, so every state has at least one outgoing
// transition. Ngrams beginning with a space form the starting
// distribution, weighted by how often they occur anywhere in the
// sequence.
//
// Returns ErrNoNgrams for an empty sequence, ErrZeroEntropy when every
// transition is deterministic, and ErrZeroStartOfWordEntropy when the
// starting distribution carries no entropy.
func New(ngrams []string) (*Chain, error) {
	if len(ngrams) == 0 {
		return nil, ErrNoNgrams
	}

	transitionCounts := make(map[string]map[string]int)
	startingCounts := make(map[string]int)

	for i, current := range ngrams {
		if strings.HasPrefix(current, " ") {
			startingCounts[current]++
		}

		next := ngrams[(i+1)%len(ngrams)]
		if transitionCounts[current] == nil {
			transitionCounts[current] = make(map[string]int)
		}
		transitionCounts[current][next]++
	}

	// Transition lists are sorted: map iteration order is randomized in
	// Go, and sampler indices must line up identically across runs for
	// fixed-seed output to be reproducible.
	nodes := make(map[string]*node, len(transitionCounts))
	var totalEntropy float64
	for ngram, counts := range transitionCounts {
		values := make([]string, 0, len(counts))
		for value := range counts {
			values = append(values, value)
		}
		sort.Strings(values)

		weights := make([]float64, len(values))
		for i, value := range values {
			weights[i] = float64(counts[value])
		}

		n, err := newNode(ngram, values, weights)
		if err != nil {
			return nil, err
		}

		totalEntropy += n.entropy()
		nodes[ngram] = n
	}

	if totalEntropy == 0.0 {
		return nil, ErrZeroEntropy
	}

	startingNgrams := make([]string, 0, len(startingCounts))
	for ngram := range startingCounts {
		startingNgrams = append(startingNgrams, ngram)
	}
	sort.Strings(startingNgrams)

	startingWeights := make([]float64, len(startingNgrams))
	for i, ngram := range startingNgrams {
		startingWeights[i] = float64(startingCounts[ngram])
	}

	startingDist, err := aliasdist.New(startingWeights)
	if err != nil {
		return nil, ErrZeroStartOfWordEntropy
	}

	if startingDist.Entropy() == 0.0 {
		return nil, ErrZeroStartOfWordEntropy
	}

	return &Chain{
		nodes:           nodes,
		startingNgrams:  startingNgrams,
		startingDist:    startingDist,
		startingEntropy: startingDist.Entropy(),
		totalEntropy:    totalEntropy,
	}, nil
}

// Passphrase walks the chain from a sampled word-start ngram until the
// accumulated entropy reaches minEntropy at a word boundary, then
// reconstructs the de-overlapped text the walk covered. It returns the
// passphrase and the entropy it accumulated.
//
// The walk has no iteration cap. Construction rejects chains without
// traversal or starting entropy, which is what keeps the loop finite
// for usable corpora; a corpus whose only randomness sits outside any
// path to a word boundary can still cycle for a long time.
func (c *Chain) Passphrase(rng aliasdist.Rand, minEntropy float64) (string, float64) {
	current := c.startingNgrams[c.startingDist.Choice(rng)]
	entropy := c.startingEntropy

	var selected []string
	for {
		n := c.nodes[current]
		selected = append(selected, current)
		entropy += n.entropy()

		if entropy >= minEntropy && strings.HasSuffix(current, " ") {
			break
		}

		current = n.next(rng)
	}

	// Consecutive ngrams overlap by all but one rune: the first rune of
	// each plus the whole final ngram rebuilds the covered text.
	var b strings.Builder
	for _, ngram := range selected[:len(selected)-1] {
		r, _ := utf8.DecodeRuneInString(ngram)
		b.WriteRune(r)
	}
	b.WriteString(selected[len(selected)-1])

	return strings.TrimSpace(b.String()), entropy
}

// StartingEntropy returns the Shannon entropy of the word-start
// distribution in bits. Every passphrase starts with at least this much.
func (c *Chain) StartingEntropy() float64 {
	return c.startingEntropy
}

// TotalEntropy returns the summed entropy of all transition nodes.
func (c *Chain) TotalEntropy() float64 {
	return c.totalEntropy
}

// StartingNgrams returns the word-start ngrams in sorted order.
func (c *Chain) StartingNgrams() []string {
	out := make([]string, len(c.startingNgrams))
	copy(out, c.startingNgrams)
	return out
}
