package markovchain

import "github.com/vitalvas/markovpass/aliasdist"

// node holds one context ngram together with the alias distribution
// over the ngrams observed to follow it.
type node struct {
	value       string
	transitions []string
	dist        *aliasdist.Distribution
}

func newNode(value string, transitions []string, weights []float64) (*node, error) {
	dist, err := aliasdist.New(weights)
	if err != nil {
		return nil, err
	}

	return &node{
		value:       value,
		transitions: transitions,
		dist:        dist,
	}, nil
}

func (n *node) next(rng aliasdist.Rand) string {
	return n.transitions[n.dist.Choice(rng)]
}

func (n *node) entropy() float64 {
	return n.dist.Entropy()
}
