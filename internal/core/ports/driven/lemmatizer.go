package driven

import "github.com/lexibase/cefrlex-cli/internal/core/domain"

// Lemmatizer derives base-form candidates for an inflected word, e.g.
// "trees"/NNS -> ["tree"]. It is an external morphological component
// treated as a black box: the resolver tries candidates in the order
// given and takes the first one with a stored entry. An empty result
// means no fallback is possible.
type Lemmatizer interface {
	Lemmatize(word string, pos domain.POSTag) []string
}
