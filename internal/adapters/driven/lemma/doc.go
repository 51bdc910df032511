// Package lemma provides Lemmatizer port implementations.
//
// RuleLemmatizer is the shipped default: a suffix-rewrite lemmatizer for
// English inflection that needs no external data, so the CLI works
// offline. StaticLemmatizer serves tests and callers with a precomputed
// lemma table.
package lemma
