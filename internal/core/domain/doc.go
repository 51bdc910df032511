// Package domain defines the core business entities for cefrlex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - POSTag: A part-of-speech tag from the closed Penn Treebank catalog
//   - CEFRLevel: One of the six CEFR proficiency bands (A1-C2)
//   - LevelEntry: A (word, POS, level) fact from the reference dataset
//   - Token: An externally tokenized word with tag, entity and span
//   - Annotation: A per-token level judgement produced by the annotator
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
