// Package services implements the core business logic behind the driving
// ports: level resolution with lemma fallback, and single-pass document
// annotation. Services hold no mutable state of their own; every call is
// an independent computation over the shared, read-only level store.
package services
