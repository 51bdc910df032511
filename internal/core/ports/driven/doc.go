// Package driven defines the driven (outbound) ports of the hexagon:
// interfaces the core services require from infrastructure adapters.
//
// The level store, the lemmatizer and the annotation profile store are
// external collaborators behind these ports; the core never depends on a
// concrete dataset format or morphology implementation.
package driven
