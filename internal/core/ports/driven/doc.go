// Package driven defines the interfaces the core depends on:
// template storage, creditor record storage, and document renderers.
// Adapters implement these; services consume them.
package driven
