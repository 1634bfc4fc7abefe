// Package domain contains the core business types for saikengen:
// creditor records, render contexts, the court-specific page/slot
// allocation rule, and the sentinel errors shared across layers.
//
// Types here have no dependencies on storage, rendering, or the CLI.
package domain
