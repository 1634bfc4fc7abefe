// Package driving defines the service interfaces offered to callers
// (the CLI): document rendering, template lifecycle, and creditor
// record management.
package driving
