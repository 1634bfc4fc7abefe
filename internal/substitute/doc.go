// Package substitute fills placeholder tokens in template text with
// creditor and case data.
//
// Tokens are literal {name} strings; per-creditor families append a
// 1-based index ({company_name_3}) or, on the Tokyo District Court
// bankruptcy form, a page letter and index ({company_name_A2}). All
// recognised tokens are replaced in a single pass over the text, so a
// substituted value that happens to contain braces is never
// re-processed. Tokens with no backing data become empty strings.
package substitute
