// Package document turns a certificate template into per-student document
// content. A Template is parsed once from the text of the template archive's
// content entry; Instantiate substitutes every {name} placeholder in a single
// left-to-right pass.
package document
