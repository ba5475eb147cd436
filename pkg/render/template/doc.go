// Package template defines the string template contract used to render
// artifact names. The pongo2 backed implementation lives in the gotemplate
// subpackage.
package template
