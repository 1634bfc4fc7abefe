// Package renderers provides implementations of the Renderer interface
// for the supported template formats. Each renderer knows how to walk
// the text fragments of one file format and apply the substitution
// function to them.
//
// Renderers are registered with the Registry at startup and selected by
// template file extension.
package renderers
