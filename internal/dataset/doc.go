// Package dataset ties the annotation parser to files on disk: the directory
// layout the extracted bundles follow, split selection, and record iteration
// over an open split.
package dataset
