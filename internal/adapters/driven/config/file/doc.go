// Package file provides the TOML configuration store.
//
// Settings live in config.toml inside the precis config directory
// (~/.precis by default). Dotted keys such as "summary.sentences" map to
// TOML tables, so the file stays readable and hand-editable:
//
//	[summary]
//	sentences = 6
//	language = "en"
package file
