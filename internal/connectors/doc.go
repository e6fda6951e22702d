// Package connectors provides the document sources precis reads from.
// The filesystem connector loads local files and standard input, detects
// their MIME type and can watch a file for changes.
package connectors
