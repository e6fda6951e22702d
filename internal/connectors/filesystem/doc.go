// Package filesystem reads documents from local files or standard input
// and watches files for changes.
package filesystem
