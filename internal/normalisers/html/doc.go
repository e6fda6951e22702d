// Package html provides a Normaliser implementation for HTML documents.
// Article pages go through go-readability to isolate the main content;
// anything else is reduced with goquery after page chrome (navigation,
// headers, footers, scripts) is removed. Block elements become paragraphs.
package html
