// Package language provides the read-only language profiles used to
// segment and tokenise documents: stop words, abbreviations that do not end
// a sentence, and the Snowball stemmer for the language.
//
// Profiles are embedded YAML, parsed once on first use and never mutated.
// They are safe for concurrent use. Tokenizers are not: create one per
// document with Profile.NewTokenizer.
//
// English rules are complete. Other supported languages reuse the same
// tokeniser with their own stop words and abbreviations, and languages
// without a profile fall back to the default profile (no stop words, no
// abbreviations, no stemming).
package language
