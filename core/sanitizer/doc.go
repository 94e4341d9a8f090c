// Package sanitizer provides string normalization helpers applied to
// user-supplied form input before validation. Sanitization is explicit:
// callers normalize a payload first, then validate it, so validation
// never mutates the data it checks.
package sanitizer
