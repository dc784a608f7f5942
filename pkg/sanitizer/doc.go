// Package sanitizer cleans untrusted free-text input before it enters form
// state, and masks sensitive values before they are rendered or logged.
//
// The core guarantee is that Sanitize output is plain text: no markup tags,
// no attributes, no null bytes, no control sequences. Sanitization is
// best-effort and total (malformed markup degrades to stripped text, never
// to the original input) and idempotent, so re-processing already-clean
// values is safe.
//
// All helpers are pure functions. The higher-order Apply and Compose helpers
// build reusable sanitization pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Sanitize,
//	    sanitizer.Trim,
//	)
//	name := clean(" <b>Jane</b> Doe ") // "Jane Doe"
package sanitizer
