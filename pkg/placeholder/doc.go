// Package placeholder implements the {{key}} token grammar used by
// certificate text elements.
//
// A token is "{{" followed by one or more characters other than braces and
// closed by "}}". Keys are taken verbatim, without trimming.
//
// Surplus braces stay literal: "{{{name}}}" becomes "{Ann}".
//
// # Extracting keys
//
//	keys := placeholder.Keys("Certificate for {{name}}", "{{org}} / {{org}}")
//	// keys: ["name", "org"]
//
// # Substitution
//
// Values come from a Resolver. Tokens the resolver does not know are left
// in the output unchanged:
//
//	out := placeholder.Substitute("Hello, {{name}} from {{team}}", rcpt)
//	// "Hello, Ann from {{team}}" when rcpt knows name but not team
//
// Substitution is a single pass: a substituted value that itself contains
// a token is not expanded again.
package placeholder
