// Package models provides the shared data model for themegen.
//
// The central type is [ThemeConfig], the immutable record of a user's
// answers that every generator consumes. It is created once per run by
// the configuration collector and passed by value afterwards.
//
// # Languages
//
// Two output languages are supported and select the extension of the
// generated MUI theme files:
//
//	cfg.Language.Ext() // "ts" for TypeScript, "js" for JavaScript
//
// # Frameworks
//
// [Framework] is informational. It only changes which import
// instructions the generated guides show.
//
// # Validation
//
// [ThemeConfig.Validate] checks enum membership and rejects values that
// would break the syntax of the generated files. It performs no semantic
// checks: a color of "red" or a font size of "abc" is accepted.
package models
