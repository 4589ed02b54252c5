package models

// Language defines the language of the generated theme sources.
type Language string

const (
	// LanguageTypeScript emits .ts theme files (default).
	LanguageTypeScript Language = "TypeScript"

	// LanguageJavaScript emits .js theme files.
	LanguageJavaScript Language = "JavaScript"
)

// ValidLanguages returns all valid language values in prompt order.
func ValidLanguages() []Language {
	return []Language{LanguageTypeScript, LanguageJavaScript}
}

// IsValid checks if the language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageTypeScript, LanguageJavaScript:
		return true
	}
	return false
}

// Ext returns the file extension used for generated sources.
// Anything other than TypeScript produces "js".
func (l Language) Ext() string {
	if l == LanguageTypeScript {
		return "ts"
	}
	return "js"
}

// Framework identifies the front-end framework the user is targeting.
type Framework string

const (
	FrameworkReactVite Framework = "React + Vite"
	FrameworkNextJS    Framework = "Next.js"
	FrameworkNone      Framework = "None"
)

// ValidFrameworks returns all valid framework values in prompt order.
func ValidFrameworks() []Framework {
	return []Framework{FrameworkReactVite, FrameworkNextJS, FrameworkNone}
}

// IsValid checks if the framework is a valid value.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkReactVite, FrameworkNextJS, FrameworkNone:
		return true
	}
	return false
}
