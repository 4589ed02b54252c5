package defs

// Output directories, relative to the output root.
const (
	ThemeDir    = "theme"
	SCSSDir     = "scss"
	TailwindDir = "tailwind"
	ShadcnDir   = "shadcn"
)

// Guide file names written by each generator.
const (
	MUIGuide      = "MUI.md"
	SCSSGuide     = "README.md"
	TailwindGuide = "TAILWIND.md"
	ShadcnGuide   = "SHADCN.md"
)

// SettingsFile is the default settings file looked up in the working directory.
const SettingsFile = ".themegen.yaml"

// EnvPrefix prefixes environment variables that override settings.
const EnvPrefix = "THEMEGEN_"
