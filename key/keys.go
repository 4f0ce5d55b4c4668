// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Palette Selection - these keys govern which semantic palette resolvers receive.
const (
	PaletteDefault     = "palette.default"
	PaletteCustomCache = "palette.custom_cache"
)

// Preview Defaults - these keys seed the interactive preview with its initial role parameters.
const (
	PreviewVariant = "preview.variant"
	PreviewTone    = "preview.tone"
	PreviewSize    = "preview.size"
	PreviewShowHex = "preview.show_hex"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Command Line Interface - these keys define the presentation of non-interactive output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Diagnostics - these keys configure the structured logging backend.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
