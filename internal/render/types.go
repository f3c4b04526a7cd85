package render

// Format is an output format for parsed entries and versions.
type Format string

const (
	// FormatText is human-readable, styled console output.
	FormatText Format = "text"

	// FormatJSON is a single JSON object.
	FormatJSON Format = "json"

	// FormatYAML is a YAML mapping.
	FormatYAML Format = "yaml"

	// FormatTOML is a TOML table.
	FormatTOML Format = "toml"
)

// Formats lists every supported format, in help-text order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return true
	default:
		return false
	}
}

// entryDocument is the structured shape shared by the YAML and TOML encoders.
// The JSON encoder writes the same keys in the same order.
type entryDocument struct {
	Timestamp string  `yaml:"timestamp" toml:"timestamp"`
	Version   string  `yaml:"version" toml:"version"`
	Major     uint16  `yaml:"major" toml:"major"`
	Minor     uint16  `yaml:"minor" toml:"minor"`
	Patch     uint16  `yaml:"patch" toml:"patch"`
	Extension *string `yaml:"extension,omitempty" toml:"extension,omitempty"`
	Max       int32   `yaml:"max" toml:"max"`
	Values    []int32 `yaml:"values" toml:"values"`
}

type versionDocument struct {
	Version   string  `yaml:"version" toml:"version"`
	Major     uint16  `yaml:"major" toml:"major"`
	Minor     uint16  `yaml:"minor" toml:"minor"`
	Patch     uint16  `yaml:"patch" toml:"patch"`
	Extension *string `yaml:"extension,omitempty" toml:"extension,omitempty"`
}

type comparisonDocument struct {
	Version string `yaml:"version" toml:"version"`
	Other   string `yaml:"other" toml:"other"`
	Order   int    `yaml:"order" toml:"order"`
}
