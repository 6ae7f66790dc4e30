package manifest

// FileName is the project file looked up at the project root.
const FileName = "nextroute.yaml"

// ProjectFile is the decoded nextroute.yaml. Zero values mean "not set", so
// user configuration and defaults still apply.
type ProjectFile struct {
	PageExtension  string `yaml:"page_extension,omitempty" json:"page_extension,omitempty"`
	DynamicVariant string `yaml:"dynamic_variant,omitempty" json:"dynamic_variant,omitempty"`
	Overwrite      *bool  `yaml:"overwrite,omitempty" json:"overwrite,omitempty"`
}

// Page extensions accepted for the generated page file. Pages contain JSX,
// so plain "ts" is not among them.
const (
	ExtTSX = "tsx"
	ExtJSX = "jsx"
	ExtJS  = "js"
)

// ValidExtensions lists every accepted page extension.
var ValidExtensions = []string{ExtTSX, ExtJSX, ExtJS}

// Dynamic variant names accepted in configuration.
const (
	VariantCurrent = "current"
	VariantLegacy  = "legacy"
	VariantAuto    = "auto"
)

// ValidDynamicVariants lists every accepted dynamic_variant value.
var ValidDynamicVariants = []string{VariantCurrent, VariantLegacy, VariantAuto}
