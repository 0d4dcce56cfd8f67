package config

// Fergusfile represents the structure of the fergus.yaml configuration file.
type Fergusfile struct {
	Version     string      `yaml:"version"`
	Name        string      `yaml:"name"`
	Root        string      `yaml:"root"`
	Cache       string      `yaml:"cache"`
	SourceExt   string      `yaml:"source_ext"`
	ArtifactExt string      `yaml:"artifact_ext"`
	Minify      bool        `yaml:"minify"`
	Compiler    CompilerDTO `yaml:"compiler"`
	Options     OptionsDTO  `yaml:"options"`
}

// CompilerDTO represents the external compiler definition.
type CompilerDTO struct {
	Cmd []string          `yaml:"cmd"`
	Env map[string]string `yaml:"env"`
	Dir string            `yaml:"dir"`
}

// OptionsDTO represents compiler option overrides. Absent keys keep the defaults.
type OptionsDTO struct {
	Format        *string  `yaml:"format"`
	EnableEscaper *bool    `yaml:"enable_escaper"`
	EscapeHTML    *bool    `yaml:"escape_html"`
	EscapeAttrs   *bool    `yaml:"escape_attrs"`
	Autoclose     []string `yaml:"autoclose"`
	Charset       *string  `yaml:"charset"`
}
