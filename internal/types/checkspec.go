package types

// CheckSpec declares the coordinates of everything the verifier compares:
// the two schema mirrors, the server's two distribution pins, and the
// server source repository. Loaded from a YAML file; every field has a
// default so the file is only needed to override coordinates.
type CheckSpec struct {
	SchemaVersion string     `yaml:"schema_version"`
	Schema        SchemaSpec `yaml:"schema"`
	Server        ServerSpec `yaml:"server"`
	Cache         CacheSpec  `yaml:"cache,omitempty"`
}

// SchemaSpec describes the XDR definition mirrors in both ecosystems.
// The two mirror bases are raw-content endpoints; a marker file fetched
// from <base>/<revision>/<marker path> holds the upstream schema
// revision that mirror was generated from.
type SchemaSpec struct {
	Crate           string `yaml:"crate"`
	CrateMirrorBase string `yaml:"crate_mirror_base"`
	CrateMarkerPath string `yaml:"crate_marker_path"`
	GoModule        string `yaml:"go_module"`
	GoMirrorBase    string `yaml:"go_mirror_base"`
	GoMarkerPath    string `yaml:"go_marker_path"`
}

// ServerSpec describes the core server binary's two distribution pins
// and its source repository.
type ServerSpec struct {
	// Image is the container image name whose compose tag embeds the
	// core commit.
	Image string `yaml:"image"`
	// ComposeFile / WorkflowFile are the local files each pinning one
	// distribution channel of the server binary.
	ComposeFile  string `yaml:"compose_file"`
	WorkflowFile string `yaml:"workflow_file"`
	// WorkflowKey is the field name in the workflow file that carries
	// the Debian package version.
	WorkflowKey string `yaml:"workflow_key"`
	// SourceBase is the raw-content endpoint of the server's own source
	// repository; DepTreePath is the resolved-dependency transcript
	// committed there.
	SourceBase  string `yaml:"source_base"`
	DepTreePath string `yaml:"dep_tree_path"`
}

// CacheSpec locates the local cargo registry cache used when the crate
// pin is a published version rather than a commit.
type CacheSpec struct {
	// CargoHome overrides $CARGO_HOME (default ~/.cargo).
	CargoHome string `yaml:"cargo_home,omitempty"`
}
