package wiki

// Config holds configuration for the wiki data export.
type Config struct {
	// OutputDir is where exported Lua files are written.
	OutputDir string `mapstructure:"output_dir" default:"."`
	// Upload also stores every export in the bucket.
	Upload bool `mapstructure:"upload" default:"false"`
	// UploadPrefix is the bucket folder for uploaded exports.
	UploadPrefix string `mapstructure:"upload_prefix" default:"wiki"`
	// Owners may always export.
	Owners []string `mapstructure:"owners" default:""`
	// Guilds whose members may export.
	Guilds []string `mapstructure:"guilds" default:""`
	// Users who may export from anywhere.
	Users []string `mapstructure:"users" default:""`
}
