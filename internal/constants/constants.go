package constants

const (
	Version        = `0.1.0`
	AppName        = `notes`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.notes/`
	EnvPrefix      = `NOTES`

	DefaultBaseURL      = `https://notes-api.dicoding.dev/v2`
	DefaultTimeout      = `10s`
	DefaultPreviewStyle = `dracula`
	DefaultServeAddr    = `:8080`
)
