package structures

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	JSON       bool
	NoColor    bool
}
