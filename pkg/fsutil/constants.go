package fsutil

// File and directory permission constants used consistently throughout the
// application.
const (
	// FileModeDefault is the mode for downloaded artifacts (-rw-r--r--).
	FileModeDefault = 0o644

	// DirModeDefault is the mode for created directories (drwxr-xr-x).
	DirModeDefault = 0o755
)
