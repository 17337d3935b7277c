package cache

// Manager defines the interface for archive cache maintenance.
type Manager interface {
	Clean(options CleanOptions) (*CleanResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
}

// CleanOptions specifies what to clean from the archive cache.
type CleanOptions struct {
	All       bool
	Artifacts bool
	Temp      bool
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	TotalFreed    int64
	ArtifactFreed int64
	TempFreed     int64
}

// Info represents archive cache information.
type Info struct {
	Directory     string
	TotalSize     int64
	ArtifactSize  int64
	ArtifactFiles int
	TempSize      int64
	TempFiles     int
}
