package models

// Mode selects the direction of a single cryptfile operation.
type Mode int

const (
	ModeEncrypt Mode = iota + 1
	ModeDecrypt
)

// String returns a human-readable mode name for logs and journal records.
func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// TargetKind discriminates the Target variant.
type TargetKind int

const (
	TargetFile TargetKind = iota + 1
	TargetDirectory
)

// Target is a tagged variant identifying what an operation acts on:
// a single regular file or a whole directory tree. Consumers branch on
// Kind instead of re-inspecting the filesystem.
type Target struct {
	Kind TargetKind
	Path string
}

// FileTarget builds a Target for a single regular file.
func FileTarget(path string) Target {
	return Target{Kind: TargetFile, Path: path}
}

// DirectoryTarget builds a Target for a directory tree.
func DirectoryTarget(path string) Target {
	return Target{Kind: TargetDirectory, Path: path}
}

// IsDirectory reports whether the target is a directory tree.
func (t Target) IsDirectory() bool {
	return t.Kind == TargetDirectory
}

// Request describes one encrypt-or-decrypt operation as handed to the
// service layer by the CLI glue.
//
// Compress is honored on the encrypt path only: on decrypt the compression
// choice is read back from the container flags, never from the request.
type Request struct {
	Mode           Mode
	Target         Target
	Compress       bool
	RemoveOriginal bool
	Password       string
}

// Result reports the outcome of a successfully completed operation.
type Result struct {
	// OutputPath is the artifact produced by the operation: the container
	// file on encrypt, the recovered file or directory root on decrypt.
	OutputPath string

	// OriginalRemoved reports whether the input artifact was deleted after
	// the operation succeeded. It is false both when removal was not
	// requested and when removal was requested but failed.
	OriginalRemoved bool
}
