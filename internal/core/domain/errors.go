package domain

import "go.trai.ch/zerr"

var (
	// ErrSpawnFailed is returned when the build tool process could not be started.
	ErrSpawnFailed = zerr.New("failed to spawn build tool")

	// ErrReportFailed is returned when the status line could not be written.
	ErrReportFailed = zerr.New("failed to write status")

	// ErrUnknownSubcommand is returned for an unrecognized subcommand name.
	ErrUnknownSubcommand = zerr.New("unknown subcommand")

	// ErrInvalidColorMode is returned for a color mode other than auto, always or never.
	ErrInvalidColorMode = zerr.New("invalid color mode, expected 'auto', 'always' or 'never'")

	// ErrInvalidConfiguration groups configuration and manifest loading failures.
	ErrInvalidConfiguration = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when the project config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project config file is malformed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrManifestReadFailed is returned when a Cargo.toml cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a Cargo.toml is malformed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrNoCrates is returned when neither a package nor workspace members are found.
	ErrNoCrates = zerr.New("manifest declares no package and no workspace members")

	// ErrInvalidChunk is returned when the requested chunk is outside 1..n.
	ErrInvalidChunk = zerr.New("chunk must be between 1 and the number of chunks")
)
