package bumper

import (
	"context"
	"errors"
)

var (
	// ErrNoTags is returned by a TagReader when no tag is reachable from the branch
	ErrNoTags = errors.New("no tags found")

	// ErrVersionFileNotFound is returned by a FileReader when the version file does not exist
	ErrVersionFileNotFound = errors.New("version file not found")

	// ErrNoRemote is returned when the working copy has no remote to talk to
	ErrNoRemote = errors.New("no remote configured")
)

//go:generate mockgen -destination=internal/mock/bumper/bumper.go -package=mock_bumper . TagReader,FileReader,RepositoryWriter

// TagReader supplies the released version of a branch
type TagReader interface {
	// FetchTags brings all remote tags into the local repository. It returns
	// ErrNoRemote when there is nothing to fetch from.
	FetchTags(ctx context.Context) error

	// LatestTag returns the name of the nearest tag reachable from branch
	LatestTag(ctx context.Context, branch string) (string, error)
}

// FileReader supplies the raw content of the version file
type FileReader interface {
	ReadVersionFile(path string) (string, error)
}

// RepositoryWriter durably records a new version
type RepositoryWriter interface {
	Checkout(ctx context.Context, branch string) error
	WriteVersionFile(path, version string) error
	// Commit stages path and commits it, returning the new commit hash
	Commit(ctx context.Context, path, message string) (string, error)
	// Tag creates an annotated tag on HEAD
	Tag(ctx context.Context, name, message string) error
	Push(ctx context.Context, branch, tag string) error
}
