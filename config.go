package bumper

import (
	"fmt"
	"strings"
)

const (
	DefaultAuthorName  = "Version Bumper"
	DefaultAuthorEmail = "version.bumper@github.com"
	DefaultRemoteName  = "origin"
	DefaultServerURL   = "https://github.com"
)

// Config is the fully resolved configuration of a run. It is built once at the
// command line boundary; nothing below it reads the process environment.
type Config struct {
	// VersionFile is the path of the version file, relative to the repository root
	VersionFile string

	// Branch whose latest tag is the released version, and where new versions are pushed
	Branch string

	DefaultVersion string
	Bump           BumpKind
	PrereleaseText string
	BuildNumber    string

	// Token authenticates fetches and pushes as "x-access-token"
	Token string

	// Repository is the "owner/name" slug used to build the remote URL. When empty the
	// remote's configured URL is used.
	Repository string
	ServerURL  string
	RemoteName string

	AuthorName  string
	AuthorEmail string

	// Fetch fetches tags before looking for the released version
	Fetch bool

	// Push commits, tags and pushes new versions
	Push bool

	// DryRun resolves the version without writing anything
	DryRun bool
}

// Validate checks the configuration and fills in defaults. Errors wrap
// ErrInvalidConfiguration.
func (c *Config) Validate() error {
	if _, err := ParseDefault(c.DefaultVersion); err != nil {
		return err
	}

	bump, err := ParseBumpKind(string(c.Bump))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	c.Bump = bump

	if strings.TrimSpace(c.VersionFile) == "" {
		return fmt.Errorf("%w: version file is required", ErrInvalidConfiguration)
	}

	if c.Push && !c.DryRun && c.Branch == "" {
		return fmt.Errorf("%w: a branch is required to push", ErrInvalidConfiguration)
	}

	if c.RemoteName == "" {
		c.RemoteName = DefaultRemoteName
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.AuthorName == "" {
		c.AuthorName = DefaultAuthorName
	}
	if c.AuthorEmail == "" {
		c.AuthorEmail = DefaultAuthorEmail
	}

	return nil
}

// RemoteURL returns the HTTPS URL of the configured repository, or "" when no
// repository slug is set.
func (c Config) RemoteURL() string {
	if c.Repository == "" {
		return ""
	}
	server := c.ServerURL
	if server == "" {
		server = DefaultServerURL
	}
	return fmt.Sprintf("%s/%s.git", strings.TrimSuffix(server, "/"), strings.Trim(c.Repository, "/"))
}

// BranchFromRef returns branch when it is set, otherwise the branch named by a Git ref
// such as "refs/heads/main". Tag and pull request refs yield "".
func BranchFromRef(branch, ref string) string {
	if branch != "" {
		return branch
	}
	if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		return name
	}
	if strings.HasPrefix(ref, "refs/") {
		return ""
	}
	return ref
}
