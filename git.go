// This file contains code adapted from pulumictl (https://github.com/pulumi/pulumictl)
// which is licensed under the Apache License 2.0. See NOTICE file for full attribution.

package bumper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"golang.org/x/mod/semver"
)

// Repository implements TagReader, FileReader and RepositoryWriter on top of a
// go-git repository and its worktree.
type Repository struct {
	repo       *git.Repository
	remoteName string
	remoteURL  string
	auth       transport.AuthMethod
	author     object.Signature

	// now is replaced in tests
	now func() time.Time
}

var (
	_ TagReader        = (*Repository)(nil)
	_ FileReader       = (*Repository)(nil)
	_ RepositoryWriter = (*Repository)(nil)
)

// OpenRepository opens a Git repository at the specified path
func OpenRepository(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// NewRepository wraps repo using the remote, credentials and author from cfg
func NewRepository(repo *git.Repository, cfg Config) *Repository {
	r := &Repository{
		repo:       repo,
		remoteName: cfg.RemoteName,
		remoteURL:  cfg.RemoteURL(),
		author: object.Signature{
			Name:  cfg.AuthorName,
			Email: cfg.AuthorEmail,
		},
		now: time.Now,
	}

	if r.remoteName == "" {
		r.remoteName = DefaultRemoteName
	}
	if r.author.Name == "" {
		r.author.Name = DefaultAuthorName
	}
	if r.author.Email == "" {
		r.author.Email = DefaultAuthorEmail
	}
	if cfg.Token != "" {
		r.auth = &http.BasicAuth{
			Username: "x-access-token",
			Password: cfg.Token,
		}
	}

	return r
}

// FetchTags fetches every branch head and tag from the remote
func (r *Repository) FetchTags(ctx context.Context) error {
	remote, err := r.remote()
	if err != nil {
		return err
	}

	err = remote.FetchContext(ctx, &git.FetchOptions{
		RemoteName: r.remoteName,
		RemoteURL:  r.remoteURL,
		RefSpecs: []config.RefSpec{
			config.RefSpec(fmt.Sprintf("+refs/heads/*:refs/remotes/%s/*", r.remoteName)),
		},
		Tags: git.AllTags,
		Auth: r.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("fetching tags from %s: %w", r.remoteName, err)
	}
	return nil
}

// LatestTag returns the tag on the nearest tagged commit reachable from branch, the
// way "git describe --tags --abbrev=0" does. An empty branch means HEAD.
func (r *Repository) LatestTag(ctx context.Context, branch string) (string, error) {
	hash, err := r.resolveBranch(branch)
	if err != nil {
		return "", fmt.Errorf("resolving branch %q: %w", branch, err)
	}

	tagged, err := r.tagsByCommit()
	if err != nil {
		return "", err
	}
	if len(tagged) == 0 {
		return "", ErrNoTags
	}

	// Breadth first, one generation at a time, so the tag with the fewest commits
	// between it and the tip wins even across merges.
	seen := map[plumbing.Hash]bool{*hash: true}
	generation := []plumbing.Hash{*hash}
	truncated := false

	for len(generation) > 0 {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("walking history of %q: %w", branch, err)
		}

		var names []string
		var parents []plumbing.Hash
		for _, h := range generation {
			if tags, ok := tagged[h]; ok {
				names = append(names, tags...)
				continue
			}

			commit, err := r.repo.CommitObject(h)
			if errors.Is(err, plumbing.ErrObjectNotFound) {
				// shallow clone: history ends here
				truncated = true
				continue
			}
			if err != nil {
				return "", fmt.Errorf("reading commit %s: %w", h, err)
			}

			for _, parent := range commit.ParentHashes {
				if !seen[parent] {
					seen[parent] = true
					parents = append(parents, parent)
				}
			}
		}

		if len(names) > 0 {
			return highestTag(names), nil
		}
		generation = parents
	}

	if truncated {
		return "", fmt.Errorf("%w in fetched history of %q", ErrNoTags, branch)
	}
	return "", ErrNoTags
}

func (r *Repository) resolveBranch(branch string) (*plumbing.Hash, error) {
	if branch == "" {
		return r.repo.ResolveRevision(plumbing.Revision(plumbing.HEAD))
	}

	candidates := []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(branch),
		plumbing.NewRemoteReferenceName(r.remoteName, branch),
	}
	for _, name := range candidates {
		if ref, err := r.repo.Reference(name, true); err == nil {
			hash := ref.Hash()
			return &hash, nil
		}
	}

	return r.repo.ResolveRevision(plumbing.Revision(branch))
}

// tagsByCommit maps every tagged commit to the names of its tags. Annotated tags are
// peeled to the commit they point at.
func (r *Repository) tagsByCommit() (map[plumbing.Hash][]string, error) {
	tags, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	tagged := make(map[plumbing.Hash][]string)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}

		target := ref.Hash()
		obj, err := r.repo.TagObject(ref.Hash())
		switch err {
		case nil:
			target = obj.Target
		case plumbing.ErrObjectNotFound:
			// lightweight tag
		default:
			return err
		}

		tagged[target] = append(tagged[target], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading tags: %w", err)
	}

	return tagged, nil
}

// highestTag picks the tag with the highest semantic version. Tags that are not
// semantic versions lose to those that are; ties are broken by name.
func highestTag(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Slice(sorted, func(i, j int) bool {
		if c := semver.Compare(canonicalTag(sorted[i]), canonicalTag(sorted[j])); c != 0 {
			return c > 0
		}
		return sorted[i] > sorted[j]
	})
	return sorted[0]
}

// canonicalTag strips module prefixes ("sdk/v1.2.3") and makes sure the version has
// the "v" that golang.org/x/mod/semver expects.
func canonicalTag(tag string) string {
	_, version := path.Split(tag)
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

// Checkout switches the worktree to branch, creating the local branch from the
// remote-tracking one when needed.
func (r *Repository) Checkout(ctx context.Context, branch string) error {
	name := plumbing.NewBranchReferenceName(branch)

	if head, err := r.repo.Head(); err == nil && head.Name() == name {
		return nil
	}

	workTree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	opts := &git.CheckoutOptions{Branch: name}
	if _, err := r.repo.Reference(name, true); err != nil {
		remote, err := r.repo.Reference(plumbing.NewRemoteReferenceName(r.remoteName, branch), true)
		if err != nil {
			return fmt.Errorf("branch %q not found locally or on %s: %w", branch, r.remoteName, err)
		}
		opts.Create = true
		opts.Hash = remote.Hash()
	}

	if err := workTree.Checkout(opts); err != nil {
		return fmt.Errorf("checking out %q: %w", branch, err)
	}
	return nil
}

// ReadVersionFile reads file from the worktree
func (r *Repository) ReadVersionFile(file string) (string, error) {
	workTree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	data, err := util.ReadFile(workTree.Filesystem, worktreePath(file))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrVersionFileNotFound, file)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), nil
}

// WriteVersionFile replaces the content of file with version, without its "v" prefix
func (r *Repository) WriteVersionFile(file, version string) error {
	workTree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	content := strings.TrimPrefix(version, "v") + "\n"
	if err := util.WriteFile(workTree.Filesystem, worktreePath(file), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}

// Commit stages file and commits it as the configured author
func (r *Repository) Commit(ctx context.Context, file, message string) (string, error) {
	workTree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	if _, err := workTree.Add(worktreePath(file)); err != nil {
		return "", fmt.Errorf("staging %s: %w", file, err)
	}

	hash, err := workTree.Commit(message, &git.CommitOptions{Author: r.signature()})
	if errors.Is(err, git.ErrEmptyCommit) {
		// the file already held the version, tag the current HEAD
		head, err := r.repo.Head()
		if err != nil {
			return "", fmt.Errorf("resolving HEAD: %w", err)
		}
		return head.Hash().String(), nil
	}
	if err != nil {
		return "", fmt.Errorf("committing %s: %w", file, err)
	}
	return hash.String(), nil
}

// Tag creates an annotated tag on HEAD
func (r *Repository) Tag(ctx context.Context, name, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}

	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  r.signature(),
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	return nil
}

// Push pushes branch and tag to the remote
func (r *Repository) Push(ctx context.Context, branch, tag string) error {
	branchRef := plumbing.NewBranchReferenceName(branch)
	tagRef := plumbing.NewTagReferenceName(tag)

	remote, err := r.remote()
	if err != nil {
		return err
	}

	err = remote.PushContext(ctx, &git.PushOptions{
		RemoteName: r.remoteName,
		RemoteURL:  r.remoteURL,
		RefSpecs: []config.RefSpec{
			config.RefSpec(fmt.Sprintf("%s:%s", branchRef, branchRef)),
			config.RefSpec(fmt.Sprintf("%s:%s", tagRef, tagRef)),
		},
		Auth: r.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pushing %s and %s to %s: %w", branch, tag, r.remoteName, err)
	}
	return nil
}

// remote returns the configured remote. When the working copy has no such remote
// but a repository URL is known, an anonymous remote for that URL is used.
func (r *Repository) remote() (*git.Remote, error) {
	remote, err := r.repo.Remote(r.remoteName)
	if errors.Is(err, git.ErrRemoteNotFound) {
		if r.remoteURL == "" {
			return nil, fmt.Errorf("%w: %q: %w", ErrNoRemote, r.remoteName, err)
		}
		return git.NewRemote(r.repo.Storer, &config.RemoteConfig{
			Name: r.remoteName,
			URLs: []string{r.remoteURL},
		}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting remote %q: %w", r.remoteName, err)
	}
	return remote, nil
}

func (r *Repository) signature() *object.Signature {
	sig := r.author
	sig.When = r.now()
	return &sig
}

// worktreePath converts a user supplied path to the slash separated, root relative
// form billy and the index expect.
func worktreePath(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
}
