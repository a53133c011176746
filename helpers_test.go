package bumper

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

var testSignature = &object.Signature{
	Name:  "test",
	Email: "test@example.com",
	When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
}

// testRepoCreate creates a new in-memory git repository for testing
func testRepoCreate() (*git.Repository, error) {
	storage := memory.NewStorage()
	fs := memfs.New()
	return git.Init(storage, fs)
}

// testCommit writes filename and commits it, returning the commit hash
func testCommit(repo *git.Repository, filename, content string) (plumbing.Hash, error) {
	workTree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	if err := writeFile(workTree.Filesystem, filename, content); err != nil {
		return plumbing.ZeroHash, err
	}

	if _, err := workTree.Add(filename); err != nil {
		return plumbing.ZeroHash, err
	}

	return workTree.Commit("Commit "+filename, &git.CommitOptions{Author: testSignature})
}

// testRepoWithTags creates one commit per tag and tags it
func testRepoWithTags(repo *git.Repository, tags []string) (*git.Repository, error) {
	for _, tag := range tags {
		hash, err := testCommit(repo, "file_"+tag+".txt", "Content for "+tag)
		if err != nil {
			return nil, err
		}

		if _, err := repo.CreateTag(tag, hash, nil); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// testMergeCommit commits a merge of first and second onto the current branch
func testMergeCommit(repo *git.Repository, first, second plumbing.Hash) (plumbing.Hash, error) {
	workTree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	if err := writeFile(workTree.Filesystem, "merge.txt", "merge"); err != nil {
		return plumbing.ZeroHash, err
	}
	if _, err := workTree.Add("merge.txt"); err != nil {
		return plumbing.ZeroHash, err
	}

	return workTree.Commit("Merge release", &git.CommitOptions{
		Author:  testSignature,
		Parents: []plumbing.Hash{first, second},
	})
}

// testDropCommit removes a commit object, leaving history cut off the way a
// shallow clone is
func testDropCommit(repo *git.Repository, hash plumbing.Hash) {
	storage := repo.Storer.(*memory.Storage)
	delete(storage.ObjectStorage.Objects, hash)
	delete(storage.ObjectStorage.Commits, hash)
}

// testRepository wraps repo with a fixed clock
func testRepository(repo *git.Repository, cfg Config) *Repository {
	r := NewRepository(repo, cfg)
	r.now = func() time.Time { return testSignature.When }
	return r
}

// writeFile writes content to a file in the given filesystem
func writeFile(fs billy.Filesystem, filename, content string) error {
	file, err := fs.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write([]byte(content))
	return err
}
