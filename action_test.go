package bumper_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bumper "github.com/nobrayner/version-bumper"
	mock_bumper "github.com/nobrayner/version-bumper/internal/mock/bumper"
)

type mocks struct {
	tags  *mock_bumper.MockTagReader
	files *mock_bumper.MockFileReader
	repo  *mock_bumper.MockRepositoryWriter
}

func setup(t *testing.T) (*bumper.Action, *mocks, *bytes.Buffer) {
	ctrl := gomock.NewController(t)

	m := &mocks{
		tags:  mock_bumper.NewMockTagReader(ctrl),
		files: mock_bumper.NewMockFileReader(ctrl),
		repo:  mock_bumper.NewMockRepositoryWriter(ctrl),
	}

	var buf bytes.Buffer
	action := &bumper.Action{
		Tags:  m.tags,
		Files: m.files,
		Repo:  m.repo,
		Log:   zerolog.New(&buf),
	}
	return action, m, &buf
}

func testConfig() bumper.Config {
	return bumper.Config{
		VersionFile:    "VERSION",
		Branch:         "main",
		DefaultVersion: "0.1.0",
		Bump:           bumper.BumpPatch,
		Fetch:          true,
		Push:           true,
	}
}

func TestActionRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes a new version", func(t *testing.T) {
		action, m, _ := setup(t)

		gomock.InOrder(
			m.tags.EXPECT().FetchTags(ctx).Return(nil),
			m.repo.EXPECT().Checkout(ctx, "main").Return(nil),
			m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.2.0", nil),
			m.files.EXPECT().ReadVersionFile("VERSION").Return("1.2.0\n", nil),
			m.repo.EXPECT().WriteVersionFile("VERSION", "v1.2.1").Return(nil),
			m.repo.EXPECT().Commit(ctx, "VERSION", "Bump version v1.2.1").Return("abc123", nil),
			m.repo.EXPECT().Tag(ctx, "v1.2.1", "v1.2.1").Return(nil),
			m.repo.EXPECT().Push(ctx, "main", "v1.2.1").Return(nil),
		)

		res, err := action.Run(ctx, testConfig())
		require.NoError(t, err)
		require.Equal(t, "v1.2.1", res.Version)
		require.True(t, res.NewVersion)
	})

	t.Run("No new version writes nothing", func(t *testing.T) {
		action, m, buf := setup(t)

		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.repo.EXPECT().Checkout(ctx, "main").Return(nil)
		m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.2.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("1.3.0", nil)

		res, err := action.Run(ctx, testConfig())
		require.NoError(t, err)
		require.Equal(t, "v1.3.0", res.Version)
		require.False(t, res.NewVersion)
		require.Contains(t, buf.String(), "No new version, current version is v1.3.0")
	})

	t.Run("Missing tag and file fall back to the default", func(t *testing.T) {
		action, m, buf := setup(t)

		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.repo.EXPECT().Checkout(ctx, "main").Return(nil)
		m.tags.EXPECT().LatestTag(ctx, "main").Return("", bumper.ErrNoTags)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("", bumper.ErrVersionFileNotFound)
		m.repo.EXPECT().WriteVersionFile("VERSION", "v0.1.0").Return(nil)
		m.repo.EXPECT().Commit(ctx, "VERSION", "Bump version v0.1.0").Return("abc123", nil)
		m.repo.EXPECT().Tag(ctx, "v0.1.0", "v0.1.0").Return(nil)
		m.repo.EXPECT().Push(ctx, "main", "v0.1.0").Return(nil)

		res, err := action.Run(ctx, testConfig())
		require.NoError(t, err)
		require.Equal(t, "v0.1.0", res.Version)
		require.True(t, res.NewVersion)

		out := buf.String()
		require.Contains(t, out, `"level":"warn"`)
		require.Contains(t, out, "no released version found")
		require.Contains(t, out, "no current version found")
	})

	t.Run("Any tag lookup failure counts as unreleased", func(t *testing.T) {
		action, m, _ := setup(t)

		cfg := testConfig()
		cfg.Fetch = false
		cfg.DryRun = true

		m.tags.EXPECT().LatestTag(ctx, "main").Return("", errors.New("reference not found"))
		m.files.EXPECT().ReadVersionFile("VERSION").Return("2.0.0", nil)

		res, err := action.Run(ctx, cfg)
		require.NoError(t, err)
		require.Equal(t, "v2.0.0", res.Version)
		require.False(t, res.NewVersion)
	})

	t.Run("Invalid default version stops before any I/O", func(t *testing.T) {
		action, _, _ := setup(t)

		cfg := testConfig()
		cfg.DefaultVersion = "one"

		_, err := action.Run(ctx, cfg)
		require.ErrorIs(t, err, bumper.ErrInvalidConfiguration)
	})

	t.Run("Unknown bump stops before any I/O", func(t *testing.T) {
		action, _, _ := setup(t)

		cfg := testConfig()
		cfg.Bump = "huge"

		_, err := action.Run(ctx, cfg)
		require.ErrorIs(t, err, bumper.ErrInvalidConfiguration)
	})

	t.Run("Fetch failure is returned", func(t *testing.T) {
		action, m, _ := setup(t)

		fetchErr := errors.New("authentication required")
		m.tags.EXPECT().FetchTags(ctx).Return(fetchErr)

		_, err := action.Run(ctx, testConfig())
		require.ErrorIs(t, err, fetchErr)
	})

	t.Run("Working copy without a remote skips the fetch", func(t *testing.T) {
		action, m, _ := setup(t)

		cfg := testConfig()
		cfg.Push = false

		m.tags.EXPECT().FetchTags(ctx).Return(fmt.Errorf("%w: %q", bumper.ErrNoRemote, "origin"))
		m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.0.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("1.0.0", nil)

		res, err := action.Run(ctx, cfg)
		require.NoError(t, err)
		require.Equal(t, "v1.0.1", res.Version)
	})

	t.Run("Checkout failure is returned", func(t *testing.T) {
		action, m, _ := setup(t)

		checkoutErr := errors.New("branch not found")
		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.repo.EXPECT().Checkout(ctx, "main").Return(checkoutErr)

		_, err := action.Run(ctx, testConfig())
		require.ErrorIs(t, err, checkoutErr)
	})

	t.Run("Read failure other than a missing file is returned", func(t *testing.T) {
		action, m, _ := setup(t)

		readErr := errors.New("permission denied")
		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.repo.EXPECT().Checkout(ctx, "main").Return(nil)
		m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.0.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("", readErr)

		_, err := action.Run(ctx, testConfig())
		require.ErrorIs(t, err, readErr)
	})

	t.Run("Push failure is returned with the version", func(t *testing.T) {
		action, m, _ := setup(t)

		pushErr := errors.New("non-fast-forward update")
		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.repo.EXPECT().Checkout(ctx, "main").Return(nil)
		m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.2.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("1.2.0", nil)
		m.repo.EXPECT().WriteVersionFile("VERSION", "v1.2.1").Return(nil)
		m.repo.EXPECT().Commit(ctx, "VERSION", "Bump version v1.2.1").Return("abc123", nil)
		m.repo.EXPECT().Tag(ctx, "v1.2.1", "v1.2.1").Return(nil)
		m.repo.EXPECT().Push(ctx, "main", "v1.2.1").Return(pushErr)

		_, err := action.Run(ctx, testConfig())
		require.ErrorIs(t, err, pushErr)
		require.ErrorContains(t, err, "publishing v1.2.1")
	})

	t.Run("Commit failure skips tag and push", func(t *testing.T) {
		action, m, _ := setup(t)

		commitErr := errors.New("nothing to commit")
		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.repo.EXPECT().Checkout(ctx, "main").Return(nil)
		m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.2.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("1.2.0", nil)
		m.repo.EXPECT().WriteVersionFile("VERSION", "v1.2.1").Return(nil)
		m.repo.EXPECT().Commit(ctx, "VERSION", "Bump version v1.2.1").Return("", commitErr)

		_, err := action.Run(ctx, testConfig())
		require.ErrorIs(t, err, commitErr)
	})

	t.Run("Dry run resolves without writing", func(t *testing.T) {
		action, m, buf := setup(t)

		cfg := testConfig()
		cfg.DryRun = true
		cfg.Bump = bumper.BumpPreminor
		cfg.PrereleaseText = "beta"
		cfg.BuildNumber = "12"

		m.tags.EXPECT().FetchTags(ctx).Return(nil)
		m.tags.EXPECT().LatestTag(ctx, "main").Return("v1.2.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("1.2.0", nil)

		res, err := action.Run(ctx, cfg)
		require.NoError(t, err)
		require.Equal(t, "v1.3.0-beta.0+12", res.Version)
		require.True(t, res.NewVersion)

		out := buf.String()
		require.Contains(t, out, `Using \"beta\" as the pre-release text`)
		require.Contains(t, out, `Using \"12\" as the build number`)
		require.Contains(t, out, "Not publishing the new version")
	})

	t.Run("Push disabled without a branch resolves from HEAD", func(t *testing.T) {
		action, m, _ := setup(t)

		cfg := testConfig()
		cfg.Branch = ""
		cfg.Push = false
		cfg.Fetch = false

		m.tags.EXPECT().LatestTag(ctx, "").Return("v0.3.0", nil)
		m.files.EXPECT().ReadVersionFile("VERSION").Return("0.3.0", nil)

		res, err := action.Run(ctx, cfg)
		require.NoError(t, err)
		require.Equal(t, "v0.3.1", res.Version)
	})
}
