package bumper

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Action runs the version bump pipeline: find the released and current versions,
// resolve the next version and publish it. Every step runs in order and the first
// error ends the run, except for the tag lookup which degrades to "unreleased".
type Action struct {
	Tags  TagReader
	Files FileReader
	Repo  RepositoryWriter
	Log   zerolog.Logger
}

// NewAction returns an Action that reads from and writes to repo
func NewAction(repo *Repository, log zerolog.Logger) *Action {
	return &Action{
		Tags:  repo,
		Files: repo,
		Repo:  repo,
		Log:   log,
	}
}

// Run executes the pipeline for cfg and returns the resolved version
func (a *Action) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a.logConfig(cfg)
	publish := cfg.Push && !cfg.DryRun

	if cfg.Fetch {
		err := a.Tags.FetchTags(ctx)
		switch {
		case errors.Is(err, ErrNoRemote):
			a.Log.Debug().Err(err).Msg("Nothing to fetch from")
		case err != nil:
			return nil, err
		}
	}

	if publish {
		if err := a.Repo.Checkout(ctx, cfg.Branch); err != nil {
			return nil, err
		}
	}

	released, err := a.Tags.LatestTag(ctx, cfg.Branch)
	if err != nil {
		a.Log.Debug().Err(err).Str("branch", cfg.Branch).Msg("Tag lookup failed")
		released = ""
	}

	current, err := a.Files.ReadVersionFile(cfg.VersionFile)
	if errors.Is(err, ErrVersionFileNotFound) {
		a.Log.Debug().Err(err).Msg("Version file is missing")
		current = ""
	} else if err != nil {
		return nil, err
	}

	res, err := Resolve(Input{
		CurrentVersion:  current,
		ReleasedVersion: released,
		DefaultVersion:  cfg.DefaultVersion,
		Bump:            cfg.Bump,
		PrereleaseText:  cfg.PrereleaseText,
		BuildNumber:     cfg.BuildNumber,
	})
	if err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		a.Log.Warn().Msg(w.String())
	}

	if !res.NewVersion {
		a.Log.Info().Msgf("No new version, current version is %s", res.Version)
		return &res, nil
	}

	a.Log.Info().Msgf("New version is %s", res.Version)
	if !publish {
		a.Log.Info().Msg("Not publishing the new version")
		return &res, nil
	}

	if err := a.publish(ctx, cfg, res.Version); err != nil {
		return nil, fmt.Errorf("publishing %s: %w", res.Version, err)
	}
	return &res, nil
}

func (a *Action) logConfig(cfg Config) {
	a.Log.Info().Msgf("Using %q as the version file", cfg.VersionFile)
	a.Log.Info().Msgf("Using %q as the production branch", cfg.Branch)
	a.Log.Info().Msgf("Using %q as the default version", cfg.DefaultVersion)
	a.Log.Info().Msgf("Using %q as bump", cfg.Bump)

	if cfg.Bump.IsPre() && cfg.PrereleaseText != "" {
		a.Log.Info().Msgf("Using %q as the pre-release text", cfg.PrereleaseText)
	}
	if cfg.BuildNumber != "" {
		a.Log.Info().Msgf("Using %q as the build number", cfg.BuildNumber)
	}
}

func (a *Action) publish(ctx context.Context, cfg Config, version string) error {
	if err := a.Repo.WriteVersionFile(cfg.VersionFile, version); err != nil {
		return err
	}

	hash, err := a.Repo.Commit(ctx, cfg.VersionFile, fmt.Sprintf("Bump version %s", version))
	if err != nil {
		return err
	}
	a.Log.Debug().Str("commit", hash).Msg("Committed version file")

	if err := a.Repo.Tag(ctx, version, version); err != nil {
		return err
	}

	if err := a.Repo.Push(ctx, cfg.Branch, version); err != nil {
		return err
	}

	a.Log.Info().Msgf("Pushed %s to %s", version, cfg.Branch)
	return nil
}
