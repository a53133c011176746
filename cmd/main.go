package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	bumper "github.com/nobrayner/version-bumper"
	"github.com/nobrayner/version-bumper/internal/logger"
)

// Version will be set by build process
var Version = "dev"

// CLI flags fall back to the environment variables the Actions runner sets for
// action inputs (INPUT_*) and for the workflow context (GITHUB_*).
type CLI struct {
	VersionFile    string `default:"VERSION" env:"INPUT_VERSION-FILE" help:"File holding the current version, relative to the repository"`
	Branch         string `env:"INPUT_BRANCH" help:"Branch whose latest tag is the released version (default: derived from --ref)"`
	Ref            string `env:"GITHUB_REF" help:"Git ref of the run, used to derive the branch"`
	DefaultVersion string `default:"0.1.0" env:"INPUT_DEFAULT-VERSION" help:"Version used when none can be found"`
	Bump           string `default:"patch" env:"INPUT_BUMP" help:"Increment to apply: major, minor, patch, premajor, preminor, prepatch or prerelease"`
	PrereleaseText string `env:"INPUT_PRERELEASE-TEXT" help:"Prerelease identifier for pre* bumps (e.g. 'beta')"`
	BuildNumber    string `env:"INPUT_BUILD-NUMBER" help:"Build metadata appended to new versions"`
	GithubToken    string `env:"INPUT_GITHUB-TOKEN" help:"Token used to fetch and push"`
	Repository     string `env:"GITHUB_REPOSITORY" help:"Repository slug (owner/name) used to build the remote URL"`
	ServerURL      string `default:"https://github.com" env:"GITHUB_SERVER_URL" help:"Git host of the repository"`
	Repo           string `short:"r" env:"GITHUB_WORKSPACE" help:"Repository path (default: current directory)"`
	Output         string `env:"GITHUB_OUTPUT" help:"File the outputs are appended to (default: stdout)"`
	Fetch          bool   `default:"true" negatable:"" env:"INPUT_FETCH" help:"Fetch tags before resolving"`
	Push           bool   `default:"true" negatable:"" env:"INPUT_PUSH" help:"Commit, tag and push new versions"`
	DryRun         bool   `env:"INPUT_DRY-RUN" help:"Resolve the version without writing anything"`
	JSON           bool   `short:"j" help:"Output as JSON"`
	Debug          bool   `env:"RUNNER_DEBUG" help:"Enable debug logging"`
	ShowVersion    bool   `help:"Show version information" name:"version"`

	stdout io.Writer `kong:"-"`
}

func main() {
	var cli CLI

	kong.Parse(&cli,
		kong.Name("version-bumper"),
		kong.Description("Resolve, commit, tag and push the next semantic version of a repository"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx)
	stop()
	if err != nil {
		logger.New().Error().Msg(err.Error())
		os.Exit(1)
	}
}

// Run executes the command
func (c *CLI) Run(ctx context.Context) error {
	if c.stdout == nil {
		c.stdout = os.Stdout
	}

	if c.ShowVersion {
		return c.showVersion()
	}

	if c.Debug {
		logger.SetDebug()
	}

	if err := bumper.MaskSecret(c.stdout, c.GithubToken); err != nil {
		return err
	}

	cfg := c.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	repoPath := c.Repo
	if repoPath == "" {
		var err error
		repoPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := bumper.OpenRepository(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository %s: %w", repoPath, err)
	}

	action := bumper.NewAction(bumper.NewRepository(repo, cfg), logger.New().Zerolog())
	res, err := action.Run(ctx, cfg)
	if err != nil {
		return err
	}

	return c.writeResult(*res)
}

// config builds the run configuration. The branch is derived from the ref here and
// nowhere else.
func (c *CLI) config() bumper.Config {
	bump := bumper.BumpKind(c.Bump)
	if strings.TrimSpace(c.Bump) == "" {
		// the runner sets unset inputs to ""
		bump = bumper.BumpPatch
	}

	return bumper.Config{
		VersionFile:    c.VersionFile,
		Branch:         bumper.BranchFromRef(c.Branch, c.Ref),
		DefaultVersion: c.DefaultVersion,
		Bump:           bump,
		PrereleaseText: c.PrereleaseText,
		BuildNumber:    c.BuildNumber,
		Token:          c.GithubToken,
		Repository:     c.Repository,
		ServerURL:      c.ServerURL,
		Fetch:          c.Fetch,
		Push:           c.Push,
		DryRun:         c.DryRun,
	}
}

func (c *CLI) writeResult(res bumper.Result) error {
	if c.JSON {
		return bumper.WriteJSON(c.stdout, res)
	}
	if c.Output != "" {
		return bumper.WriteOutputFile(c.Output, res)
	}
	return bumper.WriteOutputs(c.stdout, res)
}

func (c *CLI) showVersion() error {
	versionInfo := map[string]string{
		"version": Version,
		"name":    "version-bumper",
	}

	if c.JSON {
		return json.NewEncoder(c.stdout).Encode(versionInfo)
	}

	fmt.Fprintf(c.stdout, "version-bumper version %s\n", Version)
	return nil
}
