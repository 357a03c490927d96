package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/casapps/cascolor/internal/utils"
)

// RepoSlug is the GitHub repository releases are published to
const RepoSlug = "casapps/cascolor"

var (
	// ErrNotFound means the release feed had nothing for the channel
	ErrNotFound = errors.New("no release found")
	// ErrDevelopmentVersion means the running binary has no release version
	ErrDevelopmentVersion = errors.New("cannot check for updates from a development version")
)

// Channel selects which releases are considered
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelBeta   Channel = "beta"
	ChannelDaily  Channel = "daily"
)

// InvalidChannelError is returned for a channel name outside stable/beta/daily
type InvalidChannelError struct {
	Channel string
}

func (e *InvalidChannelError) Error() string {
	return fmt.Sprintf("invalid update channel %q (expected stable, beta or daily)", e.Channel)
}

// ParseChannel accepts a channel name in any case. Empty means stable.
func ParseChannel(name string) (Channel, error) {
	switch c := Channel(strings.ToLower(strings.TrimSpace(name))); c {
	case "":
		return ChannelStable, nil
	case ChannelStable, ChannelBeta, ChannelDaily:
		return c, nil
	}
	return "", &InvalidChannelError{Channel: name}
}

// Prerelease reports whether the channel accepts prerelease builds
func (c Channel) Prerelease() bool {
	return c == ChannelBeta || c == ChannelDaily
}

// Source looks up the newest published version
type Source interface {
	Latest(ctx context.Context, prerelease bool) (version string, found bool, err error)
}

// GitHubSource reads releases through go-selfupdate
type GitHubSource struct {
	Slug string
}

func (g GitHubSource) Latest(ctx context.Context, prerelease bool) (string, bool, error) {
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Prerelease: prerelease})
	if err != nil {
		return "", false, fmt.Errorf("failed to create updater: %w", err)
	}

	release, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(g.Slug))
	if err != nil {
		return "", false, fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return "", false, nil
	}
	return release.Version(), true, nil
}

// Result describes the outcome of one check
type Result struct {
	Channel   Channel
	Current   string
	Latest    string
	Available bool
}

// Checker compares the running version against a Source
type Checker struct {
	Source Source
}

// Check resolves channel, asks the source for its newest release and
// compares it against current.
func (c Checker) Check(ctx context.Context, channel, current string) (*Result, error) {
	ch, err := ParseChannel(channel)
	if err != nil {
		return nil, err
	}

	cur, err := semver.NewVersion(current)
	if err != nil {
		return nil, ErrDevelopmentVersion
	}

	utils.Debug("Checking %s channel for releases newer than %s", ch, cur)

	latest, found, err := c.Source.Latest(ctx, ch.Prerelease())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	lv, err := semver.NewVersion(latest)
	if err != nil {
		return nil, fmt.Errorf("release has invalid version %q: %w", latest, err)
	}

	return &Result{
		Channel:   ch,
		Current:   cur.String(),
		Latest:    lv.String(),
		Available: lv.GreaterThan(cur),
	}, nil
}

// Check queries GitHub releases of RepoSlug
func Check(ctx context.Context, channel, current string) (*Result, error) {
	return Checker{Source: GitHubSource{Slug: RepoSlug}}.Check(ctx, channel, current)
}
