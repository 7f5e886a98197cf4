// Package git implements the VCS port by shelling out to the git CLI.
package git

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.VCS using the git executable.
type Client struct {
	logger ports.Logger
}

// NewClient creates a new git Client.
func NewClient(logger ports.Logger) *Client {
	return &Client{logger: logger}
}

// CurrentRevision returns the checked-out commit of the working tree at root.
func (c *Client) CurrentRevision(ctx context.Context, root string) (domain.VersionID, error) {
	out, err := c.git(ctx, root, "rev-parse", "HEAD")
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrVCSQuery, err.Error()), "root", root)
	}
	return domain.ParseVersionID(out), nil
}

// CloneShallow performs a depth-1 clone of url into root.
func (c *Client) CloneShallow(ctx context.Context, url, root string) error {
	c.logger.Info("cloning " + url)
	if _, err := c.git(ctx, "", "clone", "--depth", "1", url, root); err != nil {
		return zerr.With(zerr.Wrap(err, "clone failed"), "url", url)
	}
	return nil
}

// ResetHard discards all working tree modifications.
func (c *Client) ResetHard(ctx context.Context, root string) error {
	if _, err := c.git(ctx, root, "reset", "--hard"); err != nil {
		return zerr.With(zerr.Wrap(err, "reset failed"), "root", root)
	}
	return nil
}

// CleanUntracked removes untracked and ignored files.
func (c *Client) CleanUntracked(ctx context.Context, root string) error {
	if _, err := c.git(ctx, root, "clean", "-xdf"); err != nil {
		return zerr.With(zerr.Wrap(err, "clean failed"), "root", root)
	}
	return nil
}

// FetchRevision shallow-fetches exactly the given revision from origin.
func (c *Client) FetchRevision(ctx context.Context, root string, rev domain.VersionID) error {
	if _, err := c.git(ctx, root, "fetch", "--depth", "1", "origin", rev.String()); err != nil {
		return zerr.With(zerr.Wrap(err, "fetch failed"), "revision", rev.String())
	}
	return nil
}

// CheckoutFetched checks out the most recently fetched head.
func (c *Client) CheckoutFetched(ctx context.Context, root string) error {
	if _, err := c.git(ctx, root, "checkout", "FETCH_HEAD"); err != nil {
		return zerr.Wrap(err, "checkout failed")
	}
	return nil
}

// git runs one git command in dir and returns its trimmed stdout. Stderr of a
// failed command is folded into the error metadata for operator diagnosis.
func (c *Client) git(ctx context.Context, dir string, args ...string) (string, error) {
	//nolint:gosec // argument lists are fixed per method, not user input
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			gitErr := zerr.With(zerr.Wrap(exitErr, "git "+args[0]+" failed"), "stderr", stderr)
			return "", zerr.With(gitErr, "exit_code", exitErr.ExitCode())
		}
		return "", zerr.Wrap(err, "git "+args[0]+" failed")
	}

	return strings.TrimSpace(string(output)), nil
}
