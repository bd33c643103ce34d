// Package config resolves sweepctl settings from the process environment,
// optional .env files, and an optional .sweepctl.yaml policy file.
package config

import (
	"errors"
	"fmt"
	"strings"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrNoToken indicates that neither GITHUB_PAT nor GH_TOKEN is set.
	ErrNoToken = errors.New("no GitHub token available, set GITHUB_PAT or GH_TOKEN")
	// ErrNoRepository indicates owner or repo could not be resolved.
	ErrNoRepository = errors.New("repository owner and name are required, pass them as arguments or set GITHUB_REPOSITORY")
)

// Environment holds the CI-provided settings sweepctl reads.
type Environment struct {
	// PAT is the preferred token, typically a fine-grained PAT with
	// permission to minimize comments and resolve threads.
	PAT string `env:"GITHUB_PAT"`
	// Token is the fallback workflow token.
	Token string `env:"GH_TOKEN"`
	// RepositorySlug is the "owner/repo" slug provided by Actions.
	RepositorySlug string `env:"GITHUB_REPOSITORY"`
	// RepositoryOwner is the owner login provided by Actions.
	RepositoryOwner string `env:"GITHUB_REPOSITORY_OWNER"`
	// BotLogin is the default author login targeted by minimize-bulk.
	BotLogin string `env:"APP_BOT_NAME"`
	// StickyCommentID is the ID of the persistent status comment that must
	// never be minimized. Zero means no sticky comment exists.
	StickyCommentID int64 `env:"CLAUDE_COMMENT_ID"`
}

// FromEnv parses the process environment into an Environment.
func FromEnv() (Environment, error) {
	var e Environment
	if err := envparse.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// GitHubToken returns the credential to use for API calls, preferring
// GITHUB_PAT over GH_TOKEN.
func (e Environment) GitHubToken() (string, error) {
	for _, candidate := range []string{e.PAT, e.Token} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}
	return "", ErrNoToken
}

// ResolveRepo determines the target owner and repository name. Positional
// arguments take precedence; otherwise the Actions-provided owner and slug
// are used. Both values must be non-empty.
func (e Environment) ResolveRepo(ownerArg, repoArg string) (string, string, error) {
	owner := strings.TrimSpace(ownerArg)
	repo := strings.TrimSpace(repoArg)

	slugOwner, slugRepo := splitSlug(e.RepositorySlug)
	if owner == "" {
		owner = strings.TrimSpace(e.RepositoryOwner)
	}
	if owner == "" {
		owner = slugOwner
	}
	if repo == "" {
		repo = slugRepo
	}

	if owner == "" || repo == "" {
		return "", "", ErrNoRepository
	}
	return owner, repo, nil
}

func splitSlug(slug string) (string, string) {
	parts := strings.Split(strings.TrimSpace(slug), "/")
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// LoadEnvFiles loads .env-style files into the process environment before
// Environment parsing. Existing variables are not overridden, so real CI
// secrets always win over file-provided defaults.
func LoadEnvFiles(paths []string) error {
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %q: %w", path, err)
		}
	}
	return nil
}
