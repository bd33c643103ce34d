package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearGitHubEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GITHUB_PAT", "GH_TOKEN", "GITHUB_REPOSITORY",
		"GITHUB_REPOSITORY_OWNER", "APP_BOT_NAME", "CLAUDE_COMMENT_ID",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestGitHubTokenPrefersPAT(t *testing.T) {
	env := Environment{PAT: "pat-token", Token: "workflow-token"}

	token, err := env.GitHubToken()
	require.NoError(t, err)
	assert.Equal(t, "pat-token", token)
}

func TestGitHubTokenFallsBackToGHToken(t *testing.T) {
	env := Environment{Token: "workflow-token"}

	token, err := env.GitHubToken()
	require.NoError(t, err)
	assert.Equal(t, "workflow-token", token)
}

func TestGitHubTokenMissing(t *testing.T) {
	env := Environment{PAT: "  ", Token: ""}

	_, err := env.GitHubToken()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestResolveRepoArgumentsWin(t *testing.T) {
	env := Environment{
		RepositoryOwner: "env-owner",
		RepositorySlug:  "env-owner/env-repo",
	}

	owner, repo, err := env.ResolveRepo("arg-owner", "arg-repo")
	require.NoError(t, err)
	assert.Equal(t, "arg-owner", owner)
	assert.Equal(t, "arg-repo", repo)
}

func TestResolveRepoFromEnvironment(t *testing.T) {
	env := Environment{
		RepositoryOwner: "env-owner",
		RepositorySlug:  "slug-owner/slug-repo",
	}

	owner, repo, err := env.ResolveRepo("", "")
	require.NoError(t, err)
	assert.Equal(t, "env-owner", owner)
	assert.Equal(t, "slug-repo", repo)
}

func TestResolveRepoFromSlugOnly(t *testing.T) {
	env := Environment{RepositorySlug: "slug-owner/slug-repo"}

	owner, repo, err := env.ResolveRepo("", "")
	require.NoError(t, err)
	assert.Equal(t, "slug-owner", owner)
	assert.Equal(t, "slug-repo", repo)
}

func TestResolveRepoUnresolvable(t *testing.T) {
	env := Environment{}

	_, _, err := env.ResolveRepo("", "")
	assert.ErrorIs(t, err, ErrNoRepository)

	_, _, err = env.ResolveRepo("owner-only", "")
	assert.ErrorIs(t, err, ErrNoRepository)
}

func TestFromEnvReadsCIVariables(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GH_TOKEN", "workflow-token")
	t.Setenv("GITHUB_REPOSITORY", "octo/widgets")
	t.Setenv("APP_BOT_NAME", "review-bot")
	t.Setenv("CLAUDE_COMMENT_ID", "98765")

	env, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "workflow-token", env.Token)
	assert.Equal(t, "octo/widgets", env.RepositorySlug)
	assert.Equal(t, "review-bot", env.BotLogin)
	assert.Equal(t, int64(98765), env.StickyCommentID)
}

func TestFromEnvStickyDefaultsToZero(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("CLAUDE_COMMENT_ID", "")

	env, err := FromEnv()
	require.NoError(t, err)
	assert.Zero(t, env.StickyCommentID)
}

func TestLoadEnvFilesDoesNotOverrideExisting(t *testing.T) {
	clearGitHubEnv(t)
	t.Setenv("GH_TOKEN", "from-ci")

	dir := t.TempDir()
	path := filepath.Join(dir, "ci.env")
	require.NoError(t, os.WriteFile(path, []byte("GH_TOKEN=from-file\nAPP_BOT_NAME=file-bot\n"), 0o600))

	require.NoError(t, LoadEnvFiles([]string{path}))

	assert.Equal(t, "from-ci", os.Getenv("GH_TOKEN"))
	assert.Equal(t, "file-bot", os.Getenv("APP_BOT_NAME"))
}

func TestLoadEnvFilesMissingFile(t *testing.T) {
	err := LoadEnvFiles([]string{filepath.Join(t.TempDir(), "absent.env")})
	assert.Error(t, err)
}

func TestLoadPolicyMissingDefaultIsEmpty(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})

	policy, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, Policy{}, policy)
}

func TestLoadPolicyExplicitMissingFails(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadPolicyParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	content := `botLogin: custom-bot
markers:
  - "<!-- custom-marker -->"
protectedCommentIDs:
  - 42
  - 43
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	policy, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, "custom-bot", policy.BotLogin)
	assert.Equal(t, []string{"<!-- custom-marker -->"}, policy.Markers)
	assert.Equal(t, []int64{42, 43}, policy.ProtectedCommentIDs)
}

func TestLoadPolicyRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("markers: [unclosed"), 0o600))

	_, err := LoadPolicy(path)
	assert.Error(t, err)
}
