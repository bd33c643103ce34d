package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPolicyPath is the policy file looked up when --config is not given.
const DefaultPolicyPath = ".sweepctl.yaml"

// Policy is the optional repo-level sweep policy loaded from .sweepctl.yaml.
// It extends, never replaces, the built-in defaults.
type Policy struct {
	// BotLogin overrides the default bot author targeted by minimize-bulk
	// when neither the positional argument nor APP_BOT_NAME is set.
	BotLogin string `yaml:"botLogin,omitempty"`
	// Markers lists additional body substrings identifying sweepable
	// comments.
	Markers []string `yaml:"markers,omitempty"`
	// ProtectedCommentIDs lists comment IDs that must never be minimized,
	// in addition to the sticky comment from the environment.
	ProtectedCommentIDs []int64 `yaml:"protectedCommentIDs,omitempty"`
}

// LoadPolicy reads the policy file at path. A missing file at the default
// path is not an error; an explicitly requested file must exist.
func LoadPolicy(path string) (Policy, error) {
	if path == "" {
		path = DefaultPolicyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPolicyPath {
			return Policy{}, nil
		}
		return Policy{}, fmt.Errorf("read policy file %q: %w", path, err)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, fmt.Errorf("parse policy file %q: %w", path, err)
	}
	return p, nil
}
