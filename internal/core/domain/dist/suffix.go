// Package dist derives the distribution suffix appended to build artifact
// names from version control provenance.
package dist

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// Prefix starts every derived suffix.
	Prefix = "mntm-"

	// DetachedRef stands in for the merge target when it cannot be resolved.
	DetachedRef = "refs/heads/detached"

	// ShortCommitLen is the number of commit id characters kept.
	ShortCommitLen = 8
)

// ErrNoCommit is returned when the current commit cannot be determined.
var ErrNoCommit = errors.New("no commit to derive distribution suffix from")

var refNamespace = regexp.MustCompile(`^refs/\w+/`)

// SanitizeRef strips a leading refs/<namespace>/ prefix and replaces path
// separators with underscores.
func SanitizeRef(ref string) string {
	name := refNamespace.ReplaceAllString(strings.TrimSpace(ref), "")
	return strings.ReplaceAll(name, "/", "_")
}

// ShortCommit truncates a commit id to ShortCommitLen characters.
func ShortCommit(commit string) (string, error) {
	commit = strings.TrimSpace(commit)
	if commit == "" {
		return "", ErrNoCommit
	}
	if len(commit) > ShortCommitLen {
		commit = commit[:ShortCommitLen]
	}
	return commit, nil
}

// Suffix combines a merge target ref and a commit id into
// mntm-<sanitized-ref>-<short-commit>.
func Suffix(ref, commit string) (string, error) {
	short, err := ShortCommit(commit)
	if err != nil {
		return "", err
	}
	return Prefix + SanitizeRef(ref) + "-" + short, nil
}
