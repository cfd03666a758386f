package cargov

import (
	"fmt"
	"slices"

	"golang.org/x/mod/semver"
)

// latestReleaseTag returns the highest semver tag in tags, or "" when none
// of them is a valid "v"-prefixed semantic version.
func latestReleaseTag(tags []string) string {
	var releases []string
	for _, t := range tags {
		if semver.IsValid(t) {
			releases = append(releases, t)
		}
	}
	if len(releases) == 0 {
		return ""
	}
	semver.Sort(releases)
	return releases[len(releases)-1]
}

// CheckTagHistory refuses a release tag that already exists or that does not
// sort after the latest semver tag of the repository. Tags that are not
// semver (a custom prefix) are only checked for existence.
func CheckTagHistory(tag string, existing []string) error {
	if slices.Contains(existing, tag) {
		return fmt.Errorf("%w: %s", ErrTagExists, tag)
	}
	if !semver.IsValid(tag) {
		return nil
	}
	if latest := latestReleaseTag(existing); latest != "" && semver.Compare(tag, latest) <= 0 {
		return fmt.Errorf("%w: tag %s does not sort after the latest release tag %s", ErrVersionNotGreater, tag, latest)
	}
	return nil
}
