package convert

import (
	"fmt"
	"strconv"
	"strings"

	apiv0 "github.com/translator-tools/reasoner-converter/api/v0"
	apiv1 "github.com/translator-tools/reasoner-converter/api/v1"
	"github.com/translator-tools/reasoner-converter/pkg/rcerrors"
)

// Version names one of the two supported TRAPI releases.
type Version string

const (
	V0 Version = apiv0.Version
	V1 Version = apiv1.Version
)

// Versions lists the supported releases, oldest first.
var Versions = []Version{V0, V1}

func (v Version) String() string {
	return string(v)
}

// Other returns the release a document in v converts to.
func (v Version) Other() Version {
	if v == V0 {
		return V1
	}
	return V0
}

// ParseVersion accepts the full release number or a shorter prefix of it,
// with or without a leading "v": "0.9.2", "0.9" and "v0" all name V0.
func ParseVersion(s string) (Version, error) {
	parts, err := parseVersion(s)
	if err != nil {
		return "", err
	}
	for _, v := range Versions {
		want, _ := parseVersion(string(v))
		if len(parts) <= len(want) && equalPrefix(parts, want) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unsupported TRAPI version %q, expected one of %v: %w", s, Versions, rcerrors.ErrInvalidArgument)
}

// parseVersion splits strings like "0.9.2", "v1.0" or "1" into their numeric
// components.
func parseVersion(versionStr string) ([]int, error) {
	versionStr = strings.TrimSpace(versionStr)
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		return nil, fmt.Errorf("empty version: %w", rcerrors.ErrInvalidArgument)
	}

	fields := strings.Split(versionStr, ".")
	const maxSemverParts = 3
	if len(fields) > maxSemverParts {
		return nil, fmt.Errorf("invalid version format %q: %w", versionStr, rcerrors.ErrInvalidArgument)
	}
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version component %q: %w", f, rcerrors.ErrInvalidArgument)
		}
		parts = append(parts, n)
	}
	return parts, nil
}

func equalPrefix(prefix, full []int) bool {
	for i := range prefix {
		if prefix[i] != full[i] {
			return false
		}
	}
	return true
}
