// Package domain contains the core types of the bootstrapper.
package domain

import "strings"

// VersionID is an opaque version token: a git revision hash or a declared
// version string. Only equality is meaningful; no ordering is assumed.
type VersionID string

// ParseVersionID trims surrounding whitespace from a raw token read from a
// version or stamp file.
func ParseVersionID(raw string) VersionID {
	return VersionID(strings.TrimSpace(raw))
}

// Short returns the leading seven characters of the token, the form used in
// artifact download URLs. Shorter tokens are returned unchanged.
func (v VersionID) Short() string {
	const n = 7
	if len(v) < n {
		return string(v)
	}
	return string(v[:n])
}

// String returns the token.
func (v VersionID) String() string {
	return string(v)
}

// DownloadURL builds the engine artifact URL for a desired version on the
// given platform: <base>/download/<short-version>/<platform>-x64.zip.
func DownloadURL(base string, v VersionID, p Platform) string {
	return strings.TrimSuffix(base, "/") + "/download/" + v.Short() + "/" + p.String() + "-x64.zip"
}
