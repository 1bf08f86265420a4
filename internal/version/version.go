// Package version provides centralized version information for the s3mctl
// repository. The CLI and the local API stub are versioned independently so
// either can change without forcing a release of the other.
// All versions follow semantic versioning (semver) conventions.

package version

// S3mctlVersion holds the current s3mctl CLI version. It is also sent in the
// User-Agent header of every outbound provisioning request.
// Format: major.minor.patch[-prerelease][+build]
const S3mctlVersion = "0.1.0-dev"

// S3mstubVersion holds the current s3mstub emulator version, reported by the
// stub's health endpoint.
// Format: major.minor.patch[-prerelease][+build]
const S3mstubVersion = "0.1.0-dev"
