package plugin

import (
	"strconv"
	"strings"
)

// Validate checks a metadata record against the structural rules every
// registered plugin must satisfy. It evaluates every rule regardless of
// earlier failures and returns all violations; a nil result means the
// metadata is well-formed. Validate is pure and safe to call before
// committing a new plugin definition.
func Validate(m Metadata) []error {
	var violations []error

	if !isIdentifier(m.Name) {
		violations = append(violations, &InvalidNameError{Name: m.Name})
	}
	if strings.TrimSpace(m.Description) == "" {
		violations = append(violations, &MissingDescriptionError{Name: m.Name})
	}
	if !isSemverTriple(m.Version) {
		violations = append(violations, &InvalidVersionError{Name: m.Name, Version: m.Version})
	}
	if m.Generator == nil {
		violations = append(violations, &InstallerNotCallableError{Name: m.Name})
	}
	if strings.TrimSpace(m.PostInstallNotes) == "" {
		violations = append(violations, &MissingPostInstallNotesError{Name: m.Name})
	}
	if len(m.FilesGenerated) == 0 {
		violations = append(violations, &EmptyFileListError{Name: m.Name})
	}

	return violations
}

// isIdentifier reports whether s is a bare identifier: letters, digits
// and underscore, not starting with a digit, non-empty.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// isSemverTriple reports whether s is exactly three dot-separated
// non-negative integers. Pre-release and build suffixes are rejected.
func isSemverTriple(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
		if _, err := strconv.ParseUint(part, 10, 64); err != nil {
			return false
		}
	}
	return true
}
