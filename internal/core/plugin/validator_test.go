package plugin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// validMetadata returns a metadata record that passes every check.
func validMetadata(name string) Metadata {
	return Metadata{
		Name:             name,
		Description:      "A test plugin",
		Version:          "1.0.0",
		Dependencies:     []string{"user"},
		FilesGenerated:   []string{name + "/__init__.py"},
		ConfigRequired:   false,
		PostInstallNotes: "Nothing else to do.",
		Generator: func(targetDir string) []GeneratedFile {
			return []GeneratedFile{{Path: name + "/__init__.py", Content: "# generated\n"}}
		},
	}
}

func TestValidate_ValidMetadata_ReturnsNoViolations(t *testing.T) {
	violations := Validate(validMetadata("referral"))
	assert.Empty(t, violations, "well-formed metadata should produce no violations")
}

func TestValidate_Name_RejectsNonIdentifiers(t *testing.T) {
	tests := []struct {
		name       string
		pluginName string
	}{
		{name: "Empty", pluginName: ""},
		{name: "Hyphenated", pluginName: "my-plugin"},
		{name: "LeadingDigit", pluginName: "2plugin"},
		{name: "Spaces", pluginName: "my plugin"},
		{name: "Dot", pluginName: "my.plugin"},
		{name: "Unicode", pluginName: "plugîn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata("placeholder")
			m.Name = tt.pluginName

			violations := Validate(m)
			require.Len(t, violations, 1, "only the name check should fail")
			assert.IsType(t, &InvalidNameError{}, violations[0])
		})
	}
}

func TestValidate_Name_AcceptsIdentifiers(t *testing.T) {
	for _, name := range []string{"referral", "deploy_vps", "_private", "v2", "A1_b2"} {
		m := validMetadata(name)
		assert.Empty(t, Validate(m), "identifier %q should be accepted", name)
	}
}

func TestValidate_Version_RejectsNonTriples(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "TwoComponents", version: "1.0"},
		{name: "FourComponents", version: "1.0.0.0"},
		{name: "VPrefix", version: "v1.0.0"},
		{name: "PreRelease", version: "1.0.0-beta"},
		{name: "Empty", version: ""},
		{name: "EmptyComponent", version: "1..0"},
		{name: "Negative", version: "1.-1.0"},
		{name: "NonNumeric", version: "one.two.three"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetadata("referral")
			m.Version = tt.version

			violations := Validate(m)
			require.Len(t, violations, 1)

			var invalid *InvalidVersionError
			require.ErrorAs(t, violations[0], &invalid)
			assert.Equal(t, tt.version, invalid.Version, "error should carry the offending string")
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	m := Metadata{} // every field invalid

	violations := Validate(m)
	require.Len(t, violations, 6, "every check should report, not just the first")

	assert.IsType(t, &InvalidNameError{}, violations[0])
	assert.IsType(t, &MissingDescriptionError{}, violations[1])
	assert.IsType(t, &InvalidVersionError{}, violations[2])
	assert.IsType(t, &InstallerNotCallableError{}, violations[3])
	assert.IsType(t, &MissingPostInstallNotesError{}, violations[4])
	assert.IsType(t, &EmptyFileListError{}, violations[5])
}

func TestValidate_WhitespaceOnlyTextFields_AreMissing(t *testing.T) {
	m := validMetadata("referral")
	m.Description = "   \t\n"
	m.PostInstallNotes = "  "

	violations := Validate(m)
	require.Len(t, violations, 2)
	assert.IsType(t, &MissingDescriptionError{}, violations[0])
	assert.IsType(t, &MissingPostInstallNotesError{}, violations[1])
}

func TestValidate_NilGenerator_IsNotCallable(t *testing.T) {
	m := validMetadata("referral")
	m.Generator = nil

	violations := Validate(m)
	require.Len(t, violations, 1)
	assert.IsType(t, &InstallerNotCallableError{}, violations[0])
}

// Property: any name matching the identifier grammar validates, and any
// version built from three non-negative integers validates.
func TestValidate_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z_][A-Za-z0-9_]{0,30}`).Draw(t, "name")
		major := rapid.IntRange(0, 9999).Draw(t, "major")
		minor := rapid.IntRange(0, 9999).Draw(t, "minor")
		patch := rapid.IntRange(0, 9999).Draw(t, "patch")

		m := validMetadata("placeholder")
		m.Name = name
		m.Version = fmt.Sprintf("%d.%d.%d", major, minor, patch)

		violations := Validate(m)
		if len(violations) != 0 {
			t.Fatalf("expected no violations for name=%q version=%q, got %v", m.Name, m.Version, violations)
		}
	})
}
