package cli

import (
	"testing"

	"fcube.dev/cli/internal/application/services"
	"fcube.dev/cli/internal/core/plugin"
	"github.com/stretchr/testify/assert"
)

func samplePlan() *plugin.InstallPlan {
	return &plugin.InstallPlan{
		PluginName:       "referral",
		Version:          "1.0.0",
		PostInstallNotes: "Wire the router.",
		Entries: []plugin.FilePlanEntry{
			{Path: "/proj/app/referral/__init__.py", Content: "# init", SizeBytes: 6, Action: plugin.ActionCreate},
			{Path: "/proj/app/referral/models.py", Content: "# models", SizeBytes: 8, ExistsAlready: true, Action: plugin.ActionOverwrite},
		},
	}
}

func TestRenderPreview_ContainsTableSummaryAndNotes(t *testing.T) {
	out := NewRenderer(true).RenderPreview(samplePlan())

	assert.Contains(t, out, "referral 1.0.0")
	assert.Contains(t, out, "/proj/app/referral/__init__.py")
	assert.Contains(t, out, "6 B")
	assert.Contains(t, out, "overwrite", "overwrites are shown informationally")
	assert.Contains(t, out, "2 file(s), 14 bytes total")
	assert.Contains(t, out, "Wire the router.")
	assert.Contains(t, out, "no files were created")
}

func TestRenderPreview_KeepsPlanOrder(t *testing.T) {
	out := NewRenderer(true).RenderPreview(samplePlan())

	first := "__init__.py"
	second := "models.py"
	assert.Less(t, indexOf(out, first), indexOf(out, second),
		"presentation order must match installation order")
}

func TestRenderApplied_SummarizesInstall(t *testing.T) {
	outcome := &services.InstallOutcome{
		Plan:             samplePlan(),
		WrittenPaths:     []string{"/proj/app/referral/__init__.py", "/proj/app/referral/models.py"},
		PostInstallNotes: "Wire the router.",
	}
	m := plugin.Metadata{
		Name:         "referral",
		Version:      "1.0.0",
		Dependencies: []string{"user"},
	}

	out := NewRenderer(true).RenderApplied(outcome, m, "/proj/app")

	assert.Contains(t, out, "Created: /proj/app/referral/__init__.py")
	assert.Contains(t, out, "Files created:")
	assert.Contains(t, out, "Dependencies:")
	assert.Contains(t, out, "user")
	assert.Contains(t, out, "added successfully")
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
