package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/dotsetup/pkg/types"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSuccess, "✓"},
		{StatusWarning, "!"},
		{StatusError, "✗"},
		{StatusInfo, "•"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, Glyph(tt.status))
		})
	}
}

func TestStatusStyleDistinct(t *testing.T) {
	assert.NotEqual(t, StatusStyle(StatusSuccess), StatusStyle(StatusError))
	assert.NotNil(t, StatusStyle(StatusWarning))
}

func TestRenderReport(t *testing.T) {
	report := types.Report{Results: []types.CheckResult{
		{Resource: "Neovim", State: types.StateInstalled, Version: "0.10.2"},
		{Resource: "Tmux", State: types.StateSkipped, Detail: "skipped (DOTSETUP_SKIP_TMUX)"},
		{Resource: "Fzf", State: types.StateMissing, Detail: "fzf not on PATH"},
	}}

	out := RenderReport(report)

	assert.Contains(t, out, "Neovim")
	assert.Contains(t, out, "0.10.2")
	assert.Contains(t, out, "fzf not on PATH")
	assert.Contains(t, out, "1 installed, 1 missing, 1 skipped")
}

func TestRenderReportEmpty(t *testing.T) {
	out := RenderReport(types.Report{})
	assert.Contains(t, out, "0 installed, 0 missing, 0 skipped")
}

func TestConfirmAssumeYes(t *testing.T) {
	assert.True(t, Confirm("continue?", true))
}
