package style

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotsetup/pkg/types"
)

// checkStatus maps a verifier state onto a display status.
func checkStatus(state types.CheckState) Status {
	switch state {
	case types.StateInstalled:
		return StatusSuccess
	case types.StateMissing:
		return StatusError
	default:
		return StatusWarning
	}
}

// RenderReport renders the verifier's final pass/fail summary table.
func RenderReport(report types.Report) string {
	rows := pterm.TableData{{"", "Resource", "Status", "Details"}}

	for _, res := range report.Results {
		status := checkStatus(res.State)
		detail := res.Version
		if res.Detail != "" {
			detail = res.Detail
		}
		rows = append(rows, []string{
			StatusStyle(status).Sprint(Glyph(status)),
			res.Resource,
			string(res.State),
			detail,
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		// Rendering never fails with static data; fall back to nothing
		// rather than panicking in a summary path.
		return ""
	}

	installed, missing, skipped := report.Counts()
	out += "\n" + pterm.Sprintf("%d installed, %d missing, %d skipped\n",
		installed, missing, skipped)
	return out
}

// Confirm asks the user a yes/no question and returns the answer. When
// assumeYes is set the prompt is skipped.
func Confirm(message string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	ok, _ := pterm.DefaultInteractiveConfirm.Show(message)
	return ok
}
