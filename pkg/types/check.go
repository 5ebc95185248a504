package types

// CheckState is the verifier's verdict for a single resource.
type CheckState string

const (
	StateInstalled CheckState = "installed"
	StateMissing   CheckState = "missing"
	StateSkipped   CheckState = "skipped"
)

// CheckResult is one row of the verifier summary.
type CheckResult struct {
	Resource string
	State    CheckState

	// Version is best-effort metadata (tool version or resolved path).
	Version string

	// Detail explains a missing or skipped state.
	Detail string
}

// Passed reports whether the check counts as satisfied. Skipped checks do
// not fail a strict run.
func (c CheckResult) Passed() bool {
	return c.State != StateMissing
}

// Report aggregates every resource's final status.
type Report struct {
	Results []CheckResult
}

// Counts returns installed, missing and skipped totals.
func (r Report) Counts() (installed, missing, skipped int) {
	for _, res := range r.Results {
		switch res.State {
		case StateInstalled:
			installed++
		case StateMissing:
			missing++
		case StateSkipped:
			skipped++
		}
	}
	return
}

// AllPassed reports whether no resource is missing.
func (r Report) AllPassed() bool {
	_, missing, _ := r.Counts()
	return missing == 0
}
