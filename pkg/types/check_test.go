package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCounts(t *testing.T) {
	report := Report{Results: []CheckResult{
		{Resource: "a", State: StateInstalled},
		{Resource: "b", State: StateInstalled},
		{Resource: "c", State: StateMissing},
		{Resource: "d", State: StateSkipped},
	}}

	installed, missing, skipped := report.Counts()
	assert.Equal(t, 2, installed)
	assert.Equal(t, 1, missing)
	assert.Equal(t, 1, skipped)
	assert.False(t, report.AllPassed())
}

func TestAllPassedIgnoresSkipped(t *testing.T) {
	report := Report{Results: []CheckResult{
		{Resource: "a", State: StateInstalled},
		{Resource: "b", State: StateSkipped},
	}}
	assert.True(t, report.AllPassed())
}

func TestCheckResultPassed(t *testing.T) {
	assert.True(t, CheckResult{State: StateInstalled}.Passed())
	assert.True(t, CheckResult{State: StateSkipped}.Passed())
	assert.False(t, CheckResult{State: StateMissing}.Passed())
}
