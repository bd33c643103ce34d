package sweep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCountsSuccessesAndFailuresIndependently(t *testing.T) {
	var report Report
	report.Record(10, errors.New("mutation failed"))
	report.Record(11, nil)

	assert.Equal(t, 1, report.Minimized())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, "1 minimized, 1 failed", report.Summary())
}

func TestReportEmpty(t *testing.T) {
	var report Report

	assert.Equal(t, 0, report.Minimized())
	assert.Equal(t, 0, report.Failed())
	assert.Equal(t, "0 minimized, 0 failed", report.Summary())
	assert.Empty(t, report.Outcomes())
}

func TestReportKeepsAttemptOrder(t *testing.T) {
	var report Report
	report.Record(1, nil)
	report.Record(2, errors.New("boom"))
	report.Record(3, nil)

	outcomes := report.Outcomes()
	assert.Equal(t, int64(1), outcomes[0].CommentID)
	assert.True(t, outcomes[0].Succeeded())
	assert.Equal(t, int64(2), outcomes[1].CommentID)
	assert.False(t, outcomes[1].Succeeded())
	assert.Equal(t, int64(3), outcomes[2].CommentID)
}
