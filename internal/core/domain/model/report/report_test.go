package report_test

import (
	"testing"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/report"
	"printworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filedAt = time.Date(2026, 4, 20, 15, 0, 0, 0, time.UTC)

func bleedIssue() report.Issue {
	return report.Issue{
		Kind:        "BLEED",
		Severity:    report.SeverityHigh,
		Description: "artwork has no bleed margin",
		Suggestion:  "extend the background 3mm past the trim line",
	}
}

func TestNewValidationReport(t *testing.T) {
	t.Run("should file a passed report", func(t *testing.T) {
		r, err := report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.OutcomePassed, nil, kernel.ZeroMoney(), "clean file", filedAt,
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.Passed())
		assert.Empty(t, r.Issues())
		assert.Equal(t, "clean file", r.Notes())
	})

	t.Run("should file a failed report with issues and a fix cost", func(t *testing.T) {
		fixCost, err := kernel.NewMoney(120000)
		require.NoError(t, err)

		r, err := report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.OutcomeFailed, []report.Issue{bleedIssue()}, fixCost, "", filedAt,
		)

		require.NoError(t, err)
		assert.False(t, r.Passed())
		assert.Len(t, r.Issues(), 1)
		assert.Equal(t, int64(120000), r.FixCost().Amount())
	})

	t.Run("should require issues on a failed report", func(t *testing.T) {
		_, err := report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.OutcomeFailed, nil, kernel.ZeroMoney(), "", filedAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject issues on a passed report", func(t *testing.T) {
		_, err := report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.OutcomePassed, []report.Issue{bleedIssue()}, kernel.ZeroMoney(), "", filedAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a fix cost on a passed report", func(t *testing.T) {
		fixCost, err := kernel.NewMoney(100)
		require.NoError(t, err)

		_, err = report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.OutcomePassed, nil, fixCost, "", filedAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a malformed issue", func(t *testing.T) {
		issue := bleedIssue()
		issue.Description = ""
		issue.Severity = report.Severity("CRITICAL")

		_, err := report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.OutcomeFailed, []report.Issue{issue}, kernel.ZeroMoney(), "", filedAt,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "severity")
		assert.Contains(t, err.Error(), "issue.description")
	})

	t.Run("should reject unknown outcome", func(t *testing.T) {
		_, err := report.NewValidationReport(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			report.Outcome("MAYBE"), nil, kernel.ZeroMoney(), "", filedAt,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValidationReportIssuesAreCopied(t *testing.T) {
	fixCost, err := kernel.NewMoney(50000)
	require.NoError(t, err)

	r, err := report.NewValidationReport(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		report.OutcomeFailed, []report.Issue{bleedIssue()}, fixCost, "", filedAt,
	)
	require.NoError(t, err)

	got := r.Issues()
	got[0].Description = "mutated"

	assert.Equal(t, "artwork has no bleed margin", r.Issues()[0].Description)
}

func TestValidationReportValidate(t *testing.T) {
	var r report.ValidationReport
	assert.ErrorIs(t, r.Validate(), report.ErrReportIsNotConstructed)
}
