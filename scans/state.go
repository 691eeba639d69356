package scans

import (
	"strings"

	"go-sniper/models"
)

// transitions is the legal edge set of the scan state machine. Completed
// and failed are terminal; resubmission means creating a new scan.
var transitions = map[models.ScanStatus][]models.ScanStatus{
	models.StatusPending: {models.StatusRunning, models.StatusFailed},
	models.StatusRunning: {models.StatusCompleted, models.StatusFailed},
}

// canTransition reports whether from -> to is a legal edge. Re-sending the
// current status is a no-op and always allowed.
func canTransition(from, to models.ScanStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Summarize counts findings by their "severity" field. Unknown or missing
// severities still count toward the total.
func Summarize(findings []map[string]any) models.ResultSummary {
	summary := models.ResultSummary{TotalFindings: len(findings)}

	for _, f := range findings {
		severity, _ := f["severity"].(string)
		switch strings.ToLower(severity) {
		case "critical":
			summary.Critical++
		case "high":
			summary.High++
		case "medium":
			summary.Medium++
		case "low":
			summary.Low++
		}
	}
	return summary
}
