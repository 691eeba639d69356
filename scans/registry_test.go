package scans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sniper/config"
	"go-sniper/database"
	"go-sniper/models"
)

func newTestRegistry(t *testing.T) (*Registry, *database.DB, *models.User) {
	t.Helper()

	db, err := database.New(config.Config{DBPath: ":memory:"})
	require.NoError(t, err)

	owner := &models.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "x",
		Role:         models.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, db.CreateUser(owner))

	return NewRegistry(db), db, owner
}

func statusPtr(s models.ScanStatus) *models.ScanStatus { return &s }

func TestRegistry_Create(t *testing.T) {
	registry, db, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "web scan", "", "https://example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, scan.Status)
	assert.Nil(t, scan.StartedAt)
	assert.Nil(t, scan.CompletedAt)

	cfg := scan.Configuration.Data()
	assert.Empty(t, cfg.Tools)
	assert.Empty(t, cfg.Options)

	results := scan.Results.Data()
	assert.Empty(t, results.Findings)
	assert.Equal(t, models.ResultSummary{}, results.Summary)

	// Owner counters move with the creation, in the same transaction.
	reloaded, err := db.UserByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Stats.TotalScans)
	assert.NotNil(t, reloaded.Stats.LastScanDate)
}

func TestRegistry_CreateValidation(t *testing.T) {
	registry, _, owner := newTestRegistry(t)

	_, err := registry.Create(owner.ID, "", "", "https://example.com", models.ScanTypePort, nil)
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = registry.Create(owner.ID, "scan", "", "", models.ScanTypePort, nil)
	assert.ErrorIs(t, err, models.ErrValidation)
	_, err = registry.Create(owner.ID, "scan", "", "https://example.com", "ping", nil)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegistry_ListNewestFirst(t *testing.T) {
	registry, db, owner := newTestRegistry(t)

	first, err := registry.Create(owner.ID, "first", "", "a.example.com", models.ScanTypePort, nil)
	require.NoError(t, err)
	second, err := registry.Create(owner.ID, "second", "", "b.example.com", models.ScanTypeSubdomain, nil)
	require.NoError(t, err)

	// Force distinct creation instants; SQLite timestamps would otherwise tie.
	first.CreatedAt = first.CreatedAt.Add(-time.Second)
	require.NoError(t, db.SaveScan(first))

	list, err := registry.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestRegistry_StartedAtStampedOnce(t *testing.T) {
	registry, _, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "scan", "", "example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	started, err := registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusRunning)})
	require.NoError(t, err)
	require.NotNil(t, started.StartedAt)
	stamp := *started.StartedAt

	// Re-sending running must not move the timestamp.
	again, err := registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusRunning)})
	require.NoError(t, err)
	require.NotNil(t, again.StartedAt)
	assert.True(t, again.StartedAt.Equal(stamp))
}

func TestRegistry_CompletedAtStampedOnce(t *testing.T) {
	registry, _, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "scan", "", "example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusRunning)})
	require.NoError(t, err)
	completed, err := registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	stamp := *completed.CompletedAt

	again, err := registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)
	assert.True(t, again.CompletedAt.Equal(stamp))
}

func TestRegistry_IllegalTransitions(t *testing.T) {
	registry, _, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "scan", "", "example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusCompleted)})
	assert.ErrorIs(t, err, models.ErrValidation, "pending cannot jump to completed")

	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr("cancelled")})
	assert.ErrorIs(t, err, models.ErrValidation, "unknown status")

	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusRunning)})
	require.NoError(t, err)
	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusFailed)})
	require.NoError(t, err)

	// Failed is terminal.
	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusRunning)})
	assert.ErrorIs(t, err, models.ErrValidation)

	current, err := registry.Get(owner.ID, scan.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, current.Status)
}

func TestRegistry_ResultsSummaryDerived(t *testing.T) {
	registry, db, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "scan", "", "example.com", models.ScanTypeVulnerability, nil)
	require.NoError(t, err)
	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusRunning)})
	require.NoError(t, err)

	updated, err := registry.Apply(owner.ID, scan.ID, Update{
		Status: statusPtr(models.StatusCompleted),
		Results: &models.ScanResults{
			Findings: []map[string]any{
				{"title": "cve-2021-44228", "severity": "critical"},
				{"title": "weak tls", "severity": "low"},
			},
			// Caller-supplied counts are ignored; the summary is recomputed.
			Summary:   models.ResultSummary{TotalFindings: 99, Critical: 99},
			RawOutput: "raw scanner text",
		},
	})
	require.NoError(t, err)

	summary := updated.Results.Data().Summary
	assert.Equal(t, 2, summary.TotalFindings)
	assert.Equal(t, 1, summary.Critical)
	assert.Equal(t, 1, summary.Low)
	assert.Equal(t, "raw scanner text", updated.Results.Data().RawOutput)

	// Completion feeds the owner's vulnerability counter once.
	reloaded, err := db.UserByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Stats.VulnerabilitiesFound)

	_, err = registry.Apply(owner.ID, scan.ID, Update{Status: statusPtr(models.StatusCompleted)})
	require.NoError(t, err)
	reloaded, err = db.UserByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Stats.VulnerabilitiesFound)
}

func TestRegistry_PartialUpdate(t *testing.T) {
	registry, _, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "scan", "initial", "example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	name := "renamed"
	updated, err := registry.Apply(owner.ID, scan.ID, Update{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "initial", updated.Description)
	assert.Equal(t, models.StatusPending, updated.Status)

	empty := ""
	_, err = registry.Apply(owner.ID, scan.ID, Update{Name: &empty})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRegistry_OwnershipIsolation(t *testing.T) {
	registry, db, owner := newTestRegistry(t)

	other := &models.User{Username: "bob", Email: "b@x.com", PasswordHash: "x", Role: models.RoleUser, IsActive: true}
	require.NoError(t, db.CreateUser(other))

	scan, err := registry.Create(owner.ID, "scan", "", "example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	_, err = registry.Get(other.ID, scan.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = registry.Apply(other.ID, scan.ID, Update{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, registry.Delete(other.ID, scan.ID), models.ErrNotFound)

	list, err := registry.List(other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRegistry_Delete(t *testing.T) {
	registry, _, owner := newTestRegistry(t)

	scan, err := registry.Create(owner.ID, "scan", "", "example.com", models.ScanTypePort, nil)
	require.NoError(t, err)

	require.NoError(t, registry.Delete(owner.ID, scan.ID))
	_, err = registry.Get(owner.ID, scan.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
