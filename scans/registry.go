package scans

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"go-sniper/database"
	"go-sniper/models"
)

// Registry owns scan records, their state machine and result aggregation.
// A scan's status is purely a label; no process runs behind "running".
type Registry struct {
	db *database.DB
}

// NewRegistry builds a Registry on top of the database layer.
func NewRegistry(db *database.DB) *Registry {
	return &Registry{db: db}
}

// Create records a new scan in pending state with empty results. The
// owner's scan counters are bumped in the same transaction.
func (r *Registry) Create(userID uint, name, description, target string, scanType models.ScanType, cfg *models.ScanConfig) (*models.Scan, error) {
	if name == "" || target == "" || !scanType.Valid() {
		return nil, models.ErrValidation
	}

	configuration := models.DefaultScanConfig()
	if cfg != nil {
		configuration = *cfg
	}

	scan := &models.Scan{
		UserID:        userID,
		Name:          name,
		Description:   description,
		Target:        target,
		ScanType:      scanType,
		Status:        models.StatusPending,
		Configuration: datatypes.NewJSONType(configuration),
		Results:       datatypes.NewJSONType(models.EmptyScanResults()),
	}

	err := r.db.Transaction(func(tx *database.DB) error {
		if err := tx.CreateScan(scan); err != nil {
			return err
		}

		owner, err := tx.UserByID(userID)
		if err != nil {
			return err
		}
		now := time.Now()
		owner.Stats.TotalScans++
		owner.Stats.LastScanDate = &now
		return tx.SaveUser(owner)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("created %s scan %d for target %s", scan.ScanType, scan.ID, scan.Target)
	return scan, nil
}

// List returns the owner's scans, newest-created first.
func (r *Registry) List(userID uint) ([]models.Scan, error) {
	return r.db.ScansByUser(userID)
}

// Get returns one scan, owner-scoped.
func (r *Registry) Get(userID, id uint) (*models.Scan, error) {
	return r.db.ScanByID(userID, id)
}

// Update carries a partial scan update; nil fields are untouched.
type Update struct {
	Name        *string
	Description *string
	Status      *models.ScanStatus
	Results     *models.ScanResults
}

// Apply applies a partial update to an owner-scoped scan. Status changes
// go through the transition table; startedAt and completedAt are stamped
// exactly once, on first entry to running and completed respectively.
// Results replacement is wholesale and the summary is recomputed from the
// findings rather than trusted from the caller.
func (r *Registry) Apply(userID, id uint, upd Update) (*models.Scan, error) {
	scan, err := r.db.ScanByID(userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, models.ErrValidation
		}
		scan.Name = *upd.Name
	}
	if upd.Description != nil {
		scan.Description = *upd.Description
	}

	completing := false
	if upd.Status != nil {
		status := *upd.Status
		if !status.Valid() || !canTransition(scan.Status, status) {
			return nil, models.ErrValidation
		}

		now := time.Now()
		if status == models.StatusRunning && scan.StartedAt == nil {
			scan.StartedAt = &now
		}
		if status == models.StatusCompleted && scan.CompletedAt == nil {
			scan.CompletedAt = &now
			completing = true
		}
		scan.Status = status
	}

	if upd.Results != nil {
		results := *upd.Results
		if results.Findings == nil {
			results.Findings = []map[string]any{}
		}
		results.Summary = Summarize(results.Findings)
		scan.Results = datatypes.NewJSONType(results)
	}

	err = r.db.Transaction(func(tx *database.DB) error {
		if err := tx.SaveScan(scan); err != nil {
			return err
		}
		if !completing {
			return nil
		}

		owner, err := tx.UserByID(userID)
		if err != nil {
			return err
		}
		owner.Stats.VulnerabilitiesFound += scan.Results.Data().Summary.TotalFindings
		return tx.SaveUser(owner)
	})
	if err != nil {
		return nil, err
	}
	return scan, nil
}

// Delete hard-deletes an owner-scoped scan.
func (r *Registry) Delete(userID, id uint) error {
	scan, err := r.db.ScanByID(userID, id)
	if err != nil {
		return err
	}
	return r.db.DeleteScan(scan.ID)
}
