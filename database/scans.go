package database

import "go-sniper/models"

// CreateScan inserts a new scan row.
func (db *DB) CreateScan(s *models.Scan) error {
	return translate(db.conn.Create(s).Error)
}

// ScansByUser returns the user's scans, newest-created first.
func (db *DB) ScansByUser(userID uint) ([]models.Scan, error) {
	var scans []models.Scan
	err := db.conn.Where("user_id = ?", userID).Order("created_at DESC").Find(&scans).Error
	if err != nil {
		return nil, translate(err)
	}
	return scans, nil
}

// ScanByID fetches a scan scoped to its owner. A foreign or missing id is
// models.ErrNotFound either way.
func (db *DB) ScanByID(userID, id uint) (*models.Scan, error) {
	var s models.Scan
	err := db.conn.Where("id = ? AND user_id = ?", id, userID).First(&s).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

// SaveScan persists every field of s, including zero values.
func (db *DB) SaveScan(s *models.Scan) error {
	return translate(db.conn.Save(s).Error)
}

// DeleteScan hard-deletes the scan row.
func (db *DB) DeleteScan(id uint) error {
	return translate(db.conn.Delete(&models.Scan{}, id).Error)
}
