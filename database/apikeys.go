package database

import "go-sniper/models"

// CreateApiKey inserts a new credential row. A concurrent create for the
// same (user, service) pair hits the compound uniqueness index and
// surfaces as models.ErrConflict.
func (db *DB) CreateApiKey(k *models.ApiKey) error {
	return translate(db.conn.Create(k).Error)
}

// ActiveApiKeysByUser returns the user's active credentials.
func (db *DB) ActiveApiKeysByUser(userID uint) ([]models.ApiKey, error) {
	var keys []models.ApiKey
	err := db.conn.Where("user_id = ? AND is_active = ?", userID, true).Find(&keys).Error
	if err != nil {
		return nil, translate(err)
	}
	return keys, nil
}

// ApiKeyByUserAndService fetches the single credential for a (user, service)
// pair, active or not.
func (db *DB) ApiKeyByUserAndService(userID uint, service models.Service) (*models.ApiKey, error) {
	var k models.ApiKey
	err := db.conn.Where("user_id = ? AND service = ?", userID, service).First(&k).Error
	if err != nil {
		return nil, translate(err)
	}
	return &k, nil
}

// ApiKeyByID fetches a credential scoped to its owner. A foreign or missing
// id is models.ErrNotFound either way.
func (db *DB) ApiKeyByID(userID, id uint) (*models.ApiKey, error) {
	var k models.ApiKey
	err := db.conn.Where("id = ? AND user_id = ?", id, userID).First(&k).Error
	if err != nil {
		return nil, translate(err)
	}
	return &k, nil
}

// SaveApiKey persists every field of k, including zero values.
func (db *DB) SaveApiKey(k *models.ApiKey) error {
	return translate(db.conn.Save(k).Error)
}

// DeleteApiKey hard-deletes the credential row.
func (db *DB) DeleteApiKey(id uint) error {
	return translate(db.conn.Delete(&models.ApiKey{}, id).Error)
}
