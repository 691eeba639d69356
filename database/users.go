package database

import "go-sniper/models"

// CreateUser inserts a new user. Duplicate username or email surfaces
// as models.ErrConflict through the uniqueness constraints.
func (db *DB) CreateUser(u *models.User) error {
	return translate(db.conn.Create(u).Error)
}

// UserByID fetches a user by primary key.
func (db *DB) UserByID(id uint) (*models.User, error) {
	var u models.User
	if err := db.conn.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// UserByEmail fetches a user by its (lowercased) email.
func (db *DB) UserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := db.conn.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// UserByUsername fetches a user by handle.
func (db *DB) UserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := db.conn.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// SaveUser persists every field of u, including zero values.
func (db *DB) SaveUser(u *models.User) error {
	return translate(db.conn.Save(u).Error)
}

// DeleteUser hard-deletes the user row.
func (db *DB) DeleteUser(id uint) error {
	return translate(db.conn.Delete(&models.User{}, id).Error)
}

// DeleteUserCascade removes the account together with its credentials and
// scans in one transaction, so nothing orphaned survives a self-delete.
func (db *DB) DeleteUserCascade(id uint) error {
	return db.Transaction(func(tx *DB) error {
		if err := translate(tx.conn.Where("user_id = ?", id).Delete(&models.ApiKey{}).Error); err != nil {
			return err
		}
		if err := translate(tx.conn.Where("user_id = ?", id).Delete(&models.Scan{}).Error); err != nil {
			return err
		}
		return tx.DeleteUser(id)
	})
}

// ListUsers returns every account, newest first.
func (db *DB) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := db.conn.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}
