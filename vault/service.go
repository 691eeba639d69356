package vault

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"go-sniper/config"
	"go-sniper/database"
	"go-sniper/models"
)

// Service implements the credential vault: per-user, per-service encrypted
// secrets with at most one row per (owner, service) pair. Plaintext only
// ever leaves through Reveal.
type Service struct {
	db     *database.DB
	cipher *Cipher
}

// NewService builds a vault Service keyed by the configured secret.
func NewService(db *database.DB, cfg config.Config) (*Service, error) {
	cipher, err := NewCipher(cfg.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return &Service{db: db, cipher: cipher}, nil
}

// Upsert stores a credential for (owner, service). An existing pair is
// updated in place and reactivated; otherwise a new row is created.
func (s *Service) Upsert(userID uint, service models.Service, keyName, key string) (models.ApiKeyView, error) {
	if !service.Valid() || keyName == "" || key == "" {
		return models.ApiKeyView{}, models.ErrValidation
	}

	encrypted, err := s.cipher.Encrypt(key)
	if err != nil {
		return models.ApiKeyView{}, err
	}

	existing, err := s.db.ApiKeyByUserAndService(userID, service)
	switch {
	case err == nil:
		existing.KeyName = keyName
		existing.EncryptedKey = encrypted
		existing.IsActive = true
		if err := s.db.SaveApiKey(existing); err != nil {
			return models.ApiKeyView{}, err
		}
		logrus.Debugf("updated %s key for user %d", service, userID)
		return existing.View(), nil

	case errors.Is(err, models.ErrNotFound):
		apiKey := &models.ApiKey{
			UserID:       userID,
			Service:      service,
			KeyName:      keyName,
			EncryptedKey: encrypted,
			IsActive:     true,
		}
		if err := s.db.CreateApiKey(apiKey); err != nil {
			return models.ApiKeyView{}, err
		}
		logrus.Debugf("stored %s key for user %d", service, userID)
		return apiKey.View(), nil

	default:
		return models.ApiKeyView{}, err
	}
}

// List returns the owner's active credentials as summary views.
func (s *Service) List(userID uint) ([]models.ApiKeyView, error) {
	keys, err := s.db.ActiveApiKeysByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.ApiKeyView, 0, len(keys))
	for i := range keys {
		views = append(views, keys[i].View())
	}
	return views, nil
}

// Get returns one credential summary, owner-scoped.
func (s *Service) Get(userID, id uint) (models.ApiKeyView, error) {
	apiKey, err := s.db.ApiKeyByID(userID, id)
	if err != nil {
		return models.ApiKeyView{}, err
	}
	return apiKey.View(), nil
}

// KeyUpdate carries a partial credential update; nil fields are untouched.
type KeyUpdate struct {
	KeyName  *string
	Key      *string
	IsActive *bool
}

// Update applies a partial update to an owner-scoped credential.
func (s *Service) Update(userID, id uint, upd KeyUpdate) (models.ApiKeyView, error) {
	apiKey, err := s.db.ApiKeyByID(userID, id)
	if err != nil {
		return models.ApiKeyView{}, err
	}

	if upd.KeyName != nil {
		apiKey.KeyName = *upd.KeyName
	}
	if upd.Key != nil {
		encrypted, err := s.cipher.Encrypt(*upd.Key)
		if err != nil {
			return models.ApiKeyView{}, err
		}
		apiKey.EncryptedKey = encrypted
	}
	if upd.IsActive != nil {
		apiKey.IsActive = *upd.IsActive
	}

	if err := s.db.SaveApiKey(apiKey); err != nil {
		return models.ApiKeyView{}, err
	}
	return apiKey.View(), nil
}

// Delete hard-deletes an owner-scoped credential.
func (s *Service) Delete(userID, id uint) error {
	apiKey, err := s.db.ApiKeyByID(userID, id)
	if err != nil {
		return err
	}
	return s.db.DeleteApiKey(apiKey.ID)
}

// Reveal decrypts an owner-scoped credential. LastUsed is stamped before
// the plaintext is returned, so usage is recorded even if delivery fails.
func (s *Service) Reveal(userID, id uint) (models.RevealedKey, error) {
	apiKey, err := s.db.ApiKeyByID(userID, id)
	if err != nil {
		return models.RevealedKey{}, err
	}

	now := time.Now()
	apiKey.LastUsed = &now
	if err := s.db.SaveApiKey(apiKey); err != nil {
		return models.RevealedKey{}, err
	}

	key, err := s.cipher.Decrypt(apiKey.EncryptedKey)
	if err != nil {
		return models.RevealedKey{}, err
	}

	return models.RevealedKey{
		Service: apiKey.Service,
		KeyName: apiKey.KeyName,
		Key:     key,
	}, nil
}
