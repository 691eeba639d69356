package models

import "time"

// ApiKeyView is the summary projection of an ApiKey. The ciphertext never
// appears here; plaintext is only ever returned through RevealedKey.
type ApiKeyView struct {
	ID        uint       `json:"id"`
	Service   Service    `json:"service"`
	KeyName   string     `json:"keyName"`
	IsActive  bool       `json:"isActive"`
	LastUsed  *time.Time `json:"lastUsed,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// View projects k to its summary form.
func (k *ApiKey) View() ApiKeyView {
	return ApiKeyView{
		ID:        k.ID,
		Service:   k.Service,
		KeyName:   k.KeyName,
		IsActive:  k.IsActive,
		LastUsed:  k.LastUsed,
		CreatedAt: k.CreatedAt,
	}
}

// RevealedKey carries a decrypted credential back to its owner.
type RevealedKey struct {
	Service Service `json:"service"`
	KeyName string  `json:"keyName"`
	Key     string  `json:"key"`
}

// AuthView is the slim account projection returned by register/login.
type AuthView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Token    string `json:"token,omitempty"`
}

// AuthView projects u for authentication responses, attaching token.
func (u *User) AuthView(token string) AuthView {
	return AuthView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Token:    token,
	}
}
