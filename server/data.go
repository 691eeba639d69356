package server

import "go-sniper/models"

// response defines the JSON envelope returned by every endpoint.
type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(data any) response {
	return response{Success: true, Data: data}
}

func okCount(data any, count int) response {
	return response{Success: true, Data: data, Count: &count}
}

func okMessage(message string) response {
	return response{Success: true, Message: message}
}

// registerRequest defines the JSON structure for registration requests.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest defines the JSON structure for login requests.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// apiKeyCreateRequest defines the JSON structure for vault upserts.
type apiKeyCreateRequest struct {
	Service models.Service `json:"service"`
	KeyName string         `json:"keyName"`
	Key     string         `json:"key"`
}

// apiKeyUpdateRequest defines the JSON structure for partial key updates.
// Pointer fields distinguish "absent" from zero values.
type apiKeyUpdateRequest struct {
	KeyName  *string `json:"keyName"`
	Key      *string `json:"key"`
	IsActive *bool   `json:"isActive"`
}

// scanCreateRequest defines the JSON structure for new scans.
type scanCreateRequest struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Target        string             `json:"target"`
	ScanType      models.ScanType    `json:"scanType"`
	Configuration *models.ScanConfig `json:"configuration"`
}

// scanUpdateRequest defines the JSON structure for partial scan updates.
type scanUpdateRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Status      *models.ScanStatus  `json:"status"`
	Results     *models.ScanResults `json:"results"`
}

// preferencesPatch defines a partial preference update.
type preferencesPatch struct {
	Notifications    *bool `json:"notifications"`
	Newsletter       *bool `json:"newsletter"`
	TwoFactorEnabled *bool `json:"twoFactorEnabled"`
}

// profileUpdateRequest defines the JSON structure for profile updates.
type profileUpdateRequest struct {
	Username    *string           `json:"username"`
	Email       *string           `json:"email"`
	FullName    *string           `json:"fullName"`
	Bio         *string           `json:"bio"`
	Company     *string           `json:"company"`
	Location    *string           `json:"location"`
	Website     *string           `json:"website"`
	Phone       *string           `json:"phone"`
	Avatar      *string           `json:"avatar"`
	Preferences *preferencesPatch `json:"preferences"`
}
