package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role defines the access level of a User.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Service enumerates the third-party integrations an ApiKey can belong to.
type Service string

const (
	ServiceShodan         Service = "shodan"
	ServiceCensys         Service = "censys"
	ServiceGithub         Service = "github"
	ServiceSlack          Service = "slack"
	ServiceVirusTotal     Service = "virustotal"
	ServiceHunterIO       Service = "hunterio"
	ServiceHaveIBeenPwned Service = "haveibeenpwned"
	ServiceSecurityTrails Service = "securitytrails"
)

var services = map[Service]bool{
	ServiceShodan:         true,
	ServiceCensys:         true,
	ServiceGithub:         true,
	ServiceSlack:          true,
	ServiceVirusTotal:     true,
	ServiceHunterIO:       true,
	ServiceHaveIBeenPwned: true,
	ServiceSecurityTrails: true,
}

// Valid reports whether s is a supported integration.
func (s Service) Valid() bool {
	return services[s]
}

// ScanType enumerates the supported kinds of scans.
type ScanType string

const (
	ScanTypePort          ScanType = "port"
	ScanTypeVulnerability ScanType = "vulnerability"
	ScanTypeSubdomain     ScanType = "subdomain"
	ScanTypeEmail         ScanType = "email"
	ScanTypeBreach        ScanType = "breach"
	ScanTypeCustom        ScanType = "custom"
)

var scanTypes = map[ScanType]bool{
	ScanTypePort:          true,
	ScanTypeVulnerability: true,
	ScanTypeSubdomain:     true,
	ScanTypeEmail:         true,
	ScanTypeBreach:        true,
	ScanTypeCustom:        true,
}

// Valid reports whether t is a supported scan type.
func (t ScanType) Valid() bool {
	return scanTypes[t]
}

// ScanStatus is the lifecycle state of a Scan.
// pending -> running -> {completed, failed}; completed and failed are terminal.
type ScanStatus string

const (
	StatusPending   ScanStatus = "pending"
	StatusRunning   ScanStatus = "running"
	StatusCompleted ScanStatus = "completed"
	StatusFailed    ScanStatus = "failed"
)

var scanStatuses = map[ScanStatus]bool{
	StatusPending:   true,
	StatusRunning:   true,
	StatusCompleted: true,
	StatusFailed:    true,
}

// Valid reports whether s is a known status value.
func (s ScanStatus) Valid() bool {
	return scanStatuses[s]
}

// Preferences holds per-user notification settings.
type Preferences struct {
	Notifications    bool `json:"notifications"`
	Newsletter       bool `json:"newsletter"`
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
}

// UserStats holds denormalized scan counters. The scan registry maintains
// them inside its own transactions; nothing else writes them.
type UserStats struct {
	TotalScans           int        `json:"totalScans"`
	VulnerabilitiesFound int        `json:"vulnerabilitiesFound"`
	LastScanDate         *time.Time `json:"lastScanDate,omitempty"`
}

// User defines a registered account.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         Role       `gorm:"size:16;not null;default:user" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`

	// Display-only profile fields.
	FullName string `gorm:"size:100" json:"fullName,omitempty"`
	Bio      string `gorm:"size:500" json:"bio,omitempty"`
	Company  string `gorm:"size:100" json:"company,omitempty"`
	Location string `gorm:"size:100" json:"location,omitempty"`
	Website  string `gorm:"size:255" json:"website,omitempty"`
	Phone    string `gorm:"size:20" json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`

	Preferences Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	Stats       UserStats   `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApiKey defines an encrypted third-party credential owned by one User.
// The (user, service) pair is unique: resubmitting a key for the same
// service updates the existing row in place.
type ApiKey struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_api_keys_user_service" json:"userId"`
	Service      Service    `gorm:"size:32;not null;uniqueIndex:idx_api_keys_user_service" json:"service"`
	KeyName      string     `gorm:"size:100;not null" json:"keyName"`
	EncryptedKey string     `gorm:"not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"isActive"`
	LastUsed     *time.Time `json:"lastUsed,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ScanConfig defines the caller-supplied configuration of a Scan.
type ScanConfig struct {
	Tools   []string       `json:"tools"`
	Options map[string]any `json:"options"`
}

// DefaultScanConfig returns the configuration used when the caller omits one.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{Tools: []string{}, Options: map[string]any{}}
}

// ResultSummary counts findings by severity.
type ResultSummary struct {
	TotalFindings int `json:"totalFindings"`
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Medium        int `json:"medium"`
	Low           int `json:"low"`
}

// ScanResults holds the outcome of a Scan. Findings are open records;
// the summary is derived from their severity fields on every replacement.
type ScanResults struct {
	Findings  []map[string]any `json:"findings"`
	Summary   ResultSummary    `json:"summary"`
	RawOutput string           `json:"rawOutput,omitempty"`
}

// EmptyScanResults returns the zeroed results a new Scan starts with.
func EmptyScanResults() ScanResults {
	return ScanResults{Findings: []map[string]any{}}
}

// Scan defines a reconnaissance job record owned by one User. The status
// label carries no running process behind it; transitions are validated by
// the scan registry.
type Scan struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index:idx_scans_user_created,priority:1" json:"userId"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"size:500" json:"description,omitempty"`
	Target      string     `gorm:"size:512;not null" json:"target"`
	ScanType    ScanType   `gorm:"size:32;not null;index" json:"scanType"`
	Status      ScanStatus `gorm:"size:16;not null;index" json:"status"`

	Configuration datatypes.JSONType[ScanConfig]  `json:"configuration"`
	Results       datatypes.JSONType[ScanResults] `json:"results"`

	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `gorm:"index:idx_scans_user_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
