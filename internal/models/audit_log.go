package models

// AuditLog records sensitive advisor operations for security and compliance.
type AuditLog struct {
	Base
	AdvisorID    string `gorm:"type:uuid;not null;index" json:"advisor_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   string `gorm:"type:uuid" json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
