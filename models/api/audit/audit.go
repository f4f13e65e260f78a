package auditapimodels

import (
	apimodels "erp-tools-backend/models/api"
	dbmodels "erp-tools-backend/models/db"
	"time"
)

type AuditFilter struct {
	apimodels.Pagination
	UserID string `json:"user_id"`
	Module string `json:"module"`
	Action string `json:"action"`
}

func (r AuditFilter) Validate() error {
	return nil
}

type AuditView struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	Module     string    `json:"module"`
	EntityType string    `json:"entity_type,omitempty"`
	EntityID   string    `json:"entity_id,omitempty"`
	ClientIP   string    `json:"client_ip,omitempty"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func AuditConvert(rec dbmodels.ActivityLog) AuditView {
	return AuditView{
		ID:         rec.ID,
		UserID:     rec.UserID,
		Action:     rec.Action,
		Module:     rec.Module,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		ClientIP:   rec.ClientIP,
		Details:    rec.Details,
		CreatedAt:  rec.CreatedAt,
	}
}
