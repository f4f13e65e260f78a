package dbmodels

// ActivityLog запись журнала действий по модифицирующим запросам api
type ActivityLog struct {
	BaseModel
	UserID     string `gorm:"type:varchar(36);index"`
	Action     string `gorm:"type:varchar(20)"` // create/update/delete
	Module     string `gorm:"type:varchar(50);index"`
	EntityType string `gorm:"type:varchar(100)"`
	EntityID   string `gorm:"type:varchar(36)"`
	ClientIP   string `gorm:"type:varchar(45)"`
	Details    string
}
