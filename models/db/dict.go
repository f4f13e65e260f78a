package dbmodels

type Department struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);uniqueIndex"`
	ParentID *string
	Parent   *Department `gorm:"foreignKey:ParentID"`
}

type JobTitle struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);uniqueIndex"`
	DepartmentID *string
	Department   *Department
}

type Skill struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
}

type Currency struct {
	BaseModel
	Code      string `gorm:"type:varchar(3);uniqueIndex"`
	Name      string `gorm:"type:varchar(100)"`
	Symbol    string `gorm:"type:varchar(10)"`
	IsDefault bool
}

// CompanySettings единственная запись с реквизитами компании
type CompanySettings struct {
	BaseModel
	CompanyName string `gorm:"type:varchar(255)"`
	Address     string
	Phone       string `gorm:"type:varchar(30)"`
	Email       string `gorm:"type:varchar(255)"`
	TaxNumber   string `gorm:"type:varchar(50)"`
}
