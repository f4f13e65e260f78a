package dbmodels

type EmployeeSkill struct {
	BaseModel
	EmployeeID string `gorm:"type:varchar(36);uniqueIndex:idx_employee_skill"`
	Employee   *Employee
	SkillID    string `gorm:"type:varchar(36);uniqueIndex:idx_employee_skill"`
	Skill      *Skill
	Level      int
	// журнал автоматических повышений уровня
	Notes string
}

type JobSkillRequirement struct {
	BaseModel
	JobTitleID    string `gorm:"type:varchar(36);uniqueIndex:idx_job_skill"`
	JobTitle      *JobTitle
	SkillID       string `gorm:"type:varchar(36);uniqueIndex:idx_job_skill"`
	Skill         *Skill
	RequiredLevel int
	// важность: 1 - желательно, 2 - важно, 3 - критично
	Importance int
}

// TrainingSkill уровень навыка, который дает курс
type TrainingSkill struct {
	BaseModel
	CourseID string `gorm:"type:varchar(36);uniqueIndex:idx_course_skill"`
	Course   *TrainingCourse
	SkillID  string `gorm:"type:varchar(36);uniqueIndex:idx_course_skill"`
	Skill    *Skill
	Level    int
}
