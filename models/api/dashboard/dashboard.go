package dashboardapimodels

// CountRow строка агрегата "значение - количество"
type CountRow struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// SkillCoverageRow покрытие навыка: сколько сотрудников дотягивает до требований
type SkillCoverageRow struct {
	SkillID   string  `json:"skill_id"`
	SkillName string  `json:"skill_name"`
	Required  int64   `json:"required"`
	Covered   int64   `json:"covered"`
	Ratio     float64 `json:"ratio"`
}

type RecentHireRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	HireDate     string `json:"hire_date"`
}

type UpcomingInterviewRow struct {
	InterviewID   string `json:"interview_id"`
	CandidateName string `json:"candidate_name"`
	ScheduledAt   string `json:"scheduled_at"`
}

type DashboardView struct {
	EmployeesByDepartment []CountRow             `json:"employees_by_department"`
	PendingAvailability   int64                  `json:"pending_availability"`
	MissionsByStatus      []CountRow             `json:"missions_by_status"`
	TrainingPlansByStatus []CountRow             `json:"training_plans_by_status"`
	SkillCoverage         []SkillCoverageRow     `json:"skill_coverage"`
	RecentHires           []RecentHireRow        `json:"recent_hires"`
	UpcomingInterviews    []UpcomingInterviewRow `json:"upcoming_interviews"`
}
