package dashboardhandler

import (
	"bytes"
	"time"

	"erp-tools-backend/db"
	availabilitystore "erp-tools-backend/lib/availability/store"
	employeestore "erp-tools-backend/lib/employee/store"
	xlsexport "erp-tools-backend/lib/export/xls"
	interviewstore "erp-tools-backend/lib/interview/store"
	missionstore "erp-tools-backend/lib/mission/store"
	skillsstore "erp-tools-backend/lib/skills/store"
	trainingplanstore "erp-tools-backend/lib/training/plan-store"
	dashboardapimodels "erp-tools-backend/models/api/dashboard"

	log "github.com/sirupsen/logrus"
)

const (
	recentHireDays     = 90
	upcomingInterviews = 10
)

type Provider interface {
	GetDashboard() (view dashboardapimodels.DashboardView, err error)
	ExportSkillCoverage() (file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore:     employeestore.NewInstance(db.DB),
		missionStore:      missionstore.NewInstance(db.DB),
		planStore:         trainingplanstore.NewInstance(db.DB),
		skillsStore:       skillsstore.NewInstance(db.DB),
		interviewStore:    interviewstore.NewInstance(db.DB),
		availabilityStore: availabilitystore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore     employeestore.Provider
	missionStore      missionstore.Provider
	planStore         trainingplanstore.Provider
	skillsStore       skillsstore.Provider
	interviewStore    interviewstore.Provider
	availabilityStore availabilitystore.Provider
}

func (i impl) GetDashboard() (view dashboardapimodels.DashboardView, err error) {
	view = dashboardapimodels.DashboardView{
		EmployeesByDepartment: []dashboardapimodels.CountRow{},
		MissionsByStatus:      []dashboardapimodels.CountRow{},
		TrainingPlansByStatus: []dashboardapimodels.CountRow{},
		SkillCoverage:         []dashboardapimodels.SkillCoverageRow{},
		RecentHires:           []dashboardapimodels.RecentHireRow{},
		UpcomingInterviews:    []dashboardapimodels.UpcomingInterviewRow{},
	}
	byDepartment, err := i.employeeStore.CountByDepartment()
	if err != nil {
		log.WithError(err).Error("ошибка получения численности по подразделениям")
		return view, err
	}
	for _, row := range byDepartment {
		view.EmployeesByDepartment = append(view.EmployeesByDepartment, dashboardapimodels.CountRow{
			Key:   row.Name,
			Name:  row.Name,
			Count: row.Count,
		})
	}
	missionRows, err := i.missionStore.CountByStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения сводки по командировкам")
		return view, err
	}
	for _, row := range missionRows {
		view.MissionsByStatus = append(view.MissionsByStatus, dashboardapimodels.CountRow{
			Key:   string(row.Status),
			Name:  row.Status.ToHuman(),
			Count: row.Count,
		})
	}
	planRows, err := i.planStore.CountByStatus()
	if err != nil {
		log.WithError(err).Error("ошибка получения сводки по планам обучения")
		return view, err
	}
	for _, row := range planRows {
		view.TrainingPlansByStatus = append(view.TrainingPlansByStatus, dashboardapimodels.CountRow{
			Key:   string(row.Status),
			Name:  row.Status.ToHuman(),
			Count: row.Count,
		})
	}
	view.PendingAvailability, err = i.availabilityStore.CountPending()
	if err != nil {
		log.WithError(err).Error("ошибка получения числа несогласованных отсутствий")
		return view, err
	}
	view.SkillCoverage, err = i.skillCoverage()
	if err != nil {
		return view, err
	}
	hires, err := i.employeeStore.ListHiredAfter(recentHireDays)
	if err != nil {
		log.WithError(err).Error("ошибка получения недавних приемов")
		return view, err
	}
	for _, rec := range hires {
		row := dashboardapimodels.RecentHireRow{
			EmployeeID:   rec.ID,
			EmployeeName: rec.GetFullName(),
		}
		if rec.HireDate != nil {
			row.HireDate = rec.HireDate.Format("2006-01-02")
		}
		view.RecentHires = append(view.RecentHires, row)
	}
	interviews, err := i.interviewStore.ListUpcoming(upcomingInterviews)
	if err != nil {
		log.WithError(err).Error("ошибка получения ближайших интервью")
		return view, err
	}
	for _, rec := range interviews {
		row := dashboardapimodels.UpcomingInterviewRow{
			InterviewID:   rec.ID,
			CandidateName: rec.CandidateName,
		}
		if rec.ScheduledAt != nil {
			row.ScheduledAt = rec.ScheduledAt.Format(time.RFC3339)
		}
		view.UpcomingInterviews = append(view.UpcomingInterviews, row)
	}
	return view, nil
}

// skillCoverage агрегируется по навыку на основе требований должностей
func (i impl) skillCoverage() ([]dashboardapimodels.SkillCoverageRow, error) {
	rows, err := i.skillsStore.SkillCoverage()
	if err != nil {
		log.WithError(err).Error("ошибка получения покрытия навыков")
		return nil, err
	}
	bySkill := map[string]*dashboardapimodels.SkillCoverageRow{}
	order := []string{}
	for _, row := range rows {
		agg, exist := bySkill[row.SkillID]
		if !exist {
			agg = &dashboardapimodels.SkillCoverageRow{
				SkillID:   row.SkillID,
				SkillName: row.SkillName,
			}
			bySkill[row.SkillID] = agg
			order = append(order, row.SkillID)
		}
		agg.Required += row.Required
		agg.Covered += row.Covered
	}
	result := make([]dashboardapimodels.SkillCoverageRow, 0, len(order))
	for _, skillID := range order {
		agg := bySkill[skillID]
		if agg.Required > 0 {
			agg.Ratio = float64(agg.Covered) / float64(agg.Required)
		}
		result = append(result, *agg)
	}
	return result, nil
}

func (i impl) ExportSkillCoverage() (file *bytes.Buffer, err error) {
	rows, err := i.skillsStore.SkillCoverage()
	if err != nil {
		log.WithError(err).Error("ошибка получения покрытия навыков")
		return nil, err
	}
	return xlsexport.Instance.ExportSkillCoverage(rows)
}
