package trainingcoursestore

import (
	dbmodels "erp-tools-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.TrainingCourse) (id string, err error)
	GetByID(id string) (rec *dbmodels.TrainingCourse, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List() (list []dbmodels.TrainingCourse, err error)
	// ListBySkill курсы, дающие навык не ниже требуемого уровня
	ListBySkill(skillID string, minLevel int) (list []dbmodels.TrainingCourse, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TrainingCourse) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.TrainingCourse, error) {
	rec := dbmodels.TrainingCourse{}
	err := i.db.
		Where("id = ?", id).
		Preload("Skills").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TrainingCourse{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.TrainingCourse{}).
		Error
}

func (i impl) List() (list []dbmodels.TrainingCourse, err error) {
	list = []dbmodels.TrainingCourse{}
	err = i.db.
		Preload("Skills").
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListBySkill(skillID string, minLevel int) (list []dbmodels.TrainingCourse, err error) {
	list = []dbmodels.TrainingCourse{}
	err = i.db.
		Joins("join training_skills on training_skills.course_id = training_courses.id").
		Where("training_skills.skill_id = ?", skillID).
		Where("training_skills.level >= ?", minLevel).
		Order("training_courses.name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
