package xlsexport

import (
	"bytes"

	skillsstore "erp-tools-backend/lib/skills/store"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSkillCoverage(list []skillsstore.CoverageRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var coverageHeaders = []string{"Должность", "Навык", "Требуемый уровень", "Сотрудников на должности", "Достигли уровня"}

func (i impl) ExportSkillCoverage(list []skillsstore.CoverageRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, coverageHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeCoverageData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Покрытие навыков")
	return f.WriteToBuffer()
}

func writeCoverageData(f *excelize.File, sheet string, list []skillsstore.CoverageRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(coverageHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.JobTitleName); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.SkillName); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.RequiredLevel); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Required); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Covered); err != nil {
			return row, err
		}
	}
	return row, nil
}
