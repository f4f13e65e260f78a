package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"erp-tools-backend/lib/utils/helpers"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// OrderData данные приказа о командировке
type OrderData struct {
	OrderNumber  string
	CompanyName  string
	EmployeeName string
	JobTitle     string
	Department   string
	Purpose      string
	Location     string
	DateFrom     *time.Time
	DateTo       *time.Time
	ManagerName  string
	CreatedAt    time.Time
}

func GenerateMissionOrder(data OrderData) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateMissionOrder panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, data.CompanyName, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("ПРИКАЗ № %s о направлении в командировку", data.OrderNumber), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	htmlStr := fmt.Sprintf("Направить <b>%s</b>", data.EmployeeName)
	if data.JobTitle != "" {
		htmlStr += fmt.Sprintf(", %s", data.JobTitle)
	}
	if data.Department != "" {
		htmlStr += fmt.Sprintf(" (%s)", data.Department)
	}
	htmlStr += fmt.Sprintf(" в командировку в <b>%s</b>", data.Location)
	if data.DateFrom != nil && data.DateTo != nil {
		htmlStr += fmt.Sprintf(" с %s по %s", helpers.FormatDatePtr(data.DateFrom), helpers.FormatDatePtr(data.DateTo))
	}
	htmlStr += ".<br><br>"
	if data.Purpose != "" {
		htmlStr += fmt.Sprintf("Цель командировки: %s.<br><br>", data.Purpose)
	}
	htmlStr += fmt.Sprintf("Дата составления: %s.<br>", helpers.FormatDate(data.CreatedAt))
	if data.ManagerName != "" {
		htmlStr += fmt.Sprintf("Руководитель: %s", data.ManagerName)
	}
	html.Write(lineHt, htmlStr)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
