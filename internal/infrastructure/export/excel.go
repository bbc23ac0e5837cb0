package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
)

const (
	ApprovedSheetName = "승인된 신고 목록"
	ApprovedFileName  = "승인된_신고_목록.xlsx"
	ContentType       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var approvedHeaders = []string{"ID", "지번주소", "GPS", "사유", "벌금", "신고일", "관리자 이름", "소속", "브랜드", "승인일"}

// ApprovedReportsWorkbook renders approved reports, one row each, below a header row.
func ApprovedReportsWorkbook(reports []*entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ApprovedSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %v", err)
	}

	if err := f.SetSheetRow(ApprovedSheetName, "A1", &approvedHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %v", err)
	}

	for i, r := range reports {
		adminName, department := "", ""
		if r.Admin != nil {
			adminName = r.Admin.Name
			department = r.Admin.Classname
		}

		var fine interface{} = ""
		if r.Fine != nil {
			fine = *r.Fine
		}

		row := []interface{}{
			r.ID,
			r.AddressOrEmpty(),
			r.GPS,
			r.Reason,
			fine,
			formatTime(&r.ReportedAt),
			adminName,
			department,
			r.Brand,
			formatTime(r.ApprovedAt),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ApprovedSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %v", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %v", err)
	}

	return buf.Bytes(), nil
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02T15:04:05")
}
