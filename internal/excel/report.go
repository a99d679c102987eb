package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/scoring"
)

var reportHeader = []string{"Tarih", "Deneme", "Ders", "Doğru", "Yanlış", "Boş", "Net", "Toplam Net", "Tahmini Sıralama"}

// BuildExamReport writes one sheet per exam type with the full
// per-subject breakdown, ready to stream as an attachment.
func BuildExamReport(exams []models.Exam) (*excelize.File, error) {
	f := excelize.NewFile()

	sheets := map[string]int{}
	for _, exam := range exams {
		row, ok := sheets[exam.ExamType]
		if !ok {
			if _, err := f.NewSheet(exam.ExamType); err != nil {
				return nil, err
			}
			for col, title := range reportHeader {
				cell, err := excelize.CoordinatesToCellName(col+1, 1)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(exam.ExamType, cell, title); err != nil {
					return nil, err
				}
			}
			row = 2
		}

		rank := scoring.EstimateRanking(exam.NetScore, exam.ExamType)

		if len(exam.SubjectResults) == 0 {
			if err := writeRow(f, exam.ExamType, row, []interface{}{
				exam.Date.Format("2006-01-02"), exam.Name, "", "", "", "",
				"", exam.NetScore, rank,
			}); err != nil {
				return nil, err
			}
			row++
		}
		for _, s := range exam.SubjectResults {
			if err := writeRow(f, exam.ExamType, row, []interface{}{
				exam.Date.Format("2006-01-02"), exam.Name, s.Subject,
				s.Correct, s.Wrong, s.Blank, s.Net, exam.NetScore, rank,
			}); err != nil {
				return nil, err
			}
			row++
		}
		sheets[exam.ExamType] = row
	}

	// The default sheet stays empty when no exams exist; drop it once
	// at least one typed sheet was written.
	if len(sheets) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
