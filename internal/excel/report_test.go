package excel

import (
	"testing"
	"time"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func TestBuildExamReport(t *testing.T) {
	date := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	exams := []models.Exam{
		{
			ExamType: "TYT", Name: "Şubat TYT", Date: date, NetScore: 47,
			SubjectResults: []models.SubjectResult{
				{Subject: "Matematik", Correct: 30, Wrong: 4, Blank: 6, Net: 29},
				{Subject: "Türkçe", Correct: 20, Wrong: 8, Blank: 12, Net: 18},
			},
		},
		{ExamType: "AYT_SAY", Name: "Şubat AYT", Date: date, NetScore: 40},
	}

	f, err := BuildExamReport(exams)
	if err != nil {
		t.Fatalf("BuildExamReport: %v", err)
	}

	sheets := f.GetSheetList()
	want := map[string]bool{"TYT": true, "AYT_SAY": true}
	for _, s := range sheets {
		if !want[s] {
			t.Errorf("unexpected sheet %q", s)
		}
		delete(want, s)
	}
	for s := range want {
		t.Errorf("missing sheet %q", s)
	}

	// Header plus one row per subject.
	val := func(sheet, cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s): %v", sheet, cell, err)
		}
		return v
	}
	if got := val("TYT", "A1"); got != "Tarih" {
		t.Errorf("A1 = %q, want Tarih", got)
	}
	if got := val("TYT", "C2"); got != "Matematik" {
		t.Errorf("C2 = %q, want Matematik", got)
	}
	if got := val("TYT", "G3"); got != "18" {
		t.Errorf("G3 = %q, want 18", got)
	}
	if got := val("TYT", "H2"); got != "47" {
		t.Errorf("H2 = %q, want 47", got)
	}

	// An exam without a breakdown still gets its summary row.
	if got := val("AYT_SAY", "B2"); got != "Şubat AYT" {
		t.Errorf("AYT_SAY B2 = %q", got)
	}
}

func TestBuildExamReportEmpty(t *testing.T) {
	f, err := BuildExamReport(nil)
	if err != nil {
		t.Fatalf("BuildExamReport: %v", err)
	}
	if len(f.GetSheetList()) == 0 {
		t.Error("empty report has no sheets at all")
	}
}
