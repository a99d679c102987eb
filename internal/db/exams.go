package db

import (
	"context"

	"github.com/disiplinli/kocumnet-back/internal/models"
)

func GetExams(ctx context.Context, studentID uint) ([]models.Exam, error) {
	var exams []models.Exam
	err := DB.WithContext(ctx).
		Preload("SubjectResults").
		Where("student_id = ?", studentID).
		Order("date DESC, id DESC").
		Find(&exams).Error
	return exams, err
}

func CreateExam(ctx context.Context, e *models.Exam) error {
	return DB.WithContext(ctx).Create(e).Error
}

func GetExam(ctx context.Context, studentID, id uint) (*models.Exam, error) {
	var e models.Exam
	if err := DB.WithContext(ctx).
		Preload("SubjectResults").
		Where("student_id = ?", studentID).
		First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func AddSubjectResult(ctx context.Context, r *models.SubjectResult, examNet float64) error {
	if err := DB.WithContext(ctx).Create(r).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Model(&models.Exam{}).
		Where("id = ?", r.ExamID).
		Update("net_score", examNet).Error
}

// ExamAverage is the per-type roll-up for the averages endpoint.
type ExamAverage struct {
	ExamType string  `json:"exam_type"`
	Count    int64   `json:"count"`
	AvgNet   float64 `json:"avg_net"`
	BestNet  float64 `json:"best_net"`
	LastNet  float64 `json:"last_net"`
}

func GetExamAverages(ctx context.Context, studentID uint) ([]ExamAverage, error) {
	exams, err := GetExams(ctx, studentID)
	if err != nil {
		return nil, err
	}

	byType := map[string]*ExamAverage{}
	order := []string{}
	sums := map[string]float64{}
	for _, e := range exams {
		avg, ok := byType[e.ExamType]
		if !ok {
			avg = &ExamAverage{ExamType: e.ExamType, LastNet: e.NetScore}
			byType[e.ExamType] = avg
			order = append(order, e.ExamType)
		}
		avg.Count++
		sums[e.ExamType] += e.NetScore
		if e.NetScore > avg.BestNet {
			avg.BestNet = e.NetScore
		}
	}

	out := make([]ExamAverage, 0, len(order))
	for _, t := range order {
		avg := byType[t]
		avg.AvgNet = sums[t] / float64(avg.Count)
		out = append(out, *avg)
	}
	return out, nil
}
