package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/excel"
	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/scoring"
)

type examItem struct {
	models.Exam
	EstimatedRank int `json:"estimated_rank"`
}

// GetExams godoc
// @Summary      List exam results with nets and estimated ranks
// @Tags         exams
// @Produce      json
// @Success      200  {array} examItem
// @Security     TokenAuth
// @Router       /api/exams/ [get]
func GetExams(c *gin.Context) {
	exams, err := db.GetExams(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exams"})
		return
	}

	out := make([]examItem, 0, len(exams))
	for _, e := range exams {
		out = append(out, examItem{
			Exam:          e,
			EstimatedRank: scoring.EstimateRanking(e.NetScore, e.ExamType),
		})
	}
	c.JSON(http.StatusOK, out)
}

// AddExamRequest records a new practice exam.
type AddExamRequest struct {
	ExamType string `json:"exam_type" binding:"required,oneof=TYT AYT_SAY AYT_EA AYT_SOZ"`
	Name     string `json:"name"`
	Date     string `json:"date" binding:"required"`
}

// AddExam godoc
// @Summary      Add an exam
// @Tags         exams
// @Accept       json
// @Produce      json
// @Param        body  body  AddExamRequest  true  "Exam"
// @Success      200   {object} models.Exam
// @Failure      400   {object} map[string]string
// @Security     TokenAuth
// @Router       /api/exams/add/ [post]
func AddExam(c *gin.Context) {
	var req AddExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	exam := models.Exam{
		StudentID: userID(c),
		ExamType:  req.ExamType,
		Name:      req.Name,
		Date:      date,
	}
	if err := db.CreateExam(c.Request.Context(), &exam); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add exam"})
		return
	}
	c.JSON(http.StatusOK, exam)
}

// AddSubjectResultRequest adds one subject's breakdown to an exam.
// Blank and net are derived server-side.
type AddSubjectResultRequest struct {
	ExamID       uint   `json:"exam_id" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	MaxQuestions int    `json:"max_questions" binding:"required,min=1"`
	Correct      int    `json:"correct" binding:"min=0"`
	Wrong        int    `json:"wrong" binding:"min=0"`
}

// AddSubjectResult godoc
// @Summary      Add a per-subject result
// @Tags         exams
// @Accept       json
// @Produce      json
// @Param        body  body  AddSubjectResultRequest  true  "Subject breakdown"
// @Success      200   {object} models.SubjectResult
// @Failure      400   {object} map[string]string
// @Security     TokenAuth
// @Router       /api/subject-results/add/ [post]
func AddSubjectResult(c *gin.Context) {
	var req AddSubjectResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Correct+req.Wrong > req.MaxQuestions {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Doğru ve yanlış toplamı soru sayısını aşamaz"})
		return
	}

	exam, err := db.GetExam(c.Request.Context(), userID(c), req.ExamID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exam not found"})
		return
	}

	r := models.SubjectResult{
		ExamID:       exam.ID,
		Subject:      req.Subject,
		MaxQuestions: req.MaxQuestions,
		Correct:      req.Correct,
		Wrong:        req.Wrong,
		Blank:        scoring.Blank(req.MaxQuestions, req.Correct, req.Wrong),
		Net:          scoring.Net(req.Correct, req.Wrong),
	}

	nets := []float64{r.Net}
	for _, s := range exam.SubjectResults {
		nets = append(nets, s.Net)
	}

	if err := db.AddSubjectResult(c.Request.Context(), &r, scoring.TotalNet(nets)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add result"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetExamAverages godoc
// @Summary      Per-type exam averages
// @Tags         exams
// @Produce      json
// @Success      200  {array} db.ExamAverage
// @Security     TokenAuth
// @Router       /api/exam-averages/ [get]
func GetExamAverages(c *gin.Context) {
	avgs, err := db.GetExamAverages(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch averages"})
		return
	}
	c.JSON(http.StatusOK, avgs)
}

// CalculateScoreRequest asks for the authoritative placement score.
type CalculateScoreRequest struct {
	ExamType string  `json:"exam_type" binding:"required,oneof=TYT AYT_SAY AYT_EA AYT_SOZ"`
	Net      float64 `json:"net" binding:"min=0"`
}

// CalculateScore godoc
// @Summary      Placement score and rank for a given net
// @Tags         exams
// @Accept       json
// @Produce      json
// @Param        body  body  CalculateScoreRequest  true  "Net"
// @Success      200   {object} map[string]interface{}
// @Security     TokenAuth
// @Router       /api/calculate-score/ [post]
func CalculateScore(c *gin.Context) {
	var req CalculateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exam_type":      req.ExamType,
		"net":            req.Net,
		"score":          scoring.CalculateScore(req.Net, req.ExamType),
		"estimated_rank": scoring.EstimateRanking(req.Net, req.ExamType),
	})
}

// ExportExams godoc
// @Summary      Download exam results as an xlsx workbook
// @Tags         exams
// @Produce      application/octet-stream
// @Success      200
// @Security     TokenAuth
// @Router       /api/exams/export/ [get]
func ExportExams(c *gin.Context) {
	exams, err := db.GetExams(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exams"})
		return
	}

	f, err := excel.BuildExamReport(exams)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="denemeler.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
