package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/timegate"
)

// CheckInRequest is the end-of-day evaluation: exactly these three
// fields, all from closed value sets.
type CheckInRequest struct {
	CompletionPct *int   `json:"completion_pct" binding:"required"`
	DifficultyTag string `json:"difficulty_tag" binding:"required"`
	CorrectionTag string `json:"correction_tag" binding:"required"`
}

// SubmitCheckIn godoc
// @Summary      Submit the end-of-day check-in
// @Description  Allowed once per day, only after 22:00 UTC+3.
// @Tags         today
// @Accept       json
// @Produce      json
// @Param        body  body  CheckInRequest  true  "Evaluation"
// @Success      200   {object} models.CheckIn
// @Failure      400   {object} map[string]string
// @Failure      403   {object} map[string]string
// @Security     TokenAuth
// @Router       /api/student/checkin/ [post]
func SubmitCheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !models.ValidCheckInPct(*req.CompletionPct) ||
		!models.ValidDifficultyTag(req.DifficultyTag) ||
		!models.ValidCorrectionTag(req.CorrectionTag) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	now := nowFunc()
	if !timegate.Open(now) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Değerlendirme saat 22:00'de açılır"})
		return
	}

	today := timegate.Today(now)
	done, err := db.HasCheckIn(c.Request.Context(), userID(c), today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save check-in"})
		return
	}
	if done {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bugünkü değerlendirme zaten yapıldı"})
		return
	}

	checkin := models.CheckIn{
		StudentID:     userID(c),
		Date:          today,
		CompletionPct: *req.CompletionPct,
		DifficultyTag: req.DifficultyTag,
		CorrectionTag: req.CorrectionTag,
	}
	if err := db.CreateCheckIn(c.Request.Context(), &checkin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save check-in"})
		return
	}
	c.JSON(http.StatusOK, checkin)
}
