package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
	"github.com/disiplinli/kocumnet-back/internal/wheel"
)

// GetQuestions godoc
// @Summary      List the student's question bank
// @Tags         questions
// @Produce      json
// @Success      200  {array} models.Question
// @Security     TokenAuth
// @Router       /api/questions/ [get]
func GetQuestions(c *gin.Context) {
	qs, err := db.GetQuestions(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, qs)
}

// CreateQuestion godoc
// @Summary      Add a question to the bank (multipart, one photo)
// @Tags         questions
// @Accept       multipart/form-data
// @Produce      json
// @Param        subject  formData  string  true   "Subject"
// @Param        topic    formData  string  false  "Topic"
// @Param        note     formData  string  false  "Note"
// @Param        image    formData  file    false  "Photo, max 5MB"
// @Success      200  {object} models.Question
// @Failure      400  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/questions/ [post]
func CreateQuestion(c *gin.Context) {
	subject := c.PostForm("subject")
	if subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ders seçilmedi"})
		return
	}

	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil {
		imageURL, err = saveImage(c, fh, uploadDir)
		if err != nil {
			if errors.Is(err, errImageTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Fotoğraf 5MB'den büyük olamaz"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fotoğraf yüklenemedi"})
			return
		}
	}

	q := models.Question{
		StudentID: userID(c),
		Subject:   subject,
		Topic:     c.PostForm("topic"),
		Note:      c.PostForm("note"),
		ImageURL:  imageURL,
		Status:    models.QuestionOpen,
	}
	if err := db.CreateQuestion(c.Request.Context(), &q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// spinResponse hands clients the server-side pick plus the prebuilt
// 25-card strip and animation constants.
type spinResponse struct {
	Chosen models.Question   `json:"chosen"`
	Decoys []models.Question `json:"decoys"`
	Strip  []wheel.Card      `json:"strip"`

	SpinDurationMS int    `json:"spin_duration_ms"`
	RevealDelayMS  int    `json:"reveal_delay_ms"`
	ChosenIndex    int    `json:"chosen_index"`
	Easing         string `json:"easing"`
}

// SpinWheel godoc
// @Summary      Random unsolved question for the wheel
// @Tags         questions
// @Produce      json
// @Success      200  {object} spinResponse
// @Failure      404  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/questions/spin/ [get]
func SpinWheel(c *gin.Context) {
	chosen, decoys, err := db.SpinQuestion(c.Request.Context(), userID(c), wheel.StripSize-1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to spin"})
		return
	}
	if chosen == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Çözülmemiş soru kalmadı"})
		return
	}

	decoyCards := make([]wheel.Card, 0, len(decoys))
	for _, q := range decoys {
		decoyCards = append(decoyCards, wheel.Card{ID: q.ID, Subject: q.Subject, Topic: q.Topic})
	}
	strip := wheel.BuildStrip(wheel.Card{ID: chosen.ID, Subject: chosen.Subject, Topic: chosen.Topic}, decoyCards)

	c.JSON(http.StatusOK, spinResponse{
		Chosen:         *chosen,
		Decoys:         decoys,
		Strip:          strip,
		SpinDurationMS: wheel.SpinDurationMS,
		RevealDelayMS:  wheel.RevealDelayMS,
		ChosenIndex:    wheel.ChosenIndex,
		Easing:         wheel.Easing,
	})
}

// QuestionFeedbackRequest reports whether the student solved the
// question after a spin.
type QuestionFeedbackRequest struct {
	Solved *bool `json:"solved" binding:"required"`
}

// QuestionFeedback godoc
// @Summary      Record post-spin feedback on a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "Question ID"
// @Param        body  body  QuestionFeedbackRequest  true  "Feedback"
// @Success      200   {object} models.Question
// @Security     TokenAuth
// @Router       /api/questions/{id}/feedback/ [post]
func QuestionFeedback(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req QuestionFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	q, err := db.GetQuestion(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	if *req.Solved {
		q.Status = models.QuestionSolved
		now := nowFunc()
		q.SolvedAt = &now
	} else {
		q.Status = models.QuestionOpen
		q.SolvedAt = nil
	}
	if err := db.SaveQuestion(c.Request.Context(), q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id  path  int  true  "Question ID"
// @Success      200  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/questions/{id}/delete/ [delete]
func DeleteQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := db.DeleteQuestion(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}
