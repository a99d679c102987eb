package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// A stuck question carries between 1 and 5 photos.
const maxStuckImages = 5

// GetStuckQuestions godoc
// @Summary      List stuck questions
// @Tags         stuck
// @Produce      json
// @Success      200  {array} models.StuckQuestion
// @Security     TokenAuth
// @Router       /api/stuck/ [get]
func GetStuckQuestions(c *gin.Context) {
	list, err := db.GetStuckQuestions(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stuck questions"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateStuckQuestion godoc
// @Summary      Post a stuck question (multipart, 1-5 photos)
// @Tags         stuck
// @Accept       multipart/form-data
// @Produce      json
// @Param        subject      formData  string  true   "Subject"
// @Param        source_type  formData  string  true   "exam|homework|lesson|book"
// @Param        topic        formData  string  false  "Topic"
// @Param        exam_info    formData  string  false  "Exam metadata"
// @Param        note         formData  string  false  "Note"
// @Param        images       formData  file    true   "1-5 photos, max 5MB each"
// @Success      200  {object} models.StuckQuestion
// @Failure      400  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/stuck/ [post]
func CreateStuckQuestion(c *gin.Context) {
	subject := c.PostForm("subject")
	sourceType := c.PostForm("source_type")
	if subject == "" || !models.ValidSourceType(sourceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "En az bir fotoğraf gerekli"})
		return
	}
	if len(files) > maxStuckImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "En fazla 5 fotoğraf eklenebilir"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := saveImage(c, fh, uploadDir)
		if err != nil {
			if errors.Is(err, errImageTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Fotoğraf 5MB'den büyük olamaz"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Fotoğraf yüklenemedi"})
			return
		}
		urls = append(urls, url)
	}

	s := models.StuckQuestion{
		StudentID:  userID(c),
		Subject:    subject,
		Topic:      c.PostForm("topic"),
		SourceType: sourceType,
		ExamInfo:   c.PostForm("exam_info"),
		Note:       c.PostForm("note"),
		Status:     models.QuestionOpen,
	}
	if err := db.CreateStuckQuestion(c.Request.Context(), &s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create"})
		return
	}

	imgs := make([]models.StuckImage, 0, len(urls))
	for _, u := range urls {
		imgs = append(imgs, models.StuckImage{StuckQuestionID: s.ID, URL: u, Kind: models.StuckImageQuestion})
	}
	if err := db.AddStuckImages(c.Request.Context(), imgs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create"})
		return
	}
	s.Images = imgs
	c.JSON(http.StatusOK, s)
}

// GetStuckQuestion godoc
// @Summary      Fetch one stuck question
// @Tags         stuck
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object} models.StuckQuestion
// @Security     TokenAuth
// @Router       /api/stuck/{id}/ [get]
func GetStuckQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := db.GetStuckQuestion(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if !canSeeStuck(c, s) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateStuckQuestion godoc
// @Summary      Update a stuck question (solution, status; multipart)
// @Tags         stuck
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object} models.StuckQuestion
// @Security     TokenAuth
// @Router       /api/stuck/{id}/ [put]
func UpdateStuckQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := db.GetStuckQuestion(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if !canSeeStuck(c, s) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if v := c.PostForm("status"); v == models.QuestionOpen || v == models.QuestionSolved {
		s.Status = v
	}
	if v := c.PostForm("solution_text"); v != "" {
		s.SolutionText = v
	}

	if form, err := c.MultipartForm(); err == nil {
		files := form.File["solution_images"]
		if len(files) > maxStuckImages {
			c.JSON(http.StatusBadRequest, gin.H{"error": "En fazla 5 fotoğraf eklenebilir"})
			return
		}
		imgs := make([]models.StuckImage, 0, len(files))
		for _, fh := range files {
			url, err := saveImage(c, fh, uploadDir)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Fotoğraf yüklenemedi"})
				return
			}
			imgs = append(imgs, models.StuckImage{StuckQuestionID: s.ID, URL: url, Kind: models.StuckImageSolution})
		}
		if len(imgs) > 0 {
			if err := db.AddStuckImages(c.Request.Context(), imgs); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
				return
			}
			s.Images = append(s.Images, imgs...)
		}
	}

	if err := db.SaveStuckQuestion(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteStuckQuestion godoc
// @Summary      Delete a stuck question and its images
// @Tags         stuck
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/stuck/{id}/ [delete]
func DeleteStuckQuestion(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := db.GetStuckQuestion(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if !canSeeStuck(c, s) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := db.DeleteStuckQuestion(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// canSeeStuck allows the owning student and any coach; coaches answer
// their students' stuck questions.
func canSeeStuck(c *gin.Context, s *models.StuckQuestion) bool {
	return s.StudentID == userID(c) || c.GetString("role") == models.RoleCoach
}
