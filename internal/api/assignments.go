package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// GetAssignments godoc
// @Summary      List assignments
// @Description  Students see their own; coaches pass ?student_id=.
// @Tags         assignments
// @Produce      json
// @Success      200  {array} models.Assignment
// @Security     TokenAuth
// @Router       /api/assignments/ [get]
func GetAssignments(c *gin.Context) {
	student := userID(c)
	if c.GetString("role") == models.RoleCoach {
		if q := c.Query("student_id"); q != "" {
			if id, err := strconv.ParseUint(q, 10, 32); err == nil {
				student = uint(id)
			}
		}
	}

	list, err := db.GetAssignments(c.Request.Context(), student)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateAssignmentRequest is the create body. student_id comes over the
// wire as a string, matching the web client's form payloads.
type CreateAssignmentRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
}

// CreateAssignment godoc
// @Summary      Create an assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  CreateAssignmentRequest  true  "Assignment"
// @Success      200   {object} models.Assignment
// @Failure      400   {object} map[string]string
// @Security     TokenAuth
// @Router       /api/assignments/create/ [post]
func CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	studentID, err := strconv.ParseUint(req.StudentID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student_id"})
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date"})
		return
	}

	a := models.Assignment{
		StudentID:   uint(studentID),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
		Status:      models.AssignmentPending,
	}
	if c.GetString("role") == models.RoleCoach {
		coach := userID(c)
		a.CoachID = &coach
	}

	if err := db.CreateAssignment(c.Request.Context(), &a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// CompleteAssignment godoc
// @Summary      Mark an assignment completed
// @Tags         assignments
// @Produce      json
// @Param        id  path  int  true  "Assignment ID"
// @Success      200  {object} models.Assignment
// @Security     TokenAuth
// @Router       /api/assignments/{id}/complete/ [post]
func CompleteAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := db.GetAssignment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}
	if c.GetString("role") != models.RoleCoach && a.StudentID != userID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if a.Status != models.AssignmentCompleted {
		a.Status = models.AssignmentCompleted
		now := nowFunc()
		a.CompletedAt = &now
		if err := db.SaveAssignment(c.Request.Context(), a); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment"})
			return
		}
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAssignment godoc
// @Summary      Delete an assignment
// @Tags         assignments
// @Produce      json
// @Param        id  path  int  true  "Assignment ID"
// @Success      200  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/assignments/{id}/delete/ [delete]
func DeleteAssignment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := db.GetAssignment(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}
	if c.GetString("role") != models.RoleCoach && a.StudentID != userID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := db.DeleteAssignment(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assignment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted"})
}
