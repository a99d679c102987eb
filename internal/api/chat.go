package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
	"github.com/disiplinli/kocumnet-back/internal/models"
)

// GetConversations godoc
// @Summary      Chat partners with last message and unread counts
// @Tags         chat
// @Produce      json
// @Success      200  {array} models.Conversation
// @Security     TokenAuth
// @Router       /api/chat/conversations/ [get]
func GetConversations(c *gin.Context) {
	convs, err := db.GetConversations(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}
	c.JSON(http.StatusOK, convs)
}

// GetMessages godoc
// @Summary      Full thread with one partner; marks their messages read
// @Tags         chat
// @Produce      json
// @Param        userId  path  int  true  "Partner user ID"
// @Success      200  {array} models.Message
// @Security     TokenAuth
// @Router       /api/chat/messages/{userId}/ [get]
func GetMessages(c *gin.Context) {
	partnerID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	msgs, err := db.GetMessagesWith(c.Request.Context(), userID(c), uint(partnerID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessage godoc
// @Summary      Send a message, optionally with an image (multipart)
// @Tags         chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        receiver_id  formData  int     true   "Receiver user ID"
// @Param        text         formData  string  false  "Message text"
// @Param        image        formData  file    false  "Image, max 5MB"
// @Success      200  {object} models.Message
// @Failure      400  {object} map[string]string
// @Security     TokenAuth
// @Router       /api/chat/send/ [post]
func SendMessage(c *gin.Context) {
	receiverID, err := strconv.ParseUint(c.PostForm("receiver_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receiver_id"})
		return
	}

	text := c.PostForm("text")
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

	if text == "" && imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Boş mesaj gönderilemez"})
		return
	}

	msg := models.Message{
		SenderID:   userID(c),
		ReceiverID: uint(receiverID),
		Text:       text,
		ImageURL:   imageURL,
	}
	if err := db.CreateMessage(c.Request.Context(), &msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusOK, msg)
}
