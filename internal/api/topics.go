package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/disiplinli/kocumnet-back/internal/db"
)

// TopicCatalog is the fixed syllabus served by the topic tracker.
// Completion marks live in the database; the catalog itself is static.
var TopicCatalog = map[string]map[string][]string{
	"TYT": {
		"Matematik": {"Temel Kavramlar", "Sayı Basamakları", "Bölme ve Bölünebilme", "Rasyonel Sayılar", "Denklem Çözme", "Problemler", "Kümeler", "Fonksiyonlar", "Olasılık"},
		"Türkçe":    {"Sözcükte Anlam", "Cümlede Anlam", "Paragraf", "Ses Bilgisi", "Yazım Kuralları", "Noktalama", "Dil Bilgisi"},
		"Fizik":     {"Fizik Bilimine Giriş", "Madde ve Özellikleri", "Hareket ve Kuvvet", "Enerji", "Isı ve Sıcaklık", "Elektrostatik", "Optik"},
		"Kimya":     {"Kimya Bilimi", "Atom ve Periyodik Sistem", "Kimyasal Türler Arası Etkileşimler", "Maddenin Halleri", "Kimyasal Hesaplamalar"},
		"Biyoloji":  {"Canlıların Ortak Özellikleri", "Hücre", "Canlıların Sınıflandırılması", "Kalıtım", "Ekosistem"},
	},
	"AYT": {
		"Matematik": {"Trigonometri", "Logaritma", "Diziler", "Limit", "Türev", "İntegral"},
		"Fizik":     {"Vektörler", "Tork ve Denge", "Atışlar", "İtme ve Momentum", "Elektrik Alan", "Manyetizma", "Modern Fizik"},
		"Kimya":     {"Gazlar", "Çözeltiler", "Kimyasal Tepkimelerde Enerji", "Tepkime Hızı", "Kimyasal Denge", "Asit-Baz", "Organik Kimya"},
		"Biyoloji":  {"Sinir Sistemi", "Endokrin Sistem", "Dolaşım", "Solunum", "Boşaltım", "Bitki Biyolojisi", "Genden Proteine"},
	},
}

type topicItem struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type topicSubject struct {
	Subject string      `json:"subject"`
	Topics  []topicItem `json:"topics"`
	Done    int         `json:"done"`
	Total   int         `json:"total"`
}

// GetTopics godoc
// @Summary      Syllabus with per-topic completion marks
// @Tags         topics
// @Produce      json
// @Param        category  query  string  false  "TYT|AYT (default TYT)"
// @Success      200  {array} topicSubject
// @Security     TokenAuth
// @Router       /api/topics/ [get]
func GetTopics(c *gin.Context) {
	category := c.DefaultQuery("category", "TYT")
	subjects, ok := TopicCatalog[category]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	done, err := db.GetTopicProgress(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topics"})
		return
	}

	completed := map[string]bool{}
	for _, p := range done {
		if p.Category == category {
			completed[p.Subject+"/"+p.TopicName] = true
		}
	}

	names := make([]string, 0, len(subjects))
	for subject := range subjects {
		names = append(names, subject)
	}
	sort.Strings(names)

	out := make([]topicSubject, 0, len(subjects))
	for _, subject := range names {
		topics := subjects[subject]
		entry := topicSubject{Subject: subject, Total: len(topics)}
		for _, name := range topics {
			isDone := completed[subject+"/"+name]
			if isDone {
				entry.Done++
			}
			entry.Topics = append(entry.Topics, topicItem{Name: name, Completed: isDone})
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

// ToggleTopicRequest flips one topic's completion mark.
type ToggleTopicRequest struct {
	Category string `json:"category" binding:"required,oneof=TYT AYT"`
	Subject  string `json:"subject" binding:"required"`
	Topic    string `json:"topic" binding:"required"`
}

// ToggleTopic godoc
// @Summary      Toggle a topic's completion
// @Tags         topics
// @Accept       json
// @Produce      json
// @Param        body  body  ToggleTopicRequest  true  "Topic"
// @Success      200   {object} map[string]interface{}
// @Security     TokenAuth
// @Router       /api/topics/toggle/ [post]
func ToggleTopic(c *gin.Context) {
	var req ToggleTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	completed, err := db.ToggleTopic(c.Request.Context(), userID(c), req.Category, req.Subject, req.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle topic"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topic": req.Topic, "completed": completed})
}
