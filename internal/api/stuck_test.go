package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// doMultipart posts a multipart form with the given fields and image
// files (field name -> one payload per entry).
func doMultipart(t *testing.T, r *gin.Engine, path, token string, fields map[string]string, fileField string, files [][]byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for i, data := range files {
		part, err := w.CreateFormFile(fileField, "soru.jpg")
		if err != nil {
			t.Fatalf("create file %d: %v", i, err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write file %d: %v", i, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateStuckQuestionRequiresImages(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	fields := map[string]string{"subject": "Matematik", "source_type": "exam"}

	w := doMultipart(t, r, "/api/stuck/", token, fields, "images", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero images: status = %d, body %s", w.Code, w.Body.String())
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if body["error"] != "En az bir fotoğraf gerekli" {
		t.Errorf("error = %q", body["error"])
	}

	six := make([][]byte, 6)
	for i := range six {
		six[i] = []byte{0xff, 0xd8}
	}
	w = doMultipart(t, r, "/api/stuck/", token, fields, "images", six)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("six images: status = %d", w.Code)
	}
	decodeBody(t, w, &body)
	if body["error"] != "En fazla 5 fotoğraf eklenebilir" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestCreateStuckQuestionSavesImages(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	fields := map[string]string{
		"subject":     "Fizik",
		"topic":       "Optik",
		"source_type": "book",
		"note":        "B şıkkını anlamadım",
	}
	files := [][]byte{{0xff, 0xd8}, {0xff, 0xd8}}

	w := doMultipart(t, r, "/api/stuck/", token, fields, "images", files)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Images []struct {
			URL  string `json:"url"`
			Kind string `json:"kind"`
		} `json:"images"`
	}
	decodeBody(t, w, &resp)
	if resp.Status != "open" {
		t.Errorf("status = %q, want open", resp.Status)
	}
	if len(resp.Images) != 2 {
		t.Fatalf("images = %d, want 2", len(resp.Images))
	}
	for _, img := range resp.Images {
		if img.Kind != "question" {
			t.Errorf("kind = %q, want question", img.Kind)
		}
		if len(img.URL) == 0 || img.URL[:9] != "/uploads/" {
			t.Errorf("url = %q, want an /uploads/ path", img.URL)
		}
	}
}

func TestCreateStuckQuestionRejectsUnknownSource(t *testing.T) {
	r, cfg := setupServer(t)
	student := createUser(t, "ali@example.com", "student")
	token := tokenFor(t, cfg, student)

	fields := map[string]string{"subject": "Matematik", "source_type": "youtube"}
	w := doMultipart(t, r, "/api/stuck/", token, fields, "images", [][]byte{{1}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
