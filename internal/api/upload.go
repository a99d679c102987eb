package api

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImageBytes caps every uploaded image at 5MB, mirroring the
// client-side guard so the limit holds for any caller.
const MaxImageBytes = 5 << 20

var (
	errImageTooLarge = errors.New("image exceeds 5MB")
	errImageType     = errors.New("unsupported image type")
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// saveImage stores one uploaded image under uploadDir with a uuid name
// and returns its public URL path.
func saveImage(c *gin.Context, fh *multipart.FileHeader, uploadDir string) (string, error) {
	if fh.Size > MaxImageBytes {
		return "", errImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", errImageType
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fh, filepath.Join(uploadDir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
