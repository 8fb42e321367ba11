package service

import (
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"presensi/backend/foundation/web"

	_ "golang.org/x/image/webp"
	_ "image/jpeg"
	_ "image/png"
)

func InArray[T comparable](val T, array []T) bool {
	for _, v := range array {
		if val == v {
			return true
		}
	}
	return false
}

var evidenceContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
}

var evidenceExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadEvidence stores a check-in photo under basePath/presensi and
// returns the path relative to basePath, suitable for the /media file
// server. The file must decode as an actual image, not just claim an
// image content type.
func UploadEvidence(file *multipart.FileHeader, basePath string, userID int) (string, error) {
	if file == nil {
		return "", nil
	}
	if userID == 0 {
		return "", errors.New("uploading evidence without an authenticated user")
	}

	contentType := file.Header.Get("Content-Type")
	if !InArray(contentType, evidenceContentTypes) {
		return "", web.NewRequestError(
			fmt.Errorf("tipe file bukti_foto tidak didukung: %s", contentType),
			http.StatusBadRequest,
		)
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "opening evidence upload")
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Println("evidence upload src.Close() error:", closeErr)
		}
	}()

	if _, _, err = image.DecodeConfig(src); err != nil {
		return "", web.NewRequestError(
			errors.New("bukti_foto bukan gambar yang valid"),
			http.StatusBadRequest,
		)
	}
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "rewinding evidence upload")
	}

	ext := evidenceExtensions[contentType]
	if incoming := strings.ToLower(filepath.Ext(file.Filename)); incoming != "" {
		ext = incoming
	}
	name := fmt.Sprintf("%d-%d%s", userID, time.Now().UnixMilli(), ext)

	targetDir := filepath.Join(basePath, "presensi")
	if _, err := os.Stat(targetDir); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(targetDir, os.ModePerm); err != nil {
			return "", errors.Wrap(err, "creating evidence directory")
		}
	}

	out, err := os.Create(filepath.Join(targetDir, name))
	if err != nil {
		return "", errors.Wrap(err, "creating evidence file")
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			log.Println("evidence upload out.Close() error:", closeErr)
		}
	}()

	if _, err = io.Copy(out, src); err != nil {
		return "", errors.Wrap(err, "writing evidence file")
	}

	return filepath.ToSlash(filepath.Join("presensi", name)), nil
}
