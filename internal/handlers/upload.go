package handlers

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// multipart overhead allowed on top of the file itself
const formOverhead = 1 << 20

// ImageUploader stores an uploaded image.
type ImageUploader interface {
	Upload(ctx context.Context, ownerID int64, file models.UploadFile, title, description string) (*models.ImageResponse, error)
}

// NewUploadImageHandler accepts a multipart image upload.
// @Summary Upload image
// @Description Stores the file on Imgur, falling back to Dropbox when Imgur fails
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param userId path int true "Owner ID"
// @Param file formData file true "Image file (JPEG, PNG, GIF, WebP; max 10MB)"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Success 201 {object} response.Envelope{data=models.ImageResponse} "Image uploaded successfully"
// @Failure 400 {object} response.ErrorBody "Invalid file / upload failed"
// @Failure 404 {object} response.ErrorBody "User not found"
// @Router /images/upload/{userId} [post]
// @Security Bearer
func NewUploadImageHandler(svc ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := pathID(r, "userId")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		file, err := readUploadFile(w, r)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		defer r.MultipartForm.RemoveAll()

		image, err := svc.Upload(r.Context(), ownerID, file, r.FormValue("title"), r.FormValue("description"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusCreated, "Image uploaded successfully", image)
	}
}

// readUploadFile parses the multipart form and reads its "file" part. On
// success the caller removes the form's temporary files.
func readUploadFile(w http.ResponseWriter, r *http.Request) (models.UploadFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, models.MaxUploadSize+formOverhead)
	if err := r.ParseMultipartForm(models.MaxUploadSize + formOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.UploadFile{}, apperrors.Validation("File size exceeds maximum limit of 10MB",
				map[string]string{"file": "must be at most 10MB"})
		}
		return models.UploadFile{}, apperrors.Validation("Malformed multipart request",
			map[string]string{"file": err.Error()})
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		r.MultipartForm.RemoveAll()
		return models.UploadFile{}, apperrors.Validation("Required part 'file' is not present",
			map[string]string{"file": "must not be empty"})
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, models.MaxUploadSize+1))
	if err != nil {
		r.MultipartForm.RemoveAll()
		logger.FromContext(r.Context()).Errorw("failed to read upload", "error", err)
		return models.UploadFile{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return models.UploadFile{Name: header.Filename, ContentType: contentType, Data: data}, nil
}
