package handlers

//go:generate mockgen -source=images.go -destination=images_mock.go -package=handlers

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// ImageReader serves image records to their owner.
type ImageReader interface {
	ListUserImages(ctx context.Context, userID int64) ([]models.ImageResponse, error)
	GetImage(ctx context.Context, id int64, username string) (*models.ImageResponse, error)
	GetImageByExternalID(ctx context.Context, imgurID, username string) (*models.ImageResponse, error)
	SearchImages(ctx context.Context, username, name string) ([]models.ImageResponse, error)
	CountUserImages(ctx context.Context, username string) (int64, error)
	OpenImage(ctx context.Context, id int64, username string) (*models.ImageContent, error)
}

// ImageModifier changes or removes image records.
type ImageModifier interface {
	UpdateImage(ctx context.Context, id int64, username string, req models.UpdateImageRequest) (*models.ImageResponse, error)
	DeleteImage(ctx context.Context, id int64, username string) error
	DeleteImageByExternalID(ctx context.Context, imgurID, username string) error
}

// NewListUserImagesHandler lists a user's active images.
// @Summary Get user images
// @Tags images
// @Produce json
// @Param userId path int true "Owner ID"
// @Success 200 {object} response.Envelope{data=[]models.ImageResponse}
// @Failure 404 {object} response.ErrorBody
// @Router /images/user/{userId} [get]
// @Security Bearer
func NewListUserImagesHandler(svc ImageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "userId")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		images, err := svc.ListUserImages(r.Context(), userID)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Images retrieved successfully", images)
	}
}

// NewGetImageHandler returns one image and counts the view.
// @Summary Get image by ID
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Param username query string true "Owner username"
// @Success 200 {object} response.Envelope{data=models.ImageResponse}
// @Failure 404 {object} response.ErrorBody
// @Router /images/{id} [get]
// @Security Bearer
func NewGetImageHandler(svc ImageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		image, err := svc.GetImage(r.Context(), id, username)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image retrieved successfully", image)
	}
}

// NewGetImageByExternalIDHandler returns an image by its Imgur id.
// @Summary Get image by Imgur ID
// @Tags images
// @Produce json
// @Param imgurId path string true "Imgur ID"
// @Param username query string true "Owner username"
// @Success 200 {object} response.Envelope{data=models.ImageResponse}
// @Failure 404 {object} response.ErrorBody
// @Router /images/external/{imgurId} [get]
// @Security Bearer
func NewGetImageByExternalIDHandler(svc ImageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		image, err := svc.GetImageByExternalID(r.Context(), chi.URLParam(r, "imgurId"), username)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image retrieved successfully", image)
	}
}

// NewSearchImagesHandler searches images by name.
// @Summary Search images
// @Tags images
// @Produce json
// @Param username query string true "Owner username"
// @Param name query string true "Name fragment"
// @Success 200 {object} response.Envelope{data=[]models.ImageResponse}
// @Failure 400 {object} response.ErrorBody
// @Router /images/search [get]
// @Security Bearer
func NewSearchImagesHandler(svc ImageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		images, err := svc.SearchImages(r.Context(), username, r.URL.Query().Get("name"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Images retrieved successfully", images)
	}
}

// NewCountImagesHandler counts a user's active images.
// @Summary Count images
// @Tags images
// @Produce json
// @Param username query string true "Owner username"
// @Success 200 {object} response.Envelope{data=models.ImageCountResponse}
// @Router /images/count [get]
// @Security Bearer
func NewCountImagesHandler(svc ImageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		count, err := svc.CountUserImages(r.Context(), username)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image count retrieved successfully", models.ImageCountResponse{Count: count})
	}
}

// NewDownloadImageHandler streams Dropbox-hosted bytes or redirects to Imgur.
// @Summary Download image
// @Tags images
// @Produce octet-stream
// @Param id path int true "Image ID"
// @Param username query string true "Owner username"
// @Success 200 {file} binary
// @Success 302 "Redirect to the Imgur link"
// @Failure 404 {object} response.ErrorBody
// @Router /images/{id}/download [get]
// @Security Bearer
func NewDownloadImageHandler(svc ImageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		content, err := svc.OpenImage(r.Context(), id, username)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		if content.RedirectURL != "" {
			http.Redirect(w, r, content.RedirectURL, http.StatusFound)
			return
		}
		streamContent(w, r, content, "inline")
	}
}

// streamContent copies content.Body to w and closes it.
func streamContent(w http.ResponseWriter, r *http.Request, content *models.ImageContent, disposition string) {
	defer content.Body.Close()

	contentType := content.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if content.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(content.Size, 10))
	}
	if content.FileName != "" {
		w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": content.FileName}))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content.Body); err != nil {
		logger.FromContext(r.Context()).Warnw("image stream interrupted", "file", content.FileName, "error", err)
	}
}

// NewUpdateImageHandler edits image metadata.
// @Summary Update image
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param username query string true "Owner username"
// @Param updateRequest body models.UpdateImageRequest true "Metadata"
// @Success 200 {object} response.Envelope{data=models.ImageResponse}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /images/{id} [put]
// @Security Bearer
func NewUpdateImageHandler(svc ImageModifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		var req models.UpdateImageRequest
		if err := decodeJSON(r, &req); err != nil {
			response.Error(w, r, err)
			return
		}

		image, err := svc.UpdateImage(r.Context(), id, username, req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image updated successfully", image)
	}
}

// NewDeleteImageHandler deletes an image.
// @Summary Delete image
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Param username query string true "Owner username"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /images/{id} [delete]
// @Security Bearer
func NewDeleteImageHandler(svc ImageModifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			response.Error(w, r, err)
			return
		}
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.DeleteImage(r.Context(), id, username); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image deleted successfully", nil)
	}
}

// NewDeleteImageByExternalIDHandler deletes an image by its Imgur id.
// @Summary Delete image by Imgur ID
// @Tags images
// @Produce json
// @Param imgurId path string true "Imgur ID"
// @Param username query string true "Owner username"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorBody
// @Router /images/external/{imgurId} [delete]
// @Security Bearer
func NewDeleteImageByExternalIDHandler(svc ImageModifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ownerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.DeleteImageByExternalID(r.Context(), chi.URLParam(r, "imgurId"), username); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image deleted successfully", nil)
	}
}
