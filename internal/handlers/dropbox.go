package handlers

//go:generate mockgen -source=dropbox.go -destination=dropbox_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/response"
)

// DropboxImages works on the caller's Dropbox folder directly.
type DropboxImages interface {
	Upload(ctx context.Context, caller string, userID int64, file models.UploadFile, title, description string) (*models.DropboxImageResponse, error)
	List(ctx context.Context, caller string, userID int64) ([]models.DropboxImageResponse, error)
	Download(ctx context.Context, caller, dropboxPath string) (*models.ImageContent, error)
	Archive(ctx context.Context, caller string, userID int64) (*models.ImageContent, error)
	Delete(ctx context.Context, caller, dropboxPath string) error
}

// NewDropboxUploadHandler uploads straight to the user's Dropbox folder without an image record.
// @Summary Upload image to Dropbox
// @Tags dropbox
// @Accept multipart/form-data
// @Produce json
// @Param userId path int true "Owner ID"
// @Param file formData file true "Image file (JPEG, PNG, GIF, WebP; max 10MB)"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Success 201 {object} response.Envelope{data=models.DropboxImageResponse}
// @Failure 400 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /dropbox/upload/{userId} [post]
// @Security Bearer
func NewDropboxUploadHandler(svc DropboxImages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		userID, err := pathID(r, "userId")
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

		image, err := svc.Upload(r.Context(), caller, userID, file, r.FormValue("title"), r.FormValue("description"))
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusCreated, "Image uploaded successfully to Dropbox", image)
	}
}

// NewDropboxListHandler lists the files in the user's Dropbox folder.
// @Summary List user images from Dropbox
// @Tags dropbox
// @Produce json
// @Param userId path int true "Owner ID"
// @Success 200 {object} response.Envelope{data=[]models.DropboxImageResponse}
// @Failure 403 {object} response.ErrorBody
// @Router /dropbox/images/{userId} [get]
// @Security Bearer
func NewDropboxListHandler(svc DropboxImages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		userID, err := pathID(r, "userId")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		images, err := svc.List(r.Context(), caller, userID)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Images retrieved successfully from Dropbox", images)
	}
}

// NewDropboxDownloadHandler streams one file as an attachment.
// @Summary Download image from Dropbox
// @Tags dropbox
// @Produce octet-stream
// @Param dropboxPath query string true "Dropbox file path"
// @Success 200 {file} binary
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /dropbox/download [get]
// @Security Bearer
func NewDropboxDownloadHandler(svc DropboxImages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		content, err := svc.Download(r.Context(), caller, r.URL.Query().Get("dropboxPath"))
		if err != nil {
			response.Error(w, r, err)
			return
		}
		streamContent(w, r, content, "attachment")
	}
}

// NewDropboxZipHandler streams every file of the user's folder as a ZIP.
// @Summary Download user images as ZIP
// @Tags dropbox
// @Produce application/zip
// @Param userId path int true "Owner ID"
// @Success 200 {file} binary
// @Failure 403 {object} response.ErrorBody
// @Router /dropbox/download-zip/{userId} [get]
// @Security Bearer
func NewDropboxZipHandler(svc DropboxImages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		userID, err := pathID(r, "userId")
		if err != nil {
			response.Error(w, r, err)
			return
		}

		content, err := svc.Archive(r.Context(), caller, userID)
		if err != nil {
			response.Error(w, r, err)
			return
		}
		streamContent(w, r, content, "attachment")
	}
}

// NewDropboxDeleteHandler removes one file.
// @Summary Delete image from Dropbox
// @Tags dropbox
// @Produce json
// @Param dropboxPath query string true "Dropbox file path"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /dropbox/delete [delete]
// @Security Bearer
func NewDropboxDeleteHandler(svc DropboxImages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), caller, r.URL.Query().Get("dropboxPath")); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Success(w, r, http.StatusOK, "Image deleted successfully from Dropbox", nil)
	}
}
