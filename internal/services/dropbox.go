package services

//go:generate mockgen -source=dropbox.go -destination=dropbox_mock.go -package=services

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/facades"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

var errForeignDropboxFolder = apperrors.AccessDenied("You can only access your own Dropbox images")

// DropboxFolderAPI is the Dropbox facade including folder listing.
type DropboxFolderAPI interface {
	EnsureFolder(ctx context.Context, path string) error
	Upload(ctx context.Context, path string, data []byte) (*facades.DropboxFile, error)
	Download(ctx context.Context, path string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, folder string) ([]facades.DropboxEntry, error)
}

// DropboxService works on a user's Dropbox folder directly, without image
// records. Every call is limited to the caller's own folder.
type DropboxService struct {
	api        DropboxFolderAPI
	users      OwnerResolver
	events     EventPublisher
	baseFolder string
	newName    func() string
	now        func() time.Time
}

func NewDropboxService(api DropboxFolderAPI, users OwnerResolver, events EventPublisher, baseFolder string) *DropboxService {
	return &DropboxService{
		api:        api,
		users:      users,
		events:     events,
		baseFolder: "/" + strings.Trim(baseFolder, "/"),
		newName:    uuid.NewString,
		now:        time.Now,
	}
}

// owner loads userID and checks that it is the caller.
func (s *DropboxService) owner(ctx context.Context, caller string, userID int64) (*models.User, error) {
	user, err := s.users.GetUserEntityByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Username != caller {
		return nil, errForeignDropboxFolder
	}
	return user, nil
}

// ownPath cleans p and checks that it lies inside the caller's folder.
// Dropbox paths are case-insensitive.
func (s *DropboxService) ownPath(ctx context.Context, caller, p string) (*models.User, string, error) {
	if strings.TrimSpace(p) == "" {
		return nil, "", apperrors.Validation("Required parameter 'dropboxPath' is not present",
			map[string]string{"dropboxPath": "must not be blank"})
	}
	user, err := s.users.GetUserEntityByUsername(ctx, caller)
	if err != nil {
		return nil, "", err
	}
	clean := path.Clean("/" + p)
	folder := userImagesFolder(s.baseFolder, user.ID)
	if !strings.HasPrefix(strings.ToLower(clean), strings.ToLower(folder)+"/") {
		return nil, "", errForeignDropboxFolder
	}
	return user, clean, nil
}

// Upload stores file in the user's folder under a fresh name.
func (s *DropboxService) Upload(ctx context.Context, caller string, userID int64, file models.UploadFile, title, description string) (*models.DropboxImageResponse, error) {
	if err := validateUpload(file); err != nil {
		return nil, err
	}
	user, err := s.owner(ctx, caller, userID)
	if err != nil {
		return nil, err
	}

	folder := userImagesFolder(s.baseFolder, user.ID)
	if err := s.api.EnsureFolder(ctx, folder); err != nil {
		return nil, err
	}
	name := s.newName() + fileExtension(file.Name)
	uploaded, err := s.api.Upload(ctx, path.Join(folder, name), file.Data)
	if err != nil {
		logger.FromContext(ctx).Errorw("direct dropbox upload failed", "user_id", user.ID, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("image uploaded to dropbox", "user_id", user.ID, "path", uploaded.Path)
	s.events.PublishImageEvent(user.Username, name, models.EventImageUploaded, models.BackendDropbox)

	now := s.now()
	return &models.DropboxImageResponse{
		ImageName:        name,
		OriginalFilename: file.Name,
		DropboxPath:      uploaded.Path,
		Title:            title,
		Description:      description,
		FileSize:         int64(len(file.Data)),
		MimeType:         file.ContentType,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// List returns the files in the user's folder. A folder never written to is empty.
func (s *DropboxService) List(ctx context.Context, caller string, userID int64) ([]models.DropboxImageResponse, error) {
	user, err := s.owner(ctx, caller, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.list(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]models.DropboxImageResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.DropboxImageResponse{
			ImageName:        e.Name,
			OriginalFilename: e.Name,
			DropboxPath:      e.Path,
			FileSize:         e.Size,
			CreatedAt:        e.ClientModified,
			UpdatedAt:        e.ServerModified,
		})
	}
	return out, nil
}

func (s *DropboxService) list(ctx context.Context, userID int64) ([]facades.DropboxEntry, error) {
	entries, err := s.api.List(ctx, userImagesFolder(s.baseFolder, userID))
	if errors.Is(err, facades.ErrDropboxNotFound) {
		return nil, nil
	}
	return entries, err
}

// Download opens one file of the caller's folder.
func (s *DropboxService) Download(ctx context.Context, caller, dropboxPath string) (*models.ImageContent, error) {
	_, p, err := s.ownPath(ctx, caller, dropboxPath)
	if err != nil {
		return nil, err
	}
	body, size, err := s.api.Download(ctx, p)
	if errors.Is(err, facades.ErrDropboxNotFound) {
		return nil, apperrors.NotFoundBy("Image", "dropboxPath", p)
	}
	if err != nil {
		return nil, err
	}
	return &models.ImageContent{
		Body:        body,
		FileName:    path.Base(p),
		ContentType: "application/octet-stream",
		Size:        size,
	}, nil
}

// Archive streams every file of the user's folder as one ZIP. The listing is
// read up front; files are fetched while the archive is consumed, and a
// failure part way through surfaces as a read error on the body.
func (s *DropboxService) Archive(ctx context.Context, caller string, userID int64) (*models.ImageContent, error) {
	user, err := s.owner(ctx, caller, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.list(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(s.writeArchive(ctx, pw, entries))
	}()

	return &models.ImageContent{
		Body:        pr,
		FileName:    "user-" + strconv.FormatInt(user.ID, 10) + "-images.zip",
		ContentType: "application/zip",
	}, nil
}

func (s *DropboxService) writeArchive(ctx context.Context, w io.Writer, entries []facades.DropboxEntry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		body, _, err := s.api.Download(ctx, e.Path)
		if errors.Is(err, facades.ErrDropboxNotFound) {
			logger.FromContext(ctx).Infow("dropbox file vanished before zipping", "path", e.Path)
			continue
		}
		if err != nil {
			return err
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: zip.Deflate, Modified: e.ServerModified})
		if err == nil {
			_, err = io.Copy(fw, body)
		}
		body.Close()
		if err != nil {
			return err
		}
	}
	return zw.Close()
}

// Delete removes one file of the caller's folder.
func (s *DropboxService) Delete(ctx context.Context, caller, dropboxPath string) error {
	user, p, err := s.ownPath(ctx, caller, dropboxPath)
	if err != nil {
		return err
	}
	err = s.api.Delete(ctx, p)
	if errors.Is(err, facades.ErrDropboxNotFound) {
		return apperrors.NotFoundBy("Image", "dropboxPath", p)
	}
	if err != nil {
		return err
	}
	s.events.PublishImageEvent(user.Username, path.Base(p), models.EventImageDeleted, models.BackendDropbox)
	return nil
}
