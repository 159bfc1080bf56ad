package services

//go:generate mockgen -source=image_stores.go -destination=image_stores_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/facades"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

// ErrRemoteDeleteRefused is returned when a host does not confirm a delete.
var ErrRemoteDeleteRefused = errors.New("remote host did not confirm delete")

// ImageStore places image bytes on one remote host.
type ImageStore interface {
	Backend() models.Backend
	// Store uploads file and returns an unsaved record referencing it.
	Store(ctx context.Context, owner *models.User, file models.UploadFile, title, description string) (*models.Image, error)
	Remove(ctx context.Context, image *models.Image) error
	Open(ctx context.Context, image *models.Image) (*models.ImageContent, error)
}

// ImgurAPI is the Imgur facade.
type ImgurAPI interface {
	Upload(ctx context.Context, data []byte, title, description string) (*facades.ImgurImage, error)
	Delete(ctx context.Context, deleteHash string) bool
}

// DropboxAPI is the Dropbox facade.
type DropboxAPI interface {
	EnsureFolder(ctx context.Context, path string) error
	Upload(ctx context.Context, path string, data []byte) (*facades.DropboxFile, error)
	Download(ctx context.Context, path string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, path string) error
}

// ImgurStore hosts images on Imgur.
type ImgurStore struct {
	api ImgurAPI
}

func NewImgurStore(api ImgurAPI) *ImgurStore {
	return &ImgurStore{api: api}
}

func (s *ImgurStore) Backend() models.Backend {
	return models.BackendImgur
}

func (s *ImgurStore) Store(ctx context.Context, owner *models.User, file models.UploadFile, title, description string) (*models.Image, error) {
	data, err := s.api.Upload(ctx, file.Data, title, description)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("imgur returned no image data")
	}

	image := &models.Image{
		ImageName:        imgurImageName(file.Name, data.ID),
		OriginalFilename: file.Name,
		ImgurID:          &data.ID,
		ImgurDeleteHash:  &data.DeleteHash,
		ImgurURL:         &data.Link,
		Title:            title,
		Description:      description,
		FileSize:         data.Size,
		MimeType:         data.Type,
		UserID:           owner.ID,
	}
	if data.Width > 0 {
		image.Width = &data.Width
	}
	if data.Height > 0 {
		image.Height = &data.Height
	}
	return image, nil
}

func (s *ImgurStore) Remove(ctx context.Context, image *models.Image) error {
	if image.ImgurDeleteHash == nil || *image.ImgurDeleteHash == "" {
		return nil
	}
	if !s.api.Delete(ctx, *image.ImgurDeleteHash) {
		return ErrRemoteDeleteRefused
	}
	return nil
}

// Open redirects to the public Imgur link.
func (s *ImgurStore) Open(ctx context.Context, image *models.Image) (*models.ImageContent, error) {
	if image.ImgurURL == nil || *image.ImgurURL == "" {
		return nil, apperrors.NotFound("Image", image.ID)
	}
	return &models.ImageContent{
		RedirectURL: *image.ImgurURL,
		FileName:    image.OriginalFilename,
		ContentType: image.MimeType,
		Size:        image.FileSize,
	}, nil
}

// imgurImageName is "{basename-without-ext}_{imgurID}", or "image_{imgurID}" without a filename.
func imgurImageName(filename, imgurID string) string {
	if strings.TrimSpace(filename) == "" {
		return "image_" + imgurID
	}
	name := filename
	if i := strings.LastIndex(filename, "."); i > 0 {
		name = filename[:i]
	}
	return name + "_" + imgurID
}

// DropboxStore hosts images under {base}/user-{ownerID}/images.
type DropboxStore struct {
	api        DropboxAPI
	baseFolder string
	newName    func() string
}

func NewDropboxStore(api DropboxAPI, baseFolder string) *DropboxStore {
	return &DropboxStore{
		api:        api,
		baseFolder: "/" + strings.Trim(baseFolder, "/"),
		newName:    uuid.NewString,
	}
}

func (s *DropboxStore) Backend() models.Backend {
	return models.BackendDropbox
}

func (s *DropboxStore) Store(ctx context.Context, owner *models.User, file models.UploadFile, title, description string) (*models.Image, error) {
	folder := userImagesFolder(s.baseFolder, owner.ID)
	if err := s.api.EnsureFolder(ctx, folder); err != nil {
		return nil, err
	}

	name := s.newName() + fileExtension(file.Name)
	uploaded, err := s.api.Upload(ctx, path.Join(folder, name), file.Data)
	if err != nil {
		return nil, err
	}

	return &models.Image{
		ImageName:        name,
		OriginalFilename: file.Name,
		DropboxPath:      &uploaded.Path,
		Title:            title,
		Description:      description,
		FileSize:         int64(len(file.Data)),
		MimeType:         file.ContentType,
		UserID:           owner.ID,
	}, nil
}

// Remove deletes the file. A file already gone is not an error.
func (s *DropboxStore) Remove(ctx context.Context, image *models.Image) error {
	if image.DropboxPath == nil {
		return nil
	}
	err := s.api.Delete(ctx, *image.DropboxPath)
	if errors.Is(err, facades.ErrDropboxNotFound) {
		logger.FromContext(ctx).Infow("dropbox file already gone", "path", *image.DropboxPath)
		return nil
	}
	return err
}

// Open streams the file from Dropbox.
func (s *DropboxStore) Open(ctx context.Context, image *models.Image) (*models.ImageContent, error) {
	if image.DropboxPath == nil {
		return nil, apperrors.NotFound("Image", image.ID)
	}
	body, size, err := s.api.Download(ctx, *image.DropboxPath)
	if errors.Is(err, facades.ErrDropboxNotFound) {
		return nil, apperrors.NotFound("Image", image.ID)
	}
	if err != nil {
		return nil, err
	}
	if size == 0 {
		size = image.FileSize
	}
	return &models.ImageContent{
		Body:        body,
		FileName:    image.OriginalFilename,
		ContentType: image.MimeType,
		Size:        size,
	}, nil
}

// userImagesFolder is {base}/user-{userID}/images.
func userImagesFolder(base string, userID int64) string {
	return path.Join(base, fmt.Sprintf("user-%d", userID), "images")
}

// fileExtension returns the suffix from the last dot, dot included, or "".
func fileExtension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i:]
}
