package services

//go:generate mockgen -source=image.go -destination=image_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-image-vault/internal/apperrors"
	"github.com/sbilibin2017/gw-image-vault/internal/cache"
	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
	"github.com/sbilibin2017/gw-image-vault/internal/repositories"
	"github.com/sbilibin2017/gw-image-vault/internal/validation"
)

// ErrUploadFailed is returned when no store accepted the upload.
var ErrUploadFailed = apperrors.Business("UPLOAD_FAILED", "Failed to upload image to both Imgur and Dropbox")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ImageReader defines read-only operations for image records.
type ImageReader interface {
	GetByIDAndOwner(ctx context.Context, id, userID int64) (*models.Image, error)
	GetByImgurIDAndOwner(ctx context.Context, imgurID string, userID int64) (*models.Image, error)
	ListByOwnerAndStatus(ctx context.Context, userID int64, status models.ImageStatus) ([]models.Image, error)
	SearchByName(ctx context.Context, userID int64, name string, status models.ImageStatus) ([]models.Image, error)
	CountByOwnerAndStatus(ctx context.Context, userID int64, status models.ImageStatus) (int64, error)
}

// ImageWriter defines write operations for image records.
type ImageWriter interface {
	Create(ctx context.Context, image *models.Image) error
	Update(ctx context.Context, image *models.Image) error
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
}

// OwnerResolver resolves image owners.
type OwnerResolver interface {
	GetUserEntityByID(ctx context.Context, id int64) (*models.User, error)
	GetUserEntityByUsername(ctx context.Context, username string) (*models.User, error)
}

// ImageService uploads images to the first store that accepts them and
// manages the resulting records.
type ImageService struct {
	reader    ImageReader
	writer    ImageWriter
	users     OwnerResolver
	stores    []ImageStore
	cache     *cache.Cache
	validator *validation.Validator
	events    EventPublisher
}

// NewImageService creates an ImageService trying stores in the given order.
func NewImageService(
	reader ImageReader,
	writer ImageWriter,
	users OwnerResolver,
	stores []ImageStore,
	c *cache.Cache,
	v *validation.Validator,
	events EventPublisher,
) *ImageService {
	return &ImageService{
		reader:    reader,
		writer:    writer,
		users:     users,
		stores:    stores,
		cache:     c,
		validator: v,
		events:    events,
	}
}

// Upload validates file, stores it on the first host that accepts it and saves the record.
func (s *ImageService) Upload(ctx context.Context, ownerID int64, file models.UploadFile, title, description string) (*models.ImageResponse, error) {
	log := logger.FromContext(ctx)

	if err := validateUpload(file); err != nil {
		return nil, err
	}

	owner, err := s.users.GetUserEntityByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	log.Infow("uploading image", "user_id", owner.ID, "filename", file.Name, "size", len(file.Data))

	var (
		image *models.Image
		errs  []error
	)
	for _, store := range s.stores {
		image, err = store.Store(ctx, owner, file, title, description)
		if err == nil {
			log.Infow("image stored", "backend", store.Backend(), "user_id", owner.ID)
			break
		}
		log.Warnw("image store failed", "backend", store.Backend(), "user_id", owner.ID, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", store.Backend(), err))
		image = nil
	}
	if image == nil {
		log.Errorw("every image store failed", "user_id", owner.ID, "errors", errs)
		return nil, ErrUploadFailed.Wrap(errors.Join(errs...))
	}

	image.Status = models.ImageStatusActive
	image.ViewCount = 0
	image.UserID = owner.ID
	if err := s.writer.Create(ctx, image); err != nil {
		log.Errorw("failed to save image", "user_id", owner.ID, "error", err)
		return nil, err
	}

	s.cache.Invalidate(cache.ImageNamespaces...)
	s.events.PublishImageEvent(owner.Username, image.ImageName, models.EventImageUploaded, image.Backend())

	resp := image.ToResponse()
	return &resp, nil
}

func validateUpload(file models.UploadFile) error {
	if len(file.Data) == 0 {
		return apperrors.Validation("File is empty", map[string]string{"file": "must not be empty"})
	}
	if len(file.Data) > models.MaxUploadSize {
		return apperrors.Validation("File size exceeds maximum limit of 10MB", map[string]string{"file": "must be at most 10MB"})
	}
	mediaType, _, err := mime.ParseMediaType(file.ContentType)
	if err != nil || !allowedImageTypes[strings.ToLower(mediaType)] {
		return apperrors.Validation("Invalid file type. Only JPEG, PNG, GIF and WebP images are allowed",
			map[string]string{"file": "unsupported content type " + file.ContentType})
	}
	return nil
}

// ListUserImages returns the owner's active images, newest first.
func (s *ImageService) ListUserImages(ctx context.Context, userID int64) ([]models.ImageResponse, error) {
	if _, err := s.users.GetUserEntityByID(ctx, userID); err != nil {
		return nil, err
	}
	images, err := cache.GetOrLoad(ctx, s.cache, cache.ImageListByOwner, strconv.FormatInt(userID, 10), func(ctx context.Context) ([]models.Image, error) {
		return s.reader.ListByOwnerAndStatus(ctx, userID, models.ImageStatusActive)
	})
	if err != nil {
		return nil, err
	}
	return toResponses(images), nil
}

// GetImage returns an image that is not deleted and counts the view.
func (s *ImageService) GetImage(ctx context.Context, id int64, username string) (*models.ImageResponse, error) {
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	image, err := s.cachedImage(ctx, id, owner.ID)
	if err != nil {
		return nil, err
	}

	views, err := s.writer.IncrementViewCount(ctx, image.ID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to count image view", "image_id", image.ID, "error", err)
		return nil, err
	}

	resp := image.ToResponse()
	resp.ViewCount = views
	return &resp, nil
}

func (s *ImageService) cachedImage(ctx context.Context, id, ownerID int64) (*models.Image, error) {
	key := strconv.FormatInt(id, 10) + ":" + strconv.FormatInt(ownerID, 10)
	image, err := cache.GetOrLoad(ctx, s.cache, cache.ImageByID, key, func(ctx context.Context) (*models.Image, error) {
		image, err := s.reader.GetByIDAndOwner(ctx, id, ownerID)
		if err != nil {
			return nil, err
		}
		if image == nil || image.Status == models.ImageStatusDeleted {
			return nil, apperrors.NotFound("Image", id)
		}
		return image, nil
	})
	if err != nil {
		return nil, err
	}
	cp := *image
	return &cp, nil
}

// GetImageByExternalID looks an image up by its Imgur id.
func (s *ImageService) GetImageByExternalID(ctx context.Context, imgurID, username string) (*models.ImageResponse, error) {
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	key := imgurID + ":" + strconv.FormatInt(owner.ID, 10)
	image, err := cache.GetOrLoad(ctx, s.cache, cache.ImageByExternalID, key, func(ctx context.Context) (*models.Image, error) {
		image, err := s.reader.GetByImgurIDAndOwner(ctx, imgurID, owner.ID)
		if err != nil {
			return nil, err
		}
		if image == nil || image.Status == models.ImageStatusDeleted {
			return nil, apperrors.NotFoundBy("Image", "imgurId", imgurID)
		}
		return image, nil
	})
	if err != nil {
		return nil, err
	}
	resp := image.ToResponse()
	return &resp, nil
}

// UpdateImage replaces the metadata fields present in req.
func (s *ImageService) UpdateImage(ctx context.Context, id int64, username string, req models.UpdateImageRequest) (*models.ImageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	image, err := s.reader.GetByIDAndOwner(ctx, id, owner.ID)
	if err != nil {
		return nil, err
	}
	if image == nil || image.Status == models.ImageStatusDeleted {
		return nil, apperrors.NotFound("Image", id)
	}

	if req.Title != nil {
		image.Title = *req.Title
	}
	if req.Description != nil {
		image.Description = *req.Description
	}
	if req.Tags != nil {
		image.Tags = *req.Tags
	}
	if err := s.save(ctx, image); err != nil {
		return nil, err
	}

	resp := image.ToResponse()
	return &resp, nil
}

// DeleteImage removes the bytes from their host and marks the record deleted.
// Deleting an already deleted image succeeds without side effects.
func (s *ImageService) DeleteImage(ctx context.Context, id int64, username string) error {
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return err
	}
	image, err := s.reader.GetByIDAndOwner(ctx, id, owner.ID)
	if err != nil {
		return err
	}
	if image == nil {
		return apperrors.NotFound("Image", id)
	}
	return s.delete(ctx, owner, image)
}

// DeleteImageByExternalID is DeleteImage addressed by Imgur id.
func (s *ImageService) DeleteImageByExternalID(ctx context.Context, imgurID, username string) error {
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return err
	}
	image, err := s.reader.GetByImgurIDAndOwner(ctx, imgurID, owner.ID)
	if err != nil {
		return err
	}
	if image == nil {
		return apperrors.NotFoundBy("Image", "imgurId", imgurID)
	}
	return s.delete(ctx, owner, image)
}

func (s *ImageService) delete(ctx context.Context, owner *models.User, image *models.Image) error {
	log := logger.FromContext(ctx)

	if image.Status == models.ImageStatusDeleted {
		log.Infow("image already deleted", "image_id", image.ID)
		return nil
	}

	backend := image.Backend()
	if store := s.storeFor(backend); store != nil {
		if err := store.Remove(ctx, image); err != nil {
			log.Warnw("failed to remove image bytes", "image_id", image.ID, "backend", backend, "error", err)
		}
	}

	image.Status = models.ImageStatusDeleted
	if err := s.save(ctx, image); err != nil {
		return err
	}

	log.Infow("image deleted", "image_id", image.ID, "backend", backend)
	s.events.PublishImageEvent(owner.Username, image.ImageName, models.EventImageDeleted, backend)
	return nil
}

func (s *ImageService) save(ctx context.Context, image *models.Image) error {
	err := s.writer.Update(ctx, image)
	if errors.Is(err, repositories.ErrVersionConflict) {
		logger.FromContext(ctx).Warnw("concurrent image update", "image_id", image.ID)
		return ErrConcurrentModification.Wrap(err)
	}
	if err != nil {
		return fmt.Errorf("update image %d: %w", image.ID, err)
	}
	s.cache.Invalidate(cache.ImageNamespaces...)
	return nil
}

func (s *ImageService) storeFor(backend models.Backend) ImageStore {
	for _, store := range s.stores {
		if store.Backend() == backend {
			return store
		}
	}
	return nil
}

// SearchImages matches name against the stored and original file names of active images.
func (s *ImageService) SearchImages(ctx context.Context, username, name string) ([]models.ImageResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("Search name is required", map[string]string{"name": "must not be blank"})
	}
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	images, err := s.reader.SearchByName(ctx, owner.ID, strings.TrimSpace(name), models.ImageStatusActive)
	if err != nil {
		return nil, err
	}
	return toResponses(images), nil
}

// CountUserImages counts the owner's active images.
func (s *ImageService) CountUserImages(ctx context.Context, username string) (int64, error) {
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return s.reader.CountByOwnerAndStatus(ctx, owner.ID, models.ImageStatusActive)
}

// OpenImage returns a byte stream for Dropbox images and a redirect for Imgur images.
func (s *ImageService) OpenImage(ctx context.Context, id int64, username string) (*models.ImageContent, error) {
	owner, err := s.users.GetUserEntityByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	image, err := s.cachedImage(ctx, id, owner.ID)
	if err != nil {
		return nil, err
	}
	store := s.storeFor(image.Backend())
	if store == nil {
		return nil, apperrors.NotFound("Image", id)
	}
	return store.Open(ctx, image)
}

func toResponses(images []models.Image) []models.ImageResponse {
	out := make([]models.ImageResponse, 0, len(images))
	for i := range images {
		out = append(out, images[i].ToResponse())
	}
	return out
}
