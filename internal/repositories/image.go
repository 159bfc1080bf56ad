package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

const imageColumns = `id, image_name, original_filename, imgur_id, imgur_delete_hash, imgur_url,
	dropbox_path, title, description, tags, file_size, mime_type, width, height, status,
	view_count, version, created_at, updated_at, user_id`

// ImageReadRepository reads image records. Every query is scoped to an owner.
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// GetByIDAndOwner returns the image in any status, or nil when absent.
func (r *ImageReadRepository) GetByIDAndOwner(ctx context.Context, id, userID int64) (*models.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1 AND user_id = $2`
	return r.getOne(ctx, query, id, userID)
}

// GetByImgurIDAndOwner returns the image in any status, or nil when absent.
func (r *ImageReadRepository) GetByImgurIDAndOwner(ctx context.Context, imgurID string, userID int64) (*models.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE imgur_id = $1 AND user_id = $2`
	return r.getOne(ctx, query, imgurID, userID)
}

func (r *ImageReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.Image, error) {
	var image models.Image
	err := r.db.GetContext(ctx, &image, query, args...)

	logQuery(query, args, image.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByOwnerAndStatus returns the owner's images in status, newest first.
func (r *ImageReadRepository) ListByOwnerAndStatus(ctx context.Context, userID int64, status models.ImageStatus) ([]models.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID, string(status))
}

// SearchByName matches name case-insensitively against the stored and original file names.
func (r *ImageReadRepository) SearchByName(ctx context.Context, userID int64, name string, status models.ImageStatus) ([]models.Image, error) {
	query := `
		SELECT ` + imageColumns + ` FROM images
		WHERE user_id = $1 AND status = $2
		  AND (image_name ILIKE $3 ESCAPE '\' OR original_filename ILIKE $3 ESCAPE '\')
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, query, userID, string(status), "%"+escapeLike(name)+"%")
}

func (r *ImageReadRepository) list(ctx context.Context, query string, args ...any) ([]models.Image, error) {
	images := []models.Image{}
	err := r.db.SelectContext(ctx, &images, query, args...)

	logQuery(query, args, len(images), err)

	if err != nil {
		return nil, err
	}
	return images, nil
}

// CountByOwnerAndStatus counts the owner's images in status.
func (r *ImageReadRepository) CountByOwnerAndStatus(ctx context.Context, userID int64, status models.ImageStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM images WHERE user_id = $1 AND status = $2`
	var count int64
	err := r.db.GetContext(ctx, &count, query, userID, string(status))
	logQuery(query, []any{userID, status}, count, err)
	return count, err
}

// ImageWriteRepository writes image records, joining the request transaction when one is bound.
type ImageWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewImageWriteRepository(db *sqlx.DB, txGetter TxGetter) *ImageWriteRepository {
	return &ImageWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts image and fills its generated columns.
func (r *ImageWriteRepository) Create(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (image_name, original_filename, imgur_id, imgur_delete_hash, imgur_url,
			dropbox_path, title, description, tags, file_size, mime_type, width, height, status,
			view_count, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, version, created_at, updated_at
	`
	args := []any{
		image.ImageName, image.OriginalFilename, image.ImgurID, image.ImgurDeleteHash, image.ImgurURL,
		image.DropboxPath, image.Title, image.Description, image.Tags, image.FileSize, image.MimeType,
		image.Width, image.Height, string(image.Status), image.ViewCount, image.UserID,
	}

	var row struct {
		ID        int64        `db:"id"`
		Version   int64        `db:"version"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, args, row.ID, err)

	if err != nil {
		return err
	}
	image.ID = row.ID
	image.Version = row.Version
	image.CreatedAt = row.CreatedAt.Time
	image.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// Update saves metadata and status if image.Version still matches the stored row.
// A mismatch returns ErrVersionConflict.
func (r *ImageWriteRepository) Update(ctx context.Context, image *models.Image) error {
	query := `
		UPDATE images
		SET title = $1, description = $2, tags = $3, status = $4,
		    version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
		RETURNING version, updated_at
	`
	args := []any{image.Title, image.Description, image.Tags, string(image.Status), image.ID, image.Version}

	var row struct {
		Version   int64        `db:"version"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, args, row.Version, err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrVersionConflict
	}
	if err != nil {
		return err
	}
	image.Version = row.Version
	image.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// IncrementViewCount bumps the counter atomically and returns the new value.
// The version is left alone so view traffic never conflicts with edits.
func (r *ImageWriteRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	query := `UPDATE images SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`
	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, id)
	logQuery(query, []any{id}, count, err)
	return count, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
