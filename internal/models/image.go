package models

import (
	"io"
	"time"
)

// ImageStatus is the lifecycle state of an image record.
type ImageStatus string

const (
	ImageStatusActive     ImageStatus = "ACTIVE"
	ImageStatusDeleted    ImageStatus = "DELETED"
	ImageStatusArchived   ImageStatus = "ARCHIVED"
	ImageStatusProcessing ImageStatus = "PROCESSING"
)

// Backend names the remote host holding an image's bytes.
type Backend string

const (
	BackendImgur   Backend = "IMGUR"
	BackendDropbox Backend = "DROPBOX"
)

// MaxUploadSize bounds accepted image files.
const MaxUploadSize = 10 << 20

// Image represents an image record in the database
type Image struct {
	ID               int64       `db:"id"`
	ImageName        string      `db:"image_name"`
	OriginalFilename string      `db:"original_filename"`
	ImgurID          *string     `db:"imgur_id"`
	ImgurDeleteHash  *string     `db:"imgur_delete_hash"`
	ImgurURL         *string     `db:"imgur_url"`
	DropboxPath      *string     `db:"dropbox_path"`
	Title            string      `db:"title"`
	Description      string      `db:"description"`
	Tags             string      `db:"tags"`
	FileSize         int64       `db:"file_size"`
	MimeType         string      `db:"mime_type"`
	Width            *int        `db:"width"`
	Height           *int        `db:"height"`
	Status           ImageStatus `db:"status"`
	ViewCount        int64       `db:"view_count"`
	Version          int64       `db:"version"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
	UserID           int64       `db:"user_id"`
}

// Backend reports which host holds the bytes, or "" for a record with neither reference.
func (i *Image) Backend() Backend {
	switch {
	case i.ImgurID != nil:
		return BackendImgur
	case i.DropboxPath != nil:
		return BackendDropbox
	default:
		return ""
	}
}

// ToResponse maps the record to its public form.
func (i *Image) ToResponse() ImageResponse {
	return ImageResponse{
		ID:               i.ID,
		ImageName:        i.ImageName,
		OriginalFilename: i.OriginalFilename,
		ImgurID:          i.ImgurID,
		ImgurURL:         i.ImgurURL,
		DropboxPath:      i.DropboxPath,
		Backend:          i.Backend(),
		Title:            i.Title,
		Description:      i.Description,
		Tags:             i.Tags,
		FileSize:         i.FileSize,
		MimeType:         i.MimeType,
		Width:            i.Width,
		Height:           i.Height,
		Status:           i.Status,
		ViewCount:        i.ViewCount,
		UserID:           i.UserID,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// ImageResponse is the public representation of an image
// swagger:model ImageResponse
type ImageResponse struct {
	ID               int64       `json:"id"`
	ImageName        string      `json:"imageName"`
	OriginalFilename string      `json:"originalFilename"`
	ImgurID          *string     `json:"imgurId"`
	ImgurURL         *string     `json:"imgurUrl"`
	DropboxPath      *string     `json:"dropboxPath"`
	Backend          Backend     `json:"backend"`
	Title            string      `json:"title,omitempty"`
	Description      string      `json:"description,omitempty"`
	Tags             string      `json:"tags,omitempty"`
	FileSize         int64       `json:"fileSize"`
	MimeType         string      `json:"mimeType"`
	Width            *int        `json:"width,omitempty"`
	Height           *int        `json:"height,omitempty"`
	Status           ImageStatus `json:"status"`
	ViewCount        int64       `json:"viewCount"`
	UserID           int64       `json:"userId"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// DropboxImageResponse describes a file kept directly in a user's Dropbox folder
// swagger:model DropboxImageResponse
type DropboxImageResponse struct {
	ImageName        string    `json:"imageName"`
	OriginalFilename string    `json:"originalFilename"`
	DropboxPath      string    `json:"dropboxPath"`
	Title            string    `json:"title,omitempty"`
	Description      string    `json:"description,omitempty"`
	FileSize         int64     `json:"fileSize"`
	MimeType         string    `json:"mimeType,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UploadFile is an uploaded file held in memory.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UpdateImageRequest carries editable image metadata. Nil fields are left unchanged.
// swagger:model UpdateImageRequest
type UpdateImageRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Tags        *string `json:"tags" validate:"omitempty,max=500"`
}

// ImageCountResponse is the answer of /images/count
// swagger:model ImageCountResponse
type ImageCountResponse struct {
	Count int64 `json:"count"`
}

// ImageContent is an opened image: either a stream of its bytes or a URL to redirect to.
type ImageContent struct {
	Body        io.ReadCloser
	RedirectURL string
	FileName    string
	ContentType string
	Size        int64
}
