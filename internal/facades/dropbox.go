package facades

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// ErrDropboxNotFound is returned when the path does not exist in Dropbox.
var ErrDropboxNotFound = errors.New("dropbox path not found")

// DropboxFiles is the subset of the Dropbox files API the vault uses.
// files.Client satisfies it.
type DropboxFiles interface {
	CreateFolderV2(arg *files.CreateFolderArg) (*files.CreateFolderResult, error)
	Upload(arg *files.UploadArg, content io.Reader) (*files.FileMetadata, error)
	Download(arg *files.DownloadArg) (*files.FileMetadata, io.ReadCloser, error)
	DeleteV2(arg *files.DeleteArg) (*files.DeleteResult, error)
	ListFolder(arg *files.ListFolderArg) (*files.ListFolderResult, error)
	ListFolderContinue(arg *files.ListFolderContinueArg) (*files.ListFolderResult, error)
}

// TokenSource yields a valid access token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// DropboxFilesFactory binds a files client to an access token.
type DropboxFilesFactory func(token string) DropboxFiles

// NewDropboxFilesFactory returns a factory for SDK clients with a 30s timeout.
func NewDropboxFilesFactory() DropboxFilesFactory {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return func(token string) DropboxFiles {
		return files.New(dropbox.Config{
			Token:    token,
			LogLevel: dropbox.LogOff,
			Client:   httpClient,
		})
	}
}

// DropboxFile describes an uploaded file.
type DropboxFile struct {
	Path string
	Size int64
}

// DropboxEntry is a file found in a listed folder.
type DropboxEntry struct {
	Name           string
	Path           string
	Size           int64
	ClientModified time.Time
	ServerModified time.Time
}

// DropboxClient stores files under app-relative paths, fetching a fresh token per call.
type DropboxClient struct {
	tokens   TokenSource
	newFiles DropboxFilesFactory
}

func NewDropboxClient(tokens TokenSource, newFiles DropboxFilesFactory) *DropboxClient {
	return &DropboxClient{tokens: tokens, newFiles: newFiles}
}

func (c *DropboxClient) files(ctx context.Context) (DropboxFiles, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("dropbox token: %w", err)
	}
	return c.newFiles(token), nil
}

// EnsureFolder creates path. An existing folder is not an error.
func (c *DropboxClient) EnsureFolder(ctx context.Context, path string) error {
	fc, err := c.files(ctx)
	if err != nil {
		return err
	}
	_, err = fc.CreateFolderV2(files.NewCreateFolderArg(path))
	if err != nil && !strings.Contains(err.Error(), "path/conflict") {
		logger.Log.Errorw("dropbox create folder failed", "path", path, "error", err)
		return err
	}
	return nil
}

// Upload writes data at path.
func (c *DropboxClient) Upload(ctx context.Context, path string, data []byte) (*DropboxFile, error) {
	fc, err := c.files(ctx)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("uploading file to dropbox", "path", path, "size", len(data))

	meta, err := fc.Upload(files.NewUploadArg(path), bytes.NewReader(data))
	if err != nil {
		logger.Log.Errorw("dropbox upload failed", "path", path, "error", err)
		return nil, err
	}

	file := &DropboxFile{Path: path, Size: int64(len(data))}
	if meta != nil {
		if meta.PathDisplay != "" {
			file.Path = meta.PathDisplay
		}
		file.Size = int64(meta.Size)
	}
	return file, nil
}

// Download opens the file at path. The caller closes the body.
func (c *DropboxClient) Download(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	fc, err := c.files(ctx)
	if err != nil {
		return nil, 0, err
	}
	meta, body, err := fc.Download(files.NewDownloadArg(path))
	if err != nil {
		if isNotFound(err) {
			return nil, 0, ErrDropboxNotFound
		}
		logger.Log.Errorw("dropbox download failed", "path", path, "error", err)
		return nil, 0, err
	}
	var size int64
	if meta != nil {
		size = int64(meta.Size)
	}
	return body, size, nil
}

// Delete removes the file at path. A missing file yields ErrDropboxNotFound.
func (c *DropboxClient) Delete(ctx context.Context, path string) error {
	fc, err := c.files(ctx)
	if err != nil {
		return err
	}
	if _, err := fc.DeleteV2(files.NewDeleteArg(path)); err != nil {
		if isNotFound(err) {
			return ErrDropboxNotFound
		}
		logger.Log.Errorw("dropbox delete failed", "path", path, "error", err)
		return err
	}
	logger.Log.Infow("file deleted from dropbox", "path", path)
	return nil
}

// List returns the files directly under folder, following continuation
// cursors. Subfolders are skipped. A missing folder yields ErrDropboxNotFound.
func (c *DropboxClient) List(ctx context.Context, folder string) ([]DropboxEntry, error) {
	fc, err := c.files(ctx)
	if err != nil {
		return nil, err
	}

	res, err := fc.ListFolder(files.NewListFolderArg(folder))
	var entries []DropboxEntry
	for {
		if err != nil {
			if isNotFound(err) {
				return nil, ErrDropboxNotFound
			}
			logger.Log.Errorw("dropbox list folder failed", "path", folder, "error", err)
			return nil, err
		}
		for _, e := range res.Entries {
			meta, ok := e.(*files.FileMetadata)
			if !ok {
				continue
			}
			entries = append(entries, DropboxEntry{
				Name:           meta.Name,
				Path:           meta.PathDisplay,
				Size:           int64(meta.Size),
				ClientModified: meta.ClientModified,
				ServerModified: meta.ServerModified,
			})
		}
		if !res.HasMore {
			return entries, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err = fc.ListFolderContinue(files.NewListFolderContinueArg(res.Cursor))
	}
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "not_found")
}
