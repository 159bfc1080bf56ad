package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-image-vault/internal/facades"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

func TestImgurImageName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{filename: "cat.png", want: "cat_abc"},
		{filename: "archive.tar.gz", want: "archive.tar_abc"},
		{filename: "noext", want: "noext_abc"},
		{filename: ".hidden", want: ".hidden_abc"},
		{filename: "", want: "image_abc"},
		{filename: "  ", want: "image_abc"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, imgurImageName(tt.filename, "abc"))
		})
	}
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".png", fileExtension("cat.png"))
	assert.Equal(t, ".gz", fileExtension("a.tar.gz"))
	assert.Equal(t, "", fileExtension("noext"))
}

func TestImgurStore_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockImgurAPI(ctrl)
	store := NewImgurStore(api)
	owner := &models.User{ID: 3}

	api.EXPECT().Upload(gomock.Any(), []byte("img"), "title", "desc").Return(&facades.ImgurImage{
		ID: "abc", DeleteHash: "del", Link: "https://i.imgur.com/abc.png", Type: "image/png", Width: 640, Height: 480, Size: 3,
	}, nil)

	image, err := store.Store(context.Background(), owner, models.UploadFile{Name: "cat.png", Data: []byte("img")}, "title", "desc")
	require.NoError(t, err)

	assert.Equal(t, "cat_abc", image.ImageName)
	assert.Equal(t, "cat.png", image.OriginalFilename)
	assert.Equal(t, "abc", *image.ImgurID)
	assert.Equal(t, "del", *image.ImgurDeleteHash)
	assert.Nil(t, image.DropboxPath)
	assert.Equal(t, 640, *image.Width)
	assert.Equal(t, models.BackendImgur, image.Backend())

	content, err := store.Open(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/abc.png", content.RedirectURL)
	assert.Nil(t, content.Body)
}

func TestImgurStore_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockImgurAPI(ctrl)
	store := NewImgurStore(api)
	hash := "del"

	api.EXPECT().Delete(gomock.Any(), "del").Return(false)
	assert.ErrorIs(t, store.Remove(context.Background(), &models.Image{ImgurDeleteHash: &hash}), ErrRemoteDeleteRefused)

	assert.NoError(t, store.Remove(context.Background(), &models.Image{}))
}

func TestDropboxStore_StoreLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDropboxAPI(ctrl)
	store := NewDropboxStore(api, "/images/")
	store.newName = func() string { return "8f14e45f" }

	gomock.InOrder(
		api.EXPECT().EnsureFolder(gomock.Any(), "/images/user-7/images").Return(nil),
		api.EXPECT().Upload(gomock.Any(), "/images/user-7/images/8f14e45f.png", []byte("img")).
			Return(&facades.DropboxFile{Path: "/images/user-7/images/8f14e45f.png", Size: 3}, nil),
	)

	image, err := store.Store(context.Background(), &models.User{ID: 7},
		models.UploadFile{Name: "cat.png", ContentType: "image/png", Data: []byte("img")}, "", "")
	require.NoError(t, err)

	assert.Equal(t, "8f14e45f.png", image.ImageName)
	assert.Equal(t, "cat.png", image.OriginalFilename)
	assert.Equal(t, "/images/user-7/images/8f14e45f.png", *image.DropboxPath)
	assert.Nil(t, image.ImgurID)
	assert.Equal(t, int64(3), image.FileSize)
	assert.Equal(t, "image/png", image.MimeType)
}

func TestDropboxStore_FolderFailureStopsUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDropboxAPI(ctrl)
	store := NewDropboxStore(api, "images")

	api.EXPECT().EnsureFolder(gomock.Any(), "/images/user-1/images").Return(errors.New("quota"))

	_, err := store.Store(context.Background(), &models.User{ID: 1}, models.UploadFile{Name: "a.png", Data: []byte("x")}, "", "")
	assert.Error(t, err)
}

func TestDropboxStore_RemoveAndOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := NewMockDropboxAPI(ctrl)
	store := NewDropboxStore(api, "images")
	p := "/images/user-1/images/a.png"
	image := &models.Image{ID: 4, DropboxPath: &p, FileSize: 5, MimeType: "image/png", OriginalFilename: "a.png"}

	api.EXPECT().Delete(gomock.Any(), p).Return(facades.ErrDropboxNotFound)
	assert.NoError(t, store.Remove(context.Background(), image))

	api.EXPECT().Download(gomock.Any(), p).Return(io.NopCloser(strings.NewReader("hello")), int64(0), nil)
	content, err := store.Open(context.Background(), image)
	require.NoError(t, err)
	defer content.Body.Close()
	assert.Equal(t, int64(5), content.Size)
	assert.Equal(t, "a.png", content.FileName)

	api.EXPECT().Download(gomock.Any(), p).Return(nil, int64(0), facades.ErrDropboxNotFound)
	_, err = store.Open(context.Background(), image)
	assert.Error(t, err)
}
