package facades

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImgurClient_Upload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantID  string
	}{
		{
			name:   "success",
			body:   `{"success":true,"status":200,"data":{"id":"abc","deletehash":"del","link":"https://i.imgur.com/abc.png","type":"image/png","width":10,"height":20,"size":3}}`,
			wantID: "abc",
		},
		{
			name:    "not successful",
			body:    `{"success":false,"status":400,"data":{"error":"bad"}}`,
			wantErr: true,
		},
		{
			name:    "no data",
			body:    `{"success":true,"status":200,"data":null}`,
			wantErr: true,
		},
		{
			name:    "garbage",
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/3/image", r.URL.Path)
				assert.Equal(t, "Client-ID cid", r.Header.Get("Authorization"))
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Equal(t, "base64", r.FormValue("type"))
				assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png")), r.FormValue("image"))
				assert.Equal(t, "Sunset", r.FormValue("title"))
				_, hasDesc := r.MultipartForm.Value["description"]
				assert.False(t, hasDesc)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewImgurClient(srv.URL+"/3/", "cid")
			img, err := client.Upload(context.Background(), []byte("png"), " Sunset ", "  ")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, img.ID)
			assert.Equal(t, "del", img.DeleteHash)
			assert.Equal(t, 10, img.Width)
			assert.Equal(t, int64(3), img.Size)
		})
	}
}

func TestImgurClient_Delete(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{name: "confirmed", status: 200, body: `{"success":true,"status":200,"data":true}`, want: true},
		{name: "refused", status: 404, body: `{"success":false,"status":404,"data":{}}`, want: false},
		{name: "unreadable", status: 500, body: `oops`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/image/hash1", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			ok := NewImgurClient(srv.URL, "cid").Delete(context.Background(), "hash1")
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestImgurClient_DeleteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.False(t, NewImgurClient(url, "cid").Delete(context.Background(), "hash"))
}

func TestImgurClient_GetInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path != "/image/abc" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"status":404,"data":{"error":"not found"}}`))
			return
		}
		w.Write([]byte(`{"success":true,"status":200,"data":{"id":"abc","link":"https://i.imgur.com/abc.png","type":"image/png"}}`))
	}))
	defer srv.Close()

	client := NewImgurClient(srv.URL, "cid")

	img, err := client.GetInfo(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://i.imgur.com/abc.png", img.Link)

	_, err = client.GetInfo(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrImgurRejected)
}
