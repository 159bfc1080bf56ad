package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
)

// ErrImgurRejected is returned when Imgur answers without success or without data.
var ErrImgurRejected = errors.New("imgur rejected the request")

// ImgurImage is the data object of an Imgur image response.
type ImgurImage struct {
	ID         string `json:"id"`
	DeleteHash string `json:"deletehash"`
	Link       string `json:"link"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Size       int64  `json:"size"`
}

type imgurResponse struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
}

// ImgurClient talks to the Imgur v3 API with an anonymous client id.
type ImgurClient struct {
	baseURL  string
	clientID string
	client   *http.Client
}

// NewImgurClient creates a client with a 5s dial timeout and a 10s overall timeout.
func NewImgurClient(baseURL, clientID string) *ImgurClient {
	return NewImgurClientWithHTTP(baseURL, clientID, &http.Client{
		Timeout: 10 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	})
}

// NewImgurClientWithHTTP creates a client on top of an existing http.Client.
func NewImgurClientWithHTTP(baseURL, clientID string, client *http.Client) *ImgurClient {
	return &ImgurClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		client:   client,
	}
}

// Upload posts data base64-encoded. Blank title and description are omitted.
func (c *ImgurClient) Upload(ctx context.Context, data []byte, title, description string) (*ImgurImage, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := [][2]string{
		{"image", base64.StdEncoding.EncodeToString(data)},
		{"type", "base64"},
	}
	if t := strings.TrimSpace(title); t != "" {
		fields = append(fields, [2]string{"title", t})
	}
	if d := strings.TrimSpace(description); d != "" {
		fields = append(fields, [2]string{"description", d})
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/image", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	logger.Log.Infow("uploading image to imgur", "size", len(data))

	image, err := c.doImage(req)
	if err != nil {
		logger.Log.Errorw("imgur upload failed", "error", err)
		return nil, err
	}

	logger.Log.Infow("image uploaded to imgur", "imgur_id", image.ID)
	return image, nil
}

// Delete removes the image identified by its delete hash. It reports whether
// Imgur confirmed the deletion and never fails.
func (c *ImgurClient) Delete(ctx context.Context, deleteHash string) bool {
	req, err := c.newRequest(ctx, http.MethodDelete, "/image/"+deleteHash, nil)
	if err != nil {
		logger.Log.Errorw("imgur delete failed", "delete_hash", deleteHash, "error", err)
		return false
	}

	resp, err := c.do(req)
	if err != nil {
		logger.Log.Errorw("imgur delete failed", "delete_hash", deleteHash, "error", err)
		return false
	}
	if !resp.Success {
		logger.Log.Warnw("imgur did not confirm delete", "delete_hash", deleteHash, "status", resp.Status)
		return false
	}

	logger.Log.Infow("image deleted from imgur", "delete_hash", deleteHash)
	return true
}

// GetInfo fetches the metadata of a hosted image.
func (c *ImgurClient) GetInfo(ctx context.Context, imageID string) (*ImgurImage, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/image/"+imageID, nil)
	if err != nil {
		return nil, err
	}
	image, err := c.doImage(req)
	if err != nil {
		logger.Log.Warnw("imgur info failed", "imgur_id", imageID, "error", err)
		return nil, err
	}
	return image, nil
}

func (c *ImgurClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)
	return req, nil
}

func (c *ImgurClient) do(req *http.Request) (*imgurResponse, error) {
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var resp imgurResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode imgur response (http %d): %w", res.StatusCode, err)
	}
	if resp.Status == 0 {
		resp.Status = res.StatusCode
	}
	return &resp, nil
}

func (c *ImgurClient) doImage(req *http.Request) (*ImgurImage, error) {
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !resp.Success || len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, fmt.Errorf("%w: status %d", ErrImgurRejected, resp.Status)
	}

	var image ImgurImage
	if err := json.Unmarshal(resp.Data, &image); err != nil {
		return nil, fmt.Errorf("decode imgur data: %w", err)
	}
	if image.ID == "" {
		return nil, fmt.Errorf("%w: empty image id", ErrImgurRejected)
	}
	return &image, nil
}
