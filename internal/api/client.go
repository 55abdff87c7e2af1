// Package api is the client for the gallery backend. Every operation
// is a fresh request/response round trip: no retries, no caching, and
// failures are surfaced unmodified to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/url"
	"strings"

	"glance/internal/errors"
	"glance/internal/log"
	"glance/internal/session"
	"glance/pkg/types"

	"github.com/hashicorp/go-retryablehttp"
)

// Client talks to the gallery backend. Credentials are injected from
// the session store on every request once set.
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	session    *session.Store
}

// NewClient creates a new API client.
func NewClient(baseURL string, sess *session.Store) *Client {
	// The shared retryablehttp plumbing is used for its client
	// wiring only; the backend contract is strictly no-retry.
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	return &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		session:    sess,
	}
}

// escapePath escapes each segment of a slash-separated media path so
// it can be embedded in a URL.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

// doRequest performs an HTTP request with authorization injected.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*nethttp.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if header, ok := c.session.Header(); ok {
		req.Header.Set("Authorization", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("API call failed: %s %s: %v", method, path, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// responseError converts a non-2xx response into an application
// error. A 401 always maps to the Unauthorized kind regardless of
// body; otherwise the JSON {error} field is preferred and a generic
// "HTTP <status>" message is synthesized when absent.
func responseError(resp *nethttp.Response) error {
	if resp.StatusCode == nethttp.StatusUnauthorized {
		return errors.NewUnauthorized()
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed actionResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return errors.NewRequestError(parsed.Error, resp.StatusCode, errors.RequestFailed, nil)
	}
	return errors.NewRequestError(fmt.Sprintf("HTTP %d", resp.StatusCode), resp.StatusCode, errors.RequestFailed, nil)
}

// decode reads a 2xx response body into out, or converts a failure
// status into an error.
func decode(resp *nethttp.Response, out interface{}) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Folders lists a folder: sub-folders plus the media files directly
// inside it. The root path lists the top-level folders.
func (c *Client) Folders(ctx context.Context, path types.Path) (*FolderListing, error) {
	endpoint := "/api/folders"
	if !path.IsRoot() {
		endpoint += "/" + escapePath(path.String())
	}
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var listing FolderListing
	if err := decode(resp, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// RecursiveMedia lists every media file below path, descending
// server-side.
func (c *Client) RecursiveMedia(ctx context.Context, path types.Path) ([]types.MediaItem, error) {
	endpoint := "/api/recursive_media"
	if !path.IsRoot() {
		endpoint += "/" + escapePath(path.String())
	}
	resp, err := c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var media []types.MediaItem
	if err := decode(resp, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// TrashContent lists the trash container.
func (c *Client) TrashContent(ctx context.Context) (*TrashListing, error) {
	resp, err := c.doRequest(ctx, nethttp.MethodGet, "/api/trash_content", nil)
	if err != nil {
		return nil, err
	}
	var listing TrashListing
	if err := decode(resp, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// MoveToTrash moves a single file into the trash.
func (c *Client) MoveToTrash(ctx context.Context, filePath string) error {
	return c.action(ctx, nethttp.MethodPost, "/api/move_to_trash", pathRequest{Path: filePath})
}

// RestoreFile restores a single file from the trash to its original
// location.
func (c *Client) RestoreFile(ctx context.Context, filePath string) error {
	return c.action(ctx, nethttp.MethodPost, "/api/restore_file", pathRequest{Path: filePath})
}

// DeleteFileForever permanently deletes a file from the trash.
func (c *Client) DeleteFileForever(ctx context.Context, filePath string) error {
	return c.action(ctx, nethttp.MethodDelete, "/api/delete_file_forever", pathRequest{Path: filePath})
}

// DeleteFolder moves an entire folder into the trash.
func (c *Client) DeleteFolder(ctx context.Context, folderPath types.Path) error {
	return c.action(ctx, nethttp.MethodPost, "/api/delete_folder", folderPathRequest{Path: folderPath})
}

// EmptyTrash permanently deletes everything in the trash.
func (c *Client) EmptyTrash(ctx context.Context) error {
	return c.action(ctx, nethttp.MethodPost, "/api/empty_trash", nil)
}

// RestoreAll restores every trashed file to its original location.
func (c *Client) RestoreAll(ctx context.Context) error {
	return c.action(ctx, nethttp.MethodPost, "/api/restore_all", nil)
}

// CreateFolder creates a folder under parent.
func (c *Client) CreateFolder(ctx context.Context, parent types.Path, name string) error {
	return c.action(ctx, nethttp.MethodPost, "/api/create_folder", createFolderRequest{
		ParentPath: parent,
		FolderName: name,
	})
}

// DeleteMultiple deletes a batch of files; permanent selects
// permanent deletion from trash over a move to trash. The server is
// trusted to apply the operation per item; the client makes no
// per-item distinction.
func (c *Client) DeleteMultiple(ctx context.Context, paths []string, permanent bool) error {
	return c.action(ctx, nethttp.MethodPost, "/api/delete_multiple", deleteMultipleRequest{
		Paths:       paths,
		IsPermanent: permanent,
	})
}

// RestoreMultiple restores a batch of trashed files.
func (c *Client) RestoreMultiple(ctx context.Context, paths []string) error {
	return c.action(ctx, nethttp.MethodPost, "/api/restore_multiple", restoreMultipleRequest{Paths: paths})
}

func (c *Client) action(ctx context.Context, method, endpoint string, body interface{}) error {
	resp, err := c.doRequest(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// UploadFile uploads a single file into dest as a multipart form.
func (c *Client) UploadFile(ctx context.Context, dest types.Path, filename string, content io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to read upload content: %w", err)
	}
	pathJSON, err := json.Marshal([]string(dest))
	if err != nil {
		return fmt.Errorf("failed to encode destination path: %w", err)
	}
	if err := writer.WriteField("current_path", string(pathJSON)); err != nil {
		return fmt.Errorf("failed to build multipart form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart form: %w", err)
	}

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodPost, c.baseURL+"/api/upload_file", &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if header, ok := c.session.Header(); ok {
		req.Header.Set("Authorization", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("upload failed: %s: %v", filename, err)
		return fmt.Errorf("request failed: %w", err)
	}
	return decode(resp, nil)
}

// Media streams the full-size media file at path. The caller owns the
// returned reader.
func (c *Client) Media(ctx context.Context, path string) (io.ReadCloser, error) {
	return c.stream(ctx, "/api/media/"+escapePath(path))
}

// Thumbnail streams the thumbnail for the media file at path.
func (c *Client) Thumbnail(ctx context.Context, path string) (io.ReadCloser, error) {
	return c.stream(ctx, "/api/thumbnail/"+escapePath(path))
}

// DownloadOriginalRAW streams the original RAW file backing path.
func (c *Client) DownloadOriginalRAW(ctx context.Context, path string) (io.ReadCloser, error) {
	return c.stream(ctx, "/api/download_original_raw/"+escapePath(path))
}

func (c *Client) stream(ctx context.Context, endpoint string) (io.ReadCloser, error) {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if header, ok := c.session.Header(); ok {
		req.Header.Set("Authorization", header)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, responseError(resp)
	}
	return resp.Body, nil
}
