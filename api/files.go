package api

import (
	"context"
	"io"
)

// FilesAPI wraps the generic file upload endpoint used for menu item and
// application images.
type FilesAPI struct {
	c *Client
}

// NewFilesAPI creates the group from a base client
func NewFilesAPI(c *Client) *FilesAPI { return &FilesAPI{c: c} }

// Upload stores a file server-side and returns its path, which callers
// embed as the imageUrl of menu items or applications.
func (f *FilesAPI) Upload(ctx context.Context, fileName string, file io.Reader) (string, error) {
	var out struct {
		FilePath string `json:"filePath"`
	}
	err := f.c.doMultipart(ctx, "files.Upload", "/files/upload", "image", fileName, file, &out)
	if err != nil {
		return "", err
	}
	return out.FilePath, nil
}
