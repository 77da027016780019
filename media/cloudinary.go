package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"portfolio/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Constrain to at most 500x500, aspect-preserving, never upscaling.
const limitTransform = "c_limit,w_500,h_500"

var allowedFormats = []string{"jpg", "jpeg", "png"}

// Upload is the result of a successful image upload: the public URL plus the
// opaque identifier needed to delete the image later.
type Upload struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Format   string
	Bytes    int
}

// Client stores portfolio images on Cloudinary under a fixed folder and
// deletes them by public id.
type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.APIKey == "" || cfg.Cloudinary.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Client{cld: cld, folder: cfg.Cloudinary.Folder}, nil
}

// UploadImage stores one image under the configured folder with the limit
// transform applied. Files that are not jpg, jpeg or png are rejected before
// anything is sent upstream.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (*Upload, error) {
	if !FormatAllowed(filename) {
		return nil, fmt.Errorf("file format not allowed: %q", filepath.Ext(filename))
	}
	resp, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         c.folder,
		AllowedFormats: api.CldAPIArray(allowedFormats),
		Transformation: limitTransform,
	})
	if err != nil {
		return nil, err
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return &Upload{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
		Format:   resp.Format,
		Bytes:    resp.Bytes,
	}, nil
}

// DeleteImage removes a previously uploaded image. A "not found" answer from
// the host is treated as success.
func (c *Client) DeleteImage(ctx context.Context, publicID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", resp.Result)
	}
	return nil
}

// FormatAllowed reports whether the filename carries an accepted image
// extension.
func FormatAllowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, f := range allowedFormats {
		if ext == f {
			return true
		}
	}
	return false
}
