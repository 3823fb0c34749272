// Package imagehost stores article cover images in S3-compatible object
// storage and hands back a handle plus a public URL. Uploaded objects are
// public-read; the handle is the object key and is all that is needed to
// delete the image later.
package imagehost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Image is the handle returned by an upload.
type Image struct {
	ID  string
	URL string
}

// Host is the external image hosting boundary.
type Host interface {
	Upload(ctx context.Context, filename string, data []byte) (Image, error)
	Destroy(ctx context.Context, id string) error
}

// Ensure Client implements Host
var _ Host = (*Client)(nil)

// Client implements Host on S3-compatible storage with path-style access.
type Client struct {
	s3        *s3.Client
	bucket    string
	folder    string
	endpoint  string
	publicURL string // optional CDN/direct URL for public files
}

// New creates an image host client. Returns (nil, nil) if endpoint or
// credentials are empty, allowing the app to start without storage.
func New(endpoint, region, accessKey, secretKey, bucket, publicURL, folder string) (*Client, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		bucket:    bucket,
		folder:    strings.Trim(folder, "/"),
		endpoint:  endpoint,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// ErrNotConfigured is returned when the client was constructed without
// endpoint or credentials.
var ErrNotConfigured = errors.New("image host not configured")

// Upload stores the image under a generated key and returns its handle and
// public URL. The original filename only contributes its extension.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (Image, error) {
	if c == nil || c.s3 == nil {
		return Image{}, ErrNotConfigured
	}

	key := c.folder + "/" + uuid.New().String() + path.Ext(filename)
	contentType := http.DetectContentType(data)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return Image{}, fmt.Errorf("image upload %s/%s: %w", c.bucket, key, err)
	}

	return Image{ID: key, URL: c.fileURL(key)}, nil
}

// Destroy removes a previously uploaded image by its handle.
func (c *Client) Destroy(ctx context.Context, id string) error {
	if c == nil || c.s3 == nil {
		return ErrNotConfigured
	}

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("image delete %s/%s: %w", c.bucket, id, err)
	}
	return nil
}

// fileURL returns the public URL for an object key. Uses the configured
// public URL if set, otherwise builds a path-style URL.
func (c *Client) fileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}
