package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Folder prefixes every object key written by the upload endpoint.
const Folder = "trekking"

var ErrNotFound = errors.New("assets: object not found")

// Host stores image objects and serves them from a public URL. Keys are the
// public IDs handed back to the admin UI.
type Host interface {
	// Put uploads size bytes from r under key and returns its public URL.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks the bucket is reachable, used by readiness.
	Ping(ctx context.Context) error

	// PublicID maps a stored URL back to its object key.
	PublicID(url string) (string, bool)
}

// Config is shared by the S3 compatible drivers.
type Config struct {
	Endpoint  string // host:port, empty for AWS S3
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool

	// PublicURL is the origin browsers load images from. Defaults to the
	// endpoint.
	PublicURL string
}

// BaseURL returns the origin objects are served from, without a trailing
// slash.
func (c Config) BaseURL() string {
	if c.PublicURL != "" {
		return strings.TrimRight(c.PublicURL, "/")
	}
	if c.Endpoint == "" {
		return fmt.Sprintf("https://s3.%s.amazonaws.com", c.Region)
	}
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + c.Endpoint
}

// ObjectURL is the path-style public URL of key.
func (c Config) ObjectURL(key string) string {
	return c.BaseURL() + "/" + c.Bucket + "/" + key
}

var legacyUploadPath = regexp.MustCompile(`/image/upload/(?:v\d+/)?(.+?)(?:\.\w+)?$`)

// PublicIDFromURL extracts the object key from an image URL. URLs on our own
// bucket keep their extension since it is part of the key. Older content
// still points at the previous image CDN, where the id is the path after
// /image/upload/ without version or extension.
func PublicIDFromURL(bucket, url string) (string, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", false
	}
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}

	if bucket != "" {
		marker := "/" + bucket + "/"
		if i := strings.Index(url, marker); i >= 0 {
			key := url[i+len(marker):]
			return key, key != ""
		}
	}

	if m := legacyUploadPath.FindStringSubmatch(url); m != nil {
		return m[1], true
	}
	return "", false
}
