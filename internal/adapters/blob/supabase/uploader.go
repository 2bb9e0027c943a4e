package supabase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"mamas-embrace/internal/ports/blob"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

var (
	ErrNotConfigured      = errors.New("storage client not configured")
	ErrUnknownContentType = errors.New("could not determine content type")
	ErrUpstream           = errors.New("storage upstream error")
)

type Config struct {
	// URL del endpoint de storage, p.ej. https://<ref>.supabase.co/storage/v1
	BaseURL string
	APIKey  string
	Bucket  string
}

// Uploader implementa blob.Uploader sobre Supabase Storage.
type Uploader struct {
	client *storage_go.Client
	bucket string
}

func NewUploader(cfg Config) *Uploader {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return &Uploader{}
	}

	return &Uploader{
		client: storage_go.NewClient(base, key, nil),
		bucket: strings.TrimSpace(cfg.Bucket),
	}
}

func (u *Uploader) IsConfigured() bool {
	return u != nil && u.client != nil && u.bucket != ""
}

// Upload sube el blob a {folder}/{subjectID}/{nombre generado} y devuelve
// la URL pública. Falla si no se puede determinar el content type.
func (u *Uploader) Upload(ctx context.Context, in blob.UploadInput) (string, error) {
	if !u.IsConfigured() {
		return "", ErrNotConfigured
	}

	folder := strings.Trim(strings.TrimSpace(in.Folder), "/")
	subject := strings.Trim(strings.TrimSpace(in.SubjectID), "/")
	if folder == "" || subject == "" {
		return "", errors.New("folder and subject id required")
	}

	ct := resolveContentType(in.ContentType, in.Filename)
	if ct == "" {
		return "", ErrUnknownContentType
	}

	name := GenerateObjectName(in.Filename)
	objectPath := folder + "/" + subject + "/" + name

	if _, err := u.client.UploadFile(u.bucket, objectPath, bytes.NewReader(in.Data), storage_go.FileOptions{
		ContentType: &ct,
	}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	res := u.client.GetPublicUrl(u.bucket, objectPath)
	if strings.TrimSpace(res.SignedURL) == "" {
		return "", fmt.Errorf("%w: empty public url", ErrUpstream)
	}
	return res.SignedURL, nil
}

// GenerateObjectName genera un nombre aleatorio resistente a colisiones
// conservando la extensión original (si la hay).
func GenerateObjectName(originalName string) string {
	ext := strings.ToLower(path.Ext(strings.TrimSpace(originalName)))
	return uuid.NewString() + ext
}

func resolveContentType(declared, filename string) string {
	ct := strings.TrimSpace(declared)
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	if ext := path.Ext(strings.TrimSpace(filename)); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return ct
}
