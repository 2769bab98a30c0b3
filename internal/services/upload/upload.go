// Package upload stores admin media files on disk and records their
// metadata.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// PublicPrefix is the URL path the stored files are served under.
const PublicPrefix = "/uploads/files/"

var (
	ErrTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType = errors.New("file type not allowed")
	ErrEmpty           = errors.New("file is empty")
)

var allowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
	"application/pdf",
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	CreateUpload(ctx context.Context, u models.Upload) (*models.Upload, error)
	DeleteUpload(ctx context.Context, id string) (*models.Upload, error)
	SetUploadUsed(ctx context.Context, id string, used bool) (*models.Upload, error)
}

type Service struct {
	log     *slog.Logger
	storage Storage
	dir     string
	maxSize int64
}

func New(log *slog.Logger, storage Storage, dir string, maxSize int64) *Service {
	return &Service{
		log:     log.With(slog.String("component", "services/upload")),
		storage: storage,
		dir:     dir,
		maxSize: maxSize,
	}
}

func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// Save sniffs the content type of r, writes it under the upload directory
// and records it. The file is removed again if the record cannot be stored.
func (s *Service) Save(ctx context.Context, r io.Reader, originalName, category string) (*models.Upload, error) {
	const op = "services.upload.Save"

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read file: %w", op, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%s: %w", op, ErrTooLarge)
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnsupportedType, mtype.String())
	}

	if category = strings.TrimSpace(category); category == "" {
		category = "general"
	}

	id := uuid.NewString()
	filename := id + mtype.Extension()
	path := filepath.Join(s.dir, filename)

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: failed to create upload dir: %w", op, err)
	}

	if err = writeFile(path, data); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.storage.CreateUpload(ctx, models.Upload{
		ID:           id,
		Filename:     filename,
		OriginalName: filepath.Base(originalName),
		Mimetype:     mtype.String(),
		Size:         int64(len(data)),
		Path:         path,
		URL:          PublicPrefix + filename,
		Category:     category,
	})
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			s.log.Error("failed to remove orphaned upload", slog.String("path", path), sl.Err(rmErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func writeFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return f.Close()
}

// Delete removes the record first and then the file. A file that is
// already gone is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	const op = "services.upload.Delete"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.storage.DeleteUpload(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Error("failed to remove upload file", slog.String("path", u.Path), sl.Err(err))
	}

	return nil
}

// SetUsed flags whether the upload is referenced from an event or setting.
func (s *Service) SetUsed(ctx context.Context, id string, used bool) (*models.Upload, error) {
	const op = "services.upload.SetUsed"

	if err := validate.AsError(validate.Var("id", id, "required,uuid")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.storage.SetUploadUsed(ctx, id, used)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}
