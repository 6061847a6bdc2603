package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"vendor-marketplace-be/internal/pkg/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const PaymentProofDir = "payment-proofs"

var allowedProofTypes = []string{"image/jpeg", "image/png", "image/webp"}

// ProofStore persists payment screenshots and hands back a path relative to the server root.
type ProofStore interface {
	SavePaymentProof(ctx context.Context, r io.Reader) (string, error)
	Delete(ctx context.Context, relPath string) error
}

// LocalStorage writes files below basePath on the local filesystem.
type LocalStorage struct {
	basePath string
	maxBytes int64
	create   func(name string) (io.WriteCloser, error)
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func NewLocalStorage(basePath string, maxBytes int64) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "uploads"
	}
	if err := os.MkdirAll(filepath.Join(basePath, PaymentProofDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, maxBytes: maxBytes, create: createFile}, nil
}

// SavePaymentProof sniffs the content type, rejects non-images and oversize files,
// and stores the file under payment-proofs/<uuid><ext>.
func (s *LocalStorage) SavePaymentProof(ctx context.Context, r io.Reader) (string, error) {
	if r == nil {
		return "", apperror.InvalidInput("payment screenshot is required")
	}

	limit := s.maxBytes
	if limit <= 0 {
		limit = 5 * 1024 * 1024
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return "", apperror.InvalidInput("payment screenshot is required")
	}
	if int64(len(data)) > limit {
		return "", apperror.InvalidInput(fmt.Sprintf("payment screenshot exceeds %d bytes", limit))
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedProofTypes...) {
		return "", apperror.InvalidInput(fmt.Sprintf("unsupported screenshot type %s", mtype.String()))
	}

	name := uuid.New().String() + mtype.Extension()
	rel := filepath.Join(s.basePath, PaymentProofDir, name)

	if err := s.writeFile(rel, data); err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// writeFile leaves nothing behind when the write or close fails.
func (s *LocalStorage) writeFile(path string, data []byte) (err error) {
	file, err := s.create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err := io.Copy(file, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes a stored proof; paths outside basePath are refused.
func (s *LocalStorage) Delete(ctx context.Context, relPath string) error {
	if relPath == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(relPath))
	base := filepath.Clean(s.basePath)
	if !strings.HasPrefix(clean, base+string(filepath.Separator)) {
		return fmt.Errorf("refusing to delete %s outside storage root", relPath)
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
