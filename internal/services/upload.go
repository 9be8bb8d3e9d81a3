package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
)

// UploadService reads résumé uploads into memory. Nothing is written to disk.
type UploadService interface {
	ReadResume(file *multipart.FileHeader) ([]byte, error)
	MaxFileSize() int64
}

type uploadService struct {
	maxFileSize       int64
	allowedExtensions map[string]struct{}
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
		allowedExtensions: map[string]struct{}{
			".pdf":  {},
			".docx": {},
		},
	}
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

func (s *uploadService) ReadResume(file *multipart.FileHeader) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := s.allowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Size comes from the client; enforce the limit on the bytes as well.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return data, nil
}
