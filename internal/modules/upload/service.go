package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxFileSize matches the editor-side limit: anything bigger is
	// rejected before a byte hits the disk.
	MaxFileSize = 5 * 1024 * 1024

	BucketDir      = "blog-images"
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// AllowedMimeTypes allows images only, detected by content sniffing, not by the
// client-supplied filename.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service stores blog images on local disk under a randomized unique path
// and hands back the public URL.
type Service struct {
	repo       Repository
	baseDir    string // absolute path to uploads dir
	staticBase string // URL prefix for serving files
}

func NewService(repo Repository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{repo: repo, baseDir: baseDir, staticBase: staticBase}
}

// Upload validates, writes the file and records it in the database.
func (s *Service) Upload(ctx context.Context, userID string, fileHeader *multipart.FileHeader) (*Upload, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if !AllowedMimeTypes[mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	absDir := filepath.Join(s.baseDir, BucketDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Randomized unique path: blog-images/<uuid>.<ext>
	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := id + strings.ToLower(ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(BucketDir, filename)
	fileURL := s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/")

	rec := &Upload{
		ID:           id,
		UserID:       userID,
		OriginalName: fileHeader.Filename,
		FilePath:     relPath,
		FileURL:      fileURL,
		MimeType:     mimeType,
		Size:         fileHeader.Size,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		_ = os.Remove(absPath) // rollback file on DB error
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	return rec, nil
}

// Delete removes the physical file and the DB record.
func (s *Service) Delete(ctx context.Context, id string, userID string) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return ErrNotOwner
	}

	absPath := filepath.Join(s.baseDir, rec.FilePath)
	_ = os.Remove(absPath) // file may already be gone

	return s.repo.Delete(ctx, id)
}

// ListByUser returns all uploads for a user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Upload, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
