package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MaxUploadBytes caps receipt and photo uploads at 10 MB.
const MaxUploadBytes = 10 << 20

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"application/pdf": true,
}

// UploadService resolves uploaded receipt and photo files to URLs before
// they reach the store. With a Cloudinary URL configured files go there;
// otherwise they land in a local uploads directory served by the router.
type UploadService struct {
	cld *cloudinary.Cloudinary
	dir string
}

func NewUploadService(cloudinaryURL, localDir string) (*UploadService, error) {
	if cloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(cloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
		}
		return &UploadService{cld: cld}, nil
	}
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{dir: localDir}, nil
}

// ServesLocalFiles reports whether uploads are stored on local disk and
// need the /uploads static route.
func (u *UploadService) ServesLocalFiles() bool { return u.cld == nil }

// LocalDir is the on-disk upload directory when local storage is in use.
func (u *UploadService) LocalDir() string { return u.dir }

// Save validates and stores one uploaded file, returning its public URL.
// field names the form field ("receipt", "photo_0", ...) and prefixes the
// stored filename.
func (u *UploadService) Save(header *multipart.FileHeader, field string) (string, error) {
	if header.Size > MaxUploadBytes {
		return "", fmt.Errorf("file %s exceeds the 10MB limit", header.Filename)
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return "", fmt.Errorf("invalid file type %q: only JPEG, PNG and PDF files are allowed", contentType)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	if u.cld != nil {
		return u.saveCloudinary(file, header, field)
	}
	return u.saveLocal(file, header, field)
}

func (u *UploadService) saveCloudinary(file multipart.File, header *multipart.FileHeader, field string) (string, error) {
	name := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	publicID := fmt.Sprintf("%s/%s_%d", field, name, time.Now().UnixNano())

	result, err := u.cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "warranty",
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return strings.Replace(result.URL, "http://", "https://", 1), nil
}

func (u *UploadService) saveLocal(file multipart.File, header *multipart.FileHeader, field string) (string, error) {
	name := fmt.Sprintf("%s-%d%s", field, time.Now().UnixNano(), filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return "/uploads/" + name, nil
}
