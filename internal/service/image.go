package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/storage"
)

// allowedExtensions is the upload allow-list, matched case-insensitively.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

type ImageService interface {
	// Ingest persists the uploaded bytes under a generated unique name
	// and returns the public URL the file is reachable at.
	Ingest(ctx context.Context, filename string, contents io.Reader) (string, error)
}

type imageService struct {
	store        storage.Storage
	publicBase   string
	staticPrefix string
	logger       hclog.Logger
}

// NewImageService builds an ImageService writing to store. publicBase is
// the externally reachable base address of the service and staticPrefix
// the path files are served under, e.g. "/static/uploads".
func NewImageService(store storage.Storage, publicBase, staticPrefix string, logger hclog.Logger) ImageService {
	return &imageService{
		store:        store,
		publicBase:   strings.TrimRight(publicBase, "/"),
		staticPrefix: strings.TrimRight(staticPrefix, "/"),
		logger:       logger,
	}
}

func (s *imageService) Ingest(ctx context.Context, filename string, contents io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domain.ErrUnsupportedFormat
	}

	// Never trust the client-supplied name; a random 128-bit token also
	// makes concurrent uploads of identically named files collision-free.
	id := uuid.New()
	name := fmt.Sprintf("%x%s", id[:], ext)

	s.logger.Debug("Saving uploaded image", "original", filename, "stored", name)

	if err := s.store.Save(name, contents); err != nil {
		s.logger.Error("Unable to save uploaded image", "stored", name, "error", err)
		return "", err
	}

	return fmt.Sprintf("%s%s/%s", s.publicBase, s.staticPrefix, name), nil
}
