package http

import (
	"io"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/metrics"
	"github.com/tenisx/catalog-api/internal/service"
	"github.com/tenisx/catalog-api/internal/storage"
)

// ImagesHandler handles image uploads and serves the stored files.
type ImagesHandler struct {
	imageService service.ImageService
	store        storage.Storage
	logger       hclog.Logger
}

func NewImagesHandler(is service.ImageService, store storage.Storage, log hclog.Logger) *ImagesHandler {
	return &ImagesHandler{
		imageService: is,
		store:        store,
		logger:       log,
	}
}

// UploadImage handles POST /upload-image
//
// swagger:route POST /upload-image images uploadImage
//
// Stores an uploaded image under a generated name and returns its URL.
//
// Responses:
//
//	200: uploadResponse
//	400: errorResponse
//	500: errorResponse
func (h *ImagesHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(128 * 1024)
	if err != nil {
		h.logger.Error("Unable to parse multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.logger.Error("Unable to get file from form data", "error", err)
		writeError(w, http.StatusBadRequest, "Missing 'file' in form data")
		return
	}
	defer file.Close()

	h.logger.Info("Handle upload", "filename", fileHeader.Filename)

	url, err := h.imageService.Ingest(r.Context(), fileHeader.Filename, file)
	if err != nil {
		if err == domain.ErrUnsupportedFormat {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			writeError(w, http.StatusBadRequest,
				"Unsupported image format. Use JPG, JPEG, PNG or WEBP.")
			return
		}
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		h.logger.Error("Unable to save the file", "error", err)
		writeError(w, http.StatusInternalServerError, "Unable to save the file")
		return
	}

	metrics.UploadsTotal.WithLabelValues("saved").Inc()
	writeJSON(w, http.StatusOK, UploadResponse{URL: url})
}

// ServeImage handles GET /static/uploads/{filename}
func (h *ImagesHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	fn := vars["filename"]

	file, err := h.store.Get(fn)
	if err != nil {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	defer file.Close()

	contentType, err := getContentType(file)
	if err != nil {
		h.logger.Error("Unable to detect content type", "error", err)
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	_, err = io.Copy(w, file)
	if err != nil {
		h.logger.Error("Unable to write file to response", "error", err)
	}
}

// getContentType determines the MIME type of the file based on its content
func getContentType(file *os.File) (string, error) {
	// 512 bytes is what DetectContentType looks at
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	// Reset the file pointer to the beginning
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
