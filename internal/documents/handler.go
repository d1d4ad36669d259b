package documents

import (
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/middleware"
	"github.com/insuregenius/backend/pkg/response"
	"github.com/insuregenius/backend/pkg/storage"
)

// ClassifyRequest is the body for POST /docs/classify.
type ClassifyRequest struct {
	Text string `form:"text" json:"text" binding:"required"`
}

// ClassifyResponse carries the assigned document type.
type ClassifyResponse struct {
	Type string `json:"type"`
}

// UploadResponse describes a stored document.
type UploadResponse struct {
	Filename    string `json:"filename"`
	StoredAs    string `json:"stored_as"`
	DownloadURL string `json:"download_url"`
}

// Handler handles document HTTP endpoints.
type Handler struct {
	s3     *storage.S3
	logger *zap.Logger
}

// NewHandler creates a documents handler. s3 may be nil when object storage
// is not configured; uploads then answer 503.
func NewHandler(s3 *storage.S3, logger *zap.Logger) *Handler {
	return &Handler{s3: s3, logger: logger}
}

// ClassifyDoc handles POST /docs/classify.
func (h *Handler) ClassifyDoc(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	response.OK(c, ClassifyResponse{Type: Classify(req.Text)})
}

// Upload handles POST /documents/upload: multipart claim document upload
// into the tenant's S3 prefix, answering with a pre-signed download URL.
func (h *Handler) Upload(c *gin.Context) {
	user, ok := middleware.Principal(c)
	if !ok {
		response.Unauthorized(c, "missing user context")
		return
	}
	if h.s3 == nil {
		response.ServiceUnavailable(c, "document storage not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > storage.MaxDocumentSize {
		response.BadRequest(c, "file too large")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.ValidateDocumentType(contentType, fileHeader.Filename) {
		response.BadRequest(c, "unsupported document type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Internal(c, "failed to read upload")
		return
	}
	defer file.Close()

	ext := path.Ext(fileHeader.Filename)
	storedName := uuid.New().String() + ext
	key := storage.DocumentKey(user.TenantID.String(), storedName)
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(fileHeader.Filename)
	}

	ctx := c.Request.Context()
	if _, err := h.s3.Upload(ctx, key, contentType, file, fileHeader.Size); err != nil {
		h.logger.Error("document upload", zap.String("key", key), zap.Error(err))
		response.ServiceUnavailable(c, "document storage unavailable")
		return
	}

	url, err := h.s3.GeneratePresignedDownloadURL(ctx, key, h.s3.PresignExpire())
	if err != nil {
		h.logger.Error("presign document", zap.String("key", key), zap.Error(err))
		response.Internal(c, "failed to sign download url")
		return
	}

	response.Created(c, UploadResponse{
		Filename:    fileHeader.Filename,
		StoredAs:    storedName,
		DownloadURL: url,
	})
}
