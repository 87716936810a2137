package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/dtos"
	"github.com/sushant-97/ats-system/internal/services"
)

type DocumentHandler struct {
	Documents *services.DocumentService
}

func NewDocumentHandler(documents *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{Documents: documents}
}

// ListDocuments is GET /documents.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs := h.Documents.List()
	c.JSON(http.StatusOK, gin.H{"documents": docs, "total": len(docs)})
}

// Upload is POST /documents/upload: starts the simulated upload and
// returns its id for progress polling.
func (h *DocumentHandler) Upload(c *gin.Context) {
	var req dtos.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	files := make([]services.UploadFile, len(req.Files))
	for i, f := range req.Files {
		files[i] = services.UploadFile{Name: f.Name, Size: f.Size, MimeType: f.MimeType}
	}
	up, err := h.Documents.StartUpload(files)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, up)
}

// UploadProgress is GET /documents/uploads/:id.
func (h *DocumentHandler) UploadProgress(c *gin.Context) {
	up, err := h.Documents.UploadProgress(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, up)
}

// CancelUpload is POST /documents/uploads/:id/cancel.
func (h *DocumentHandler) CancelUpload(c *gin.Context) {
	if err := h.Documents.CancelUpload(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// DeleteDocument is DELETE /documents/:id.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.Documents.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
