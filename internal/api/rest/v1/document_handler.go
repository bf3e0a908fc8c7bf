package v1

import (
	"mime"
	"net/http"

	"github.com/Tsilavina4274/odyssea/internal/domain/documents"

	"github.com/gin-gonic/gin"
)

// DocumentHandler defines the interface for handling stored documents
type DocumentHandler interface {
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type documentHandler struct {
	documentService documents.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService documents.DocumentService) DocumentHandler {
	return &documentHandler{documentService: documentService}
}

// DownloadByID streams a document to its owner or a reviewer
// @Summary Download a document
// @Tags Document
// @Produce octet-stream
// @Param id path string true "Document ID"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{id}/file [get]
func (handler *documentHandler) DownloadByID(ctx *gin.Context) {
	document, content, err := handler.documentService.Download(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	contentType := document.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": document.Name}))
	ctx.Data(http.StatusOK, contentType, content)
}

// DeleteByID removes a document of the signed in user
// @Summary Delete a document
// @Tags Document
// @Param id path string true "Document ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{id} [delete]
func (handler *documentHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.documentService.DeleteByID(ctx.Request.Context(), ctx.Param("id"), currentIdentity(ctx).UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
