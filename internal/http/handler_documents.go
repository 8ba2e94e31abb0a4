package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nirbeaver/construction-management/internal/model"
	"github.com/nirbeaver/construction-management/internal/service"
)

// uploadDocument accepts a multipart form with a "file" part plus optional
// "type" and "category" fields.
func (h *Handler) uploadDocument(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file part is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(c.Request.Context(), principal, projectID, service.UploadDocumentInput{
		Name:     fileHeader.Filename,
		Type:     model.DocumentType(c.PostForm("type")),
		Category: c.PostForm("category"),
		FileType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *Handler) listDocuments(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c)
	if !ok {
		return
	}
	docs, err := h.documents.ListByProject(c.Request.Context(), principal, projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *Handler) deleteDocument(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.documents.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
