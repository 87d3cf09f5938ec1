package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"statushub/internal/app/domain/status"
)

// UploadStatus publishes a status from a multipart form with an optional
// media file. The file is handed to the media resolver; the resulting URL
// is stored opaquely on the record.
func (h *Handlers) UploadStatus(c *gin.Context) {
	maxBytes := h.manager.Get().Media.MaxUploadMB << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	params := status.CreateParams{
		UserID:   c.PostForm("userId"),
		UserName: c.PostForm("userName"),
		Content:  c.PostForm("content"),
	}

	file, header, err := c.Request.FormFile("media")
	switch {
	case err == http.ErrMissingFile:
		// Text-only upload is fine.
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	default:
		defer file.Close()

		url, err := h.media.Save(header.Filename, file)
		if err != nil {
			h.log.Error("Failed to store media upload", err, "filename", header.Filename)
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not store media file"})
			return
		}
		params.MediaURL = url
	}

	h.createAndNotify(c, params)
}
