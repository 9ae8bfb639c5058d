package handler

import (
	"context"
	"errors"
	"io"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImageUploader stores image bytes and returns a publicly reachable URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, data []byte, contentType, fileName string) (string, error)
}

// UploadImageHandler pushes a multipart image to object storage and attaches
// the resulting URL to an owned note.
func UploadImageHandler(c *gin.Context, notes *usecase.NotesService, storage ImageUploader) {
	if storage == nil {
		utils.InternalError(c, "Image storage is not configured")
		return
	}

	noteID := c.Query("noteId")
	if noteID == "" {
		utils.BadRequest(c, "Note ID is required")
		return
	}

	userID := c.GetString("user_id")

	// Ownership check before paying for the upload.
	if _, err := notes.GetNote(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		logrus.WithError(err).Error("failed to fetch note for upload")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "No image uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequest(c, "No image uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.BadRequest(c, "Failed to read image")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := storage.UploadImage(c.Request.Context(), data, contentType, fileHeader.Filename)
	if err != nil {
		logrus.WithError(err).Error("image upload failed")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	note, err := notes.AttachImage(c.Request.Context(), noteID, userID, url)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		logrus.WithError(err).Error("failed to attach image to note")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
		"note":    note,
	})
}
