package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func CreateNoteHandler(c *gin.Context, notes *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")

	note, err := notes.CreateNote(c.Request.Context(), userID, req.Title, req.Content, req.Favorite)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			utils.BadRequest(c, err.Error())
			return
		}
		logrus.WithError(err).Error("failed to create note")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Created(c, "Note created successfully", note)
}

// CreateAudioNoteHandler stores a voice transcript; the note title is derived
// from the first two words of the transcript.
func CreateAudioNoteHandler(c *gin.Context, notes *usecase.NotesService) {
	var req dto.AudioNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Transcript is required")
		return
	}

	userID := c.GetString("user_id")

	note, err := notes.CreateAudioNote(c.Request.Context(), userID, req.Transcript)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			utils.BadRequest(c, err.Error())
			return
		}
		logrus.WithError(err).Error("failed to create audio note")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Created(c, "Audio note created successfully", note)
}

func ListNotesHandler(c *gin.Context, notes *usecase.NotesService) {
	userID := c.GetString("user_id")

	result, err := notes.ListNotes(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("failed to list notes")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"notes": result})
}

func ListFavoriteNotesHandler(c *gin.Context, notes *usecase.NotesService) {
	userID := c.GetString("user_id")

	result, err := notes.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("failed to list favorite notes")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"notes": result})
}

func GetNoteHandler(c *gin.Context, notes *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := notes.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		logrus.WithError(err).Error("failed to fetch note")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"note": note})
}

func UpdateNoteHandler(c *gin.Context, notes *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notes.UpdateNote(c.Request.Context(), noteID, userID, usecase.NoteUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Favorite: req.Favorite,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoteNotFound):
			utils.NotFound(c, "Note not found")
		case errors.Is(err, usecase.ErrInvalidInput):
			utils.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("failed to update note")
			utils.InternalError(c, "Internal Server Error")
		}
		return
	}

	utils.Success(c, gin.H{
		"message": "Note updated successfully",
		"note":    note,
	})
}

func SetFavoriteHandler(c *gin.Context, notes *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := notes.SetFavorite(c.Request.Context(), noteID, userID, *req.Favorite)
	if err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		logrus.WithError(err).Error("failed to update favorite status")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{
		"message": "Favorite status updated",
		"note":    note,
	})
}

func DeleteNoteHandler(c *gin.Context, notes *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notes.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		if errors.Is(err, usecase.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		logrus.WithError(err).Error("failed to delete note")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}
