package usecase

import (
	"context"
	"fmt"
	"strings"

	"main/model"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	maxTitleLength   = 200
	maxContentLength = 50000
)

type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetFavoriteNotes(ctx context.Context, userID string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, fields bson.M) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) (bool, error)
}

type NotesService struct {
	NotesRepo NotesRepository
}

// NoteUpdate carries a partial update. Nil fields stay untouched.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Favorite *bool
	ImageURL *string
}

// CreateNote creates a text note. Title is optional, content required.
func (svc *NotesService) CreateNote(ctx context.Context, userID, title, content string, favorite bool) (*model.Note, error) {
	title = strings.TrimSpace(title)
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("%w: note title exceeds maximum length", ErrInvalidInput)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: note content is required", ErrInvalidInput)
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("%w: note content exceeds maximum length", ErrInvalidInput)
	}

	note := &model.Note{
		UserID:   userID,
		Title:    title,
		Content:  content,
		Favorite: favorite,
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// CreateAudioNote stores a voice transcript as a note. The title is derived
// from the first two words of the transcript.
func (svc *NotesService) CreateAudioNote(ctx context.Context, userID, transcript string) (*model.Note, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, fmt.Errorf("%w: transcript is required", ErrInvalidInput)
	}
	if len(transcript) > maxContentLength {
		return nil, fmt.Errorf("%w: transcript exceeds maximum length", ErrInvalidInput)
	}

	note := &model.Note{
		UserID:  userID,
		Title:   deriveTitle(transcript),
		Content: transcript,
		IsAudio: true,
	}

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func deriveTitle(transcript string) string {
	words := strings.Fields(transcript)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

func (svc *NotesService) ListNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetUserNotes(ctx, userID)
}

func (svc *NotesService) ListFavorites(ctx context.Context, userID string) ([]*model.Note, error) {
	return svc.NotesRepo.GetFavoriteNotes(ctx, userID)
}

func (svc *NotesService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// UpdateNote applies the non-nil fields of the update to an owned note.
func (svc *NotesService) UpdateNote(ctx context.Context, noteID, userID string, update NoteUpdate) (*model.Note, error) {
	fields := bson.M{}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if len(title) > maxTitleLength {
			return nil, fmt.Errorf("%w: note title exceeds maximum length", ErrInvalidInput)
		}
		fields["title"] = title
	}
	if update.Content != nil {
		if strings.TrimSpace(*update.Content) == "" {
			return nil, fmt.Errorf("%w: note content cannot be empty", ErrInvalidInput)
		}
		if len(*update.Content) > maxContentLength {
			return nil, fmt.Errorf("%w: note content exceeds maximum length", ErrInvalidInput)
		}
		fields["content"] = *update.Content
	}
	if update.Favorite != nil {
		fields["favorite"] = *update.Favorite
	}
	if update.ImageURL != nil {
		fields["image_url"] = *update.ImageURL
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	return svc.applyUpdate(ctx, noteID, userID, fields)
}

func (svc *NotesService) SetFavorite(ctx context.Context, noteID, userID string, favorite bool) (*model.Note, error) {
	return svc.applyUpdate(ctx, noteID, userID, bson.M{"favorite": favorite})
}

func (svc *NotesService) AttachImage(ctx context.Context, noteID, userID, imageURL string) (*model.Note, error) {
	return svc.applyUpdate(ctx, noteID, userID, bson.M{"image_url": imageURL})
}

func (svc *NotesService) applyUpdate(ctx context.Context, noteID, userID string, fields bson.M) (*model.Note, error) {
	note, err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, fields)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	deleted, err := svc.NotesRepo.DeleteNote(ctx, noteID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}
