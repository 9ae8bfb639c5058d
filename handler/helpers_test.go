package handler

import (
	"context"
	"os"
	"sort"
	"testing"
	"time"

	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUsersRepo struct {
	users map[string]*model.User
}

func (f *fakeUsersRepo) AddUser(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = utils.GenerateUserID()
	}
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUsersRepo) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUsersRepo) FindUser(_ context.Context, userID string) (*model.User, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, nil
}

type fakeNotesRepo struct {
	notes []*model.Note
	clock time.Time
}

func (f *fakeNotesRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeNotesRepo) CreateNote(_ context.Context, note *model.Note) error {
	if note.ID == "" {
		note.ID = utils.GenerateNoteID()
	}
	now := f.tick()
	note.CreatedAt = now
	note.UpdatedAt = now
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeNotesRepo) GetUserNotes(_ context.Context, userID string) ([]*model.Note, error) {
	result := []*model.Note{}
	for _, n := range f.notes {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeNotesRepo) GetFavoriteNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	all, _ := f.GetUserNotes(ctx, userID)
	result := []*model.Note{}
	for _, n := range all {
		if n.Favorite {
			result = append(result, n)
		}
	}
	return result, nil
}

func (f *fakeNotesRepo) GetNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	for _, n := range f.notes {
		if n.ID == noteID && n.UserID == userID {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, fields bson.M) (*model.Note, error) {
	note, _ := f.GetNote(ctx, noteID, userID)
	if note == nil {
		return nil, nil
	}
	for key, value := range fields {
		switch key {
		case "title":
			note.Title = value.(string)
		case "content":
			note.Content = value.(string)
		case "favorite":
			note.Favorite = value.(bool)
		case "image_url":
			note.ImageURL = value.(string)
		}
	}
	note.UpdatedAt = f.tick()
	return note, nil
}

func (f *fakeNotesRepo) DeleteNote(_ context.Context, noteID, userID string) (bool, error) {
	for i, n := range f.notes {
		if n.ID == noteID && n.UserID == userID {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// newTestRouter wires the handlers exactly like main's setupRouter, minus
// metrics, storage and the database-backed health check.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithUploader(t, nil)
}

func newTestRouterWithUploader(t *testing.T, uploader ImageUploader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	require.NoError(t, utils.InitJWT())

	users := &usecase.UserService{UsersRepo: &fakeUsersRepo{users: make(map[string]*model.User)}}
	notes := &usecase.NotesService{NotesRepo: &fakeNotesRepo{clock: time.Now()}}

	router := gin.New()

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", func(c *gin.Context) { SignupHandler(c, users) })
		auth.POST("/login", func(c *gin.Context) { LoginHandler(c, users) })
		auth.POST("/logout", LogoutHandler)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/me", func(c *gin.Context) { MeHandler(c, users) })

		notesGroup := protected.Group("/notes")
		{
			notesGroup.GET("", func(c *gin.Context) { ListNotesHandler(c, notes) })
			notesGroup.POST("", func(c *gin.Context) { CreateNoteHandler(c, notes) })
			notesGroup.GET("/favourites", func(c *gin.Context) { ListFavoriteNotesHandler(c, notes) })
			notesGroup.POST("/audio", func(c *gin.Context) { CreateAudioNoteHandler(c, notes) })
			notesGroup.GET("/:id", func(c *gin.Context) { GetNoteHandler(c, notes) })
			notesGroup.PUT("/:id", func(c *gin.Context) { UpdateNoteHandler(c, notes) })
			notesGroup.DELETE("/:id", func(c *gin.Context) { DeleteNoteHandler(c, notes) })
			notesGroup.PUT("/:id/favourite", func(c *gin.Context) { SetFavoriteHandler(c, notes) })
		}

		protected.POST("/upload-image", func(c *gin.Context) { UploadImageHandler(c, notes, uploader) })
	}

	return router
}
