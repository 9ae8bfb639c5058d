package repository

import (
	"context"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const testDatabase = "notesapp_test"

// newTestClient connects to the local MongoDB used for integration tests.
// Tests are skipped when no instance is reachable.
func newTestClient(t *testing.T) *mongo.Client {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Skip("mongodb not available:", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		t.Skip("mongodb not reachable:", err)
	}

	t.Cleanup(func() {
		client.Database(testDatabase).Drop(context.Background())
		client.Disconnect(context.Background())
	})
	return client
}

func TestNotesRepoOperations(t *testing.T) {
	client := newTestClient(t)
	notesRepo := GetNotesRepo(client, testDatabase)

	ctx := context.Background()
	userID := uuid.New().String()
	otherID := uuid.New().String()

	var first, second *model.Note

	t.Run("CreateNote", func(t *testing.T) {
		first = &model.Note{UserID: userID, Title: "first", Content: "first content"}
		require.NoError(t, notesRepo.CreateNote(ctx, first))
		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		time.Sleep(5 * time.Millisecond)

		second = &model.Note{UserID: userID, Content: "second content"}
		require.NoError(t, notesRepo.CreateNote(ctx, second))

		other := &model.Note{UserID: otherID, Content: "someone else"}
		require.NoError(t, notesRepo.CreateNote(ctx, other))
	})

	t.Run("GetUserNotes", func(t *testing.T) {
		notes, err := notesRepo.GetUserNotes(ctx, userID)
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, second.ID, notes[0].ID)
		assert.Equal(t, first.ID, notes[1].ID)
	})

	t.Run("GetNote", func(t *testing.T) {
		note, err := notesRepo.GetNote(ctx, first.ID, userID)
		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, "first content", note.Content)

		// Wrong owner sees nothing.
		note, err = notesRepo.GetNote(ctx, first.ID, otherID)
		require.NoError(t, err)
		assert.Nil(t, note)
	})

	t.Run("UpdateNote", func(t *testing.T) {
		updated, err := notesRepo.UpdateNote(ctx, first.ID, userID,
			bson.M{"favorite": true})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Favorite)
		assert.True(t, updated.UpdatedAt.After(first.UpdatedAt))

		updated, err = notesRepo.UpdateNote(ctx, first.ID, otherID,
			bson.M{"favorite": false})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("GetFavoriteNotes", func(t *testing.T) {
		favorites, err := notesRepo.GetFavoriteNotes(ctx, userID)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, first.ID, favorites[0].ID)
	})

	t.Run("DeleteNote", func(t *testing.T) {
		deleted, err := notesRepo.DeleteNote(ctx, second.ID, otherID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = notesRepo.DeleteNote(ctx, second.ID, userID)
		require.NoError(t, err)
		assert.True(t, deleted)

		notes, err := notesRepo.GetUserNotes(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, notes, 1)
	})
}
