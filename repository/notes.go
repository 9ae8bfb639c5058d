package repository

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, dbName string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

// CreateNote inserts a new note, assigning id and timestamps.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		utils.TrackError("database", "invalid_note_data")
		return errors.New("user ID is required")
	}

	if note.ID == "" {
		note.ID = utils.GenerateNoteID()
	}
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}

	return nil
}

// GetUserNotes retrieves all notes for a user, newest created first.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "notes_lookup_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetFavoriteNotes retrieves the user's favorite notes, newest created first.
func (r *NotesRepo) GetFavoriteNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID, "favorite": true}, opts)
	if err != nil {
		utils.TrackError("database", "notes_lookup_error")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves a single note scoped to its owner. Returns nil, nil when
// the note does not exist or belongs to someone else.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_lookup_error")
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial $set to an owned note and returns the updated
// document. Returns nil, nil when no owned note matches.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, fields bson.M) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}
	update := bson.M{"$set": fields}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "note_update_failed")
		return nil, err
	}

	return &note, nil
}

// DeleteNote removes an owned note. The boolean reports whether anything
// was deleted.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) (bool, error) {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return false, err
	}

	return result.DeletedCount > 0, nil
}
