package dto

type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content" binding:"required"`
	Favorite bool   `json:"favorite"`
}

type AudioNoteRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// UpdateNoteRequest carries a partial update. Nil fields stay untouched.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Favorite *bool   `json:"favorite"`
	ImageURL *string `json:"image_url"`
}

type FavoriteRequest struct {
	Favorite *bool `json:"favorite" binding:"required"`
}
