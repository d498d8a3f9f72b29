package handlers

// SaveUserMovieRequest carries a favorite and/or rating write, plus optional
// movie metadata used only when the movie is not in the catalog yet.
type SaveUserMovieRequest struct {
	MovieID         string   `json:"movieId"`
	Favorite        *bool    `json:"favorite"`
	Rating          *float64 `json:"rating"`
	Title           string   `json:"title"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	Genre           string   `json:"genre"`
	Source          string   `json:"source"`
	Director        string   `json:"director"`
	SuggestedRating *float64 `json:"suggested_rating"`
	DurationSeconds *int     `json:"duration_seconds"`
}

type CommentRequest struct {
	MovieID string `json:"movieId"`
	Text    string `json:"text"`
}

type CommentUpdateRequest struct {
	Content string `json:"content"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Age      int    `json:"age"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Age      *int    `json:"age"`
	Password *string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
