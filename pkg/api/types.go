package api

// User is the lightweight user projection the backend returns inside
// posts, comments, and search results
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Me is the current user, the only projection that carries the
// following set
type Me struct {
	ID        string   `json:"_id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Following []string `json:"following"`
}

// Comment belongs to exactly one post and is append-only from the
// client's perspective
type Comment struct {
	ID   string `json:"_id"`
	Text string `json:"text"`
	User User   `json:"user"`
}

// Post is mutated only by server responses; the client never computes
// derived post state beyond membership checks on Likes.
type Post struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Media     string    `json:"image,omitempty"`
	MediaType string    `json:"mediaType,omitempty"`
	User      User      `json:"user"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type SignupResponse struct {
	User User `json:"user"`
}

type SearchResponse struct {
	Users []User `json:"users"`
}

type FollowersResponse struct {
	Followers []User `json:"followers"`
}

type FollowingResponse struct {
	Following []User `json:"following"`
}

type PostListResponse struct {
	Posts []Post `json:"posts"`
}

type LikesResponse struct {
	Likes []string `json:"likes"`
}

type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
