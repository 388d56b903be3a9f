// Package feedstate holds the in-memory, rendering-facing view of
// posts and relationships. Mutations never refetch the whole
// collection: a confirmed server fragment is merged back into the
// matching entity by id, leaving siblings untouched.
package feedstate

import (
	"strings"

	"github.com/mingle-social/cli/pkg/api"
)

// Controller keeps confirmed state only. Like and follow state reflect
// what the server last returned, never a local guess.
//
// Two mutations racing on the same entity resolve in response arrival
// order; fragments for distinct entities commute. Callers torn down
// with a request outstanding should drop the response instead of
// applying it.
type Controller struct {
	currentUserID string
	posts         []api.Post
	following     map[string]struct{}
	searchResults []api.User
}

// New creates a controller for the given current user
func New(currentUserID string) *Controller {
	return &Controller{
		currentUserID: currentUserID,
		following:     make(map[string]struct{}),
	}
}

// CurrentUserID returns the user this controller renders for
func (c *Controller) CurrentUserID() string {
	return c.currentUserID
}

// SetPosts replaces the post collection, e.g. after a feed fetch
func (c *Controller) SetPosts(posts []api.Post) {
	c.posts = posts
}

// Posts returns the current post collection in order
func (c *Controller) Posts() []api.Post {
	return c.posts
}

// PostByID locates a post by id, or nil when absent
func (c *Controller) PostByID(postID string) *api.Post {
	for i := range c.posts {
		if c.posts[i].ID == postID {
			return &c.posts[i]
		}
	}
	return nil
}

// ApplyLikes merges a confirmed like set into the matching post.
// Unknown post ids are a no-op. Applying the same fragment twice
// yields the same state as applying it once.
func (c *Controller) ApplyLikes(postID string, likes []string) {
	if p := c.PostByID(postID); p != nil {
		p.Likes = likes
	}
}

// ApplyComments merges a confirmed comment sequence into the matching
// post. Same merge rules as ApplyLikes.
func (c *Controller) ApplyComments(postID string, comments []api.Comment) {
	if p := c.PostByID(postID); p != nil {
		p.Comments = comments
	}
}

// Liked reports whether the current user is in the post's confirmed
// like set
func (c *Controller) Liked(postID string) bool {
	p := c.PostByID(postID)
	if p == nil {
		return false
	}
	for _, id := range p.Likes {
		if id == c.currentUserID {
			return true
		}
	}
	return false
}

// LikeCount returns the size of the post's confirmed like set
func (c *Controller) LikeCount(postID string) int {
	if p := c.PostByID(postID); p != nil {
		return len(p.Likes)
	}
	return 0
}

// SetFollowing replaces the following set from /me
func (c *Controller) SetFollowing(userIDs []string) {
	c.following = make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		c.following[id] = struct{}{}
	}
}

// IsFollowing reports membership in the local following set
func (c *Controller) IsFollowing(userID string) bool {
	_, ok := c.following[userID]
	return ok
}

// ApplyFollow records a confirmed follow. Call only after the toggle
// succeeded; a failed toggle must leave the set unchanged.
func (c *Controller) ApplyFollow(userID string) {
	c.following[userID] = struct{}{}
}

// ApplyUnfollow records a confirmed unfollow
func (c *Controller) ApplyUnfollow(userID string) {
	delete(c.following, userID)
}

// FollowingIDs returns the local following set
func (c *Controller) FollowingIDs() []string {
	ids := make([]string, 0, len(c.following))
	for id := range c.following {
		ids = append(ids, id)
	}
	return ids
}

// SetSearchResults replaces the search result list
func (c *Controller) SetSearchResults(users []api.User) {
	c.searchResults = users
}

// ClearSearchResults empties the search results locally. An empty
// query never reaches the network.
func (c *Controller) ClearSearchResults() {
	c.searchResults = nil
}

// SearchResults returns the current search results
func (c *Controller) SearchResults() []api.User {
	return c.searchResults
}

// ValidateComment rejects empty or whitespace-only comment input
// before any network call is made. Returns the trimmed text and
// whether it is submittable.
func ValidateComment(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, trimmed != ""
}
