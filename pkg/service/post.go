package service

import (
	"fmt"

	"github.com/mingle-social/cli/pkg/api"
	"github.com/mingle-social/cli/pkg/feedstate"
	"github.com/mingle-social/cli/pkg/formatter"
	"github.com/mingle-social/cli/pkg/prompter"
	"github.com/mingle-social/cli/pkg/session"
)

// PostService manages the current user's posts and interactions
type PostService struct {
	api   *api.Client
	store *session.Store
}

// NewPostService creates a new post service
func NewPostService() *PostService {
	store := newSessionStore()
	return &PostService{
		api:   newAPIClient(store),
		store: store,
	}
}

// Create creates a new post with optional media
func (s *PostService) Create(title, content, mediaPath string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if content == "" {
		return fmt.Errorf("content cannot be empty")
	}

	formatter.PrintInfo("Creating post...")
	post, err := s.api.CreatePost(title, content, mediaPath)
	if err != nil {
		return reportError(err)
	}

	formatter.PrintSuccess("✓ Post created: %s", post.ID)
	return nil
}

// List displays the current user's own posts
func (s *PostService) List() error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	posts, err := s.api.MyPosts()
	if err != nil {
		return reportError(err)
	}

	if len(posts) == 0 {
		fmt.Println("No posts yet. Create your first post!")
		return nil
	}

	for i, post := range posts {
		fmt.Printf("%d. %s [%s]\n", i+1, formatter.Bold.Sprint(post.Title), post.ID)
		fmt.Printf("   %s\n", post.Content)
		fmt.Printf("   likes (%d) | comments (%d)\n", len(post.Likes), len(post.Comments))
		fmt.Println()
	}
	return nil
}

// Show displays a single post with its comments
func (s *PostService) Show(postID string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	post, err := s.api.GetPost(postID)
	if err != nil {
		return reportError(err)
	}

	fmt.Printf("%s\n", formatter.Bold.Sprint(post.Title))
	fmt.Printf("%s\n", post.Content)
	if post.Media != "" {
		fmt.Printf("media: %s (%s)\n", post.Media, post.MediaType)
	}
	fmt.Printf("By: %s | likes (%d)\n", post.User.Email, len(post.Likes))

	if len(post.Comments) > 0 {
		fmt.Println()
		for _, comment := range post.Comments {
			author := comment.User.Email
			if author == "" {
				author = "Unknown"
			}
			fmt.Printf("  %s (by %s)\n", comment.Text, author)
		}
	}
	return nil
}

// Edit updates a post. Empty title or content keeps the existing
// value; media is replaced only when a new path is given.
func (s *PostService) Edit(postID, title, content, mediaPath string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	// Prefetch so partial edits keep the fields the caller didn't touch
	existing, err := s.api.GetPost(postID)
	if err != nil {
		return reportError(err)
	}

	if title == "" {
		title = existing.Title
	}
	if content == "" {
		content = existing.Content
	}

	formatter.PrintInfo("Updating post...")
	if _, err := s.api.UpdatePost(postID, title, content, mediaPath); err != nil {
		return reportError(err)
	}

	formatter.PrintSuccess("✓ Post updated")
	return nil
}

// Delete removes a post after confirmation
func (s *PostService) Delete(postID string, force bool) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	if !force {
		confirm, err := prompter.PromptConfirm("Are you sure you want to delete this post?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := s.api.DeletePost(postID); err != nil {
		return reportError(err)
	}

	formatter.PrintSuccess("✓ Post deleted")
	return nil
}

// Like toggles the current user's like on a post. The rendered state
// comes from the server-confirmed like set, never a local guess.
func (s *PostService) Like(postID string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	me, err := s.api.Me()
	if err != nil {
		return reportError(err)
	}

	post, err := s.api.GetPost(postID)
	if err != nil {
		return reportError(err)
	}

	ctrl := feedstate.New(me.ID)
	ctrl.SetPosts([]api.Post{*post})

	likes, err := s.api.ToggleLike(postID)
	if err != nil {
		return reportError(err)
	}
	ctrl.ApplyLikes(postID, likes)

	if ctrl.Liked(postID) {
		formatter.PrintSuccess("✓ Liked (%d likes)", ctrl.LikeCount(postID))
	} else {
		formatter.PrintSuccess("✓ Unliked (%d likes)", ctrl.LikeCount(postID))
	}
	return nil
}

// Comment appends a comment to a post. Whitespace-only input is
// rejected locally with no network call.
func (s *PostService) Comment(postID, text string) error {
	trimmed, ok := feedstate.ValidateComment(text)
	if !ok {
		formatter.PrintWarning("Comment cannot be empty")
		return nil
	}

	if err := requireSession(s.store); err != nil {
		return err
	}

	me, err := s.api.Me()
	if err != nil {
		return reportError(err)
	}

	post, err := s.api.GetPost(postID)
	if err != nil {
		return reportError(err)
	}

	ctrl := feedstate.New(me.ID)
	ctrl.SetPosts([]api.Post{*post})

	comments, err := s.api.AddComment(postID, trimmed)
	if err != nil {
		return reportError(err)
	}
	ctrl.ApplyComments(postID, comments)

	updated := ctrl.PostByID(postID)
	formatter.PrintSuccess("✓ Comment added (%d comments)", len(updated.Comments))
	return nil
}
