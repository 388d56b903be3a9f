package service

import (
	"fmt"
	"strings"

	"github.com/mingle-social/cli/pkg/api"
	"github.com/mingle-social/cli/pkg/feedstate"
	"github.com/mingle-social/cli/pkg/formatter"
	"github.com/mingle-social/cli/pkg/logger"
	"github.com/mingle-social/cli/pkg/session"
)

// FeedService renders the feed and user search
type FeedService struct {
	api   *api.Client
	store *session.Store
}

// NewFeedService creates a new feed service
func NewFeedService() *FeedService {
	store := newSessionStore()
	return &FeedService{
		api:   newAPIClient(store),
		store: store,
	}
}

// loadController fetches /me and seeds a state controller with the
// current user's identity and following set
func (s *FeedService) loadController() (*feedstate.Controller, error) {
	me, err := s.api.Me()
	if err != nil {
		return nil, err
	}

	ctrl := feedstate.New(me.ID)
	ctrl.SetFollowing(me.Following)
	return ctrl, nil
}

// ViewFeed displays posts from followed accounts
func (s *FeedService) ViewFeed() error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	ctrl, err := s.loadController()
	if err != nil {
		return reportError(err)
	}

	posts, err := s.api.Feed()
	if err != nil {
		return reportError(err)
	}
	ctrl.SetPosts(posts)

	if len(ctrl.Posts()) == 0 {
		fmt.Println("No posts in your feed. Follow someone!")
		return nil
	}

	fmt.Println("Your Feed")
	fmt.Println()
	displayPosts(ctrl)
	return nil
}

// SearchUsers runs a user search. An empty query clears results
// locally and never reaches the network.
func (s *FeedService) SearchUsers(query string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	// An empty query resolves locally, before anything goes out
	if strings.TrimSpace(query) == "" {
		fmt.Println("Nothing to search for.")
		return nil
	}

	ctrl, err := s.loadController()
	if err != nil {
		return reportError(err)
	}

	logger.Debug("Searching users", "query", query)
	users, err := s.api.SearchUsers(query)
	if err != nil {
		return reportError(err)
	}
	ctrl.SetSearchResults(users)

	results := ctrl.SearchResults()
	if len(results) == 0 {
		fmt.Printf("No users found for %q\n", query)
		return nil
	}

	for _, user := range results {
		marker := "follow"
		if ctrl.IsFollowing(user.ID) {
			marker = "following"
		}
		fmt.Printf("%s  %s  [%s]\n", user.ID, user.Email, marker)
	}
	return nil
}

// displayPosts renders the controller's posts with confirmed like and
// comment state
func displayPosts(ctrl *feedstate.Controller) {
	for i, post := range ctrl.Posts() {
		author := post.User.Email
		if author == "" {
			author = "Unknown"
		}

		fmt.Printf("%d. %s [%s]\n", i+1, formatter.Bold.Sprint(post.Title), post.ID)
		fmt.Printf("   %s\n", post.Content)
		if post.Media != "" {
			fmt.Printf("   media: %s (%s)\n", post.Media, post.MediaType)
		}

		likeLabel := "like"
		if ctrl.Liked(post.ID) {
			likeLabel = "liked"
		}
		fmt.Printf("   By: %s | %s (%d) | comments (%d)\n",
			author, likeLabel, ctrl.LikeCount(post.ID), len(post.Comments))
		fmt.Println()
	}
}
