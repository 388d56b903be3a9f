package service

import (
	"fmt"

	"github.com/mingle-social/cli/pkg/api"
	"github.com/mingle-social/cli/pkg/feedstate"
	"github.com/mingle-social/cli/pkg/formatter"
	"github.com/mingle-social/cli/pkg/session"
)

// FollowService manages the follow graph around the current user
type FollowService struct {
	api   *api.Client
	store *session.Store
}

// NewFollowService creates a new follow service
func NewFollowService() *FollowService {
	store := newSessionStore()
	return &FollowService{
		api:   newAPIClient(store),
		store: store,
	}
}

// Followers lists the users following the current user
func (s *FollowService) Followers() error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	followers, err := s.api.Followers()
	if err != nil {
		return reportError(err)
	}

	if len(followers) == 0 {
		fmt.Println("No followers yet")
		return nil
	}

	fmt.Println("Your Followers")
	for _, user := range followers {
		fmt.Printf("%s  %s\n", user.ID, user.Email)
	}
	return nil
}

// Following lists the users the current user follows
func (s *FollowService) Following() error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	following, err := s.api.Following()
	if err != nil {
		return reportError(err)
	}

	if len(following) == 0 {
		fmt.Println("You're not following anyone yet")
		return nil
	}

	fmt.Println("People You Follow")
	for _, user := range following {
		fmt.Printf("%s  %s\n", user.ID, user.Email)
	}
	return nil
}

// Follow adds a follow edge to the target user. The local following
// set is updated only after the server confirms the toggle.
func (s *FollowService) Follow(userID string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	ctrl, err := s.loadController()
	if err != nil {
		return reportError(err)
	}

	if ctrl.IsFollowing(userID) {
		formatter.PrintWarning("Already following %s", userID)
		return nil
	}

	if err := s.api.Follow(userID); err != nil {
		// Failed toggle: the local set stays unchanged
		return reportError(err)
	}
	ctrl.ApplyFollow(userID)

	formatter.PrintSuccess("✓ Now following %s", userID)
	return nil
}

// Unfollow removes the follow edge to the target user
func (s *FollowService) Unfollow(userID string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	ctrl, err := s.loadController()
	if err != nil {
		return reportError(err)
	}

	if !ctrl.IsFollowing(userID) {
		formatter.PrintWarning("Not following %s", userID)
		return nil
	}

	if err := s.api.Unfollow(userID); err != nil {
		return reportError(err)
	}
	ctrl.ApplyUnfollow(userID)

	formatter.PrintSuccess("✓ Unfollowed %s", userID)
	return nil
}

func (s *FollowService) loadController() (*feedstate.Controller, error) {
	me, err := s.api.Me()
	if err != nil {
		return nil, err
	}

	ctrl := feedstate.New(me.ID)
	ctrl.SetFollowing(me.Following)
	return ctrl, nil
}
