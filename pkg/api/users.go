package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/mingle-social/cli/pkg/logger"
)

// SearchUsers finds users matching the query
func (c *Client) SearchUsers(query string) ([]User, error) {
	logger.Debug("Searching users", "query", query)

	resp, err := c.t.UserR().
		SetQueryParam("q", query).
		Get("/search")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(resp.Body(), &searchResp); err != nil {
		return nil, err
	}

	return searchResp.Users, nil
}

// Follow adds a follow edge from the current user to the target.
// Following an already-followed user is a no-op server side.
func (c *Client) Follow(userID string) error {
	logger.Debug("Following user", "user_id", userID)

	resp, err := c.t.UserR().
		Post(fmt.Sprintf("/follow/%s", userID))

	return c.t.CheckResponse(resp, err)
}

// Unfollow removes the follow edge from the current user to the target
func (c *Client) Unfollow(userID string) error {
	logger.Debug("Unfollowing user", "user_id", userID)

	resp, err := c.t.UserR().
		Post(fmt.Sprintf("/unfollow/%s", userID))

	return c.t.CheckResponse(resp, err)
}

// Followers lists the users following the current user
func (c *Client) Followers() ([]User, error) {
	logger.Debug("Fetching followers")

	resp, err := c.t.UserR().Get("/followers")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var followersResp FollowersResponse
	if err := json.Unmarshal(resp.Body(), &followersResp); err != nil {
		return nil, err
	}

	return followersResp.Followers, nil
}

// Following lists the users the current user follows
func (c *Client) Following() ([]User, error) {
	logger.Debug("Fetching following")

	resp, err := c.t.UserR().Get("/following")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var followingResp FollowingResponse
	if err := json.Unmarshal(resp.Body(), &followingResp); err != nil {
		return nil, err
	}

	return followingResp.Following, nil
}
