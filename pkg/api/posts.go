package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/mingle-social/cli/pkg/logger"
)

// mediaTypeOf tags an attachment as image or video by extension.
// Unknown extensions default to image, matching what the backend does
// with untagged uploads.
func mediaTypeOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".webm", ".avi", ".mkv":
		return "video"
	default:
		return "image"
	}
}

// CreatePost creates a post with an optional media attachment. The
// create route only parses multipart bodies, so the request is
// multipart even without a file.
func (c *Client) CreatePost(title, content, mediaPath string) (*Post, error) {
	logger.Debug("Creating post", "title", title, "media", mediaPath)

	req := c.t.PostR().
		SetMultipartFormData(map[string]string{
			"title":   title,
			"content": content,
		})

	if mediaPath != "" {
		if _, err := os.Stat(mediaPath); err != nil {
			return nil, fmt.Errorf("media file not found: %s", mediaPath)
		}
		req.SetFile("image", mediaPath)
		req.SetMultipartFormData(map[string]string{"mediaType": mediaTypeOf(mediaPath)})
	}

	resp, err := req.Post("/create")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(resp.Body(), &post); err != nil {
		return nil, err
	}

	logger.Debug("Post created", "post_id", post.ID)
	return &post, nil
}

// Feed returns posts from followed accounts
func (c *Client) Feed() ([]Post, error) {
	logger.Debug("Fetching feed")

	resp, err := c.t.PostR().Get("/feed")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp PostListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Posts, nil
}

// MyPosts returns the current user's own posts
func (c *Client) MyPosts() ([]Post, error) {
	logger.Debug("Fetching own posts")

	resp, err := c.t.PostR().Get("/all")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var listResp PostListResponse
	if err := json.Unmarshal(resp.Body(), &listResp); err != nil {
		return nil, err
	}

	return listResp.Posts, nil
}

// GetPost retrieves a single post by id
func (c *Client) GetPost(postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	resp, err := c.t.PostR().Get(fmt.Sprintf("/%s", postID))

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(resp.Body(), &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// UpdatePost partially updates a post. Media is replaced only when a
// new file is given; the body stays multipart either way, like create.
func (c *Client) UpdatePost(postID, title, content, mediaPath string) (*Post, error) {
	logger.Debug("Updating post", "post_id", postID)

	req := c.t.PostR().
		SetMultipartFormData(map[string]string{
			"title":   title,
			"content": content,
		})

	if mediaPath != "" {
		if _, err := os.Stat(mediaPath); err != nil {
			return nil, fmt.Errorf("media file not found: %s", mediaPath)
		}
		req.SetFile("image", mediaPath)
		req.SetMultipartFormData(map[string]string{"mediaType": mediaTypeOf(mediaPath)})
	}

	resp, err := req.Patch(fmt.Sprintf("/update/%s", postID))

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var post Post
	if err := json.Unmarshal(resp.Body(), &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost deletes a post by id
func (c *Client) DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := c.t.PostR().Delete(fmt.Sprintf("/delete/%s", postID))

	return c.t.CheckResponse(resp, err)
}

// ToggleLike toggles the current user's like on a post and returns the
// confirmed like set
func (c *Client) ToggleLike(postID string) ([]string, error) {
	logger.Debug("Toggling like", "post_id", postID)

	resp, err := c.t.PostR().Post(fmt.Sprintf("/%s/like", postID))

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var likesResp LikesResponse
	if err := json.Unmarshal(resp.Body(), &likesResp); err != nil {
		return nil, err
	}

	return likesResp.Likes, nil
}

// AddComment appends a comment to a post and returns the confirmed
// comment sequence
func (c *Client) AddComment(postID, text string) ([]Comment, error) {
	logger.Debug("Adding comment", "post_id", postID)

	resp, err := c.t.PostR().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"text": text}).
		Post(fmt.Sprintf("/%s/comment", postID))

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var commentsResp CommentsResponse
	if err := json.Unmarshal(resp.Body(), &commentsResp); err != nil {
		return nil, err
	}

	return commentsResp.Comments, nil
}
