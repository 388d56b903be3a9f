package cmd

import (
	"github.com/mingle-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	postTitle   string
	postContent string
	postMedia   string
	deleteForce bool
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create and manage your posts",
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Create(postTitle, postContent, postMedia)
	},
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your own posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.List()
	},
}

var postShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Show(args[0])
	},
}

var postEditCmd = &cobra.Command{
	Use:   "edit <post-id>",
	Short: "Edit a post",
	Long:  "Edit a post. Omitted fields keep their current value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Edit(args[0], postTitle, postContent, postMedia)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Delete(args[0], deleteForce)
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle your like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Like(args[0])
	},
}

var postCommentCmd = &cobra.Command{
	Use:   "comment <post-id> <text>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Comment(args[0], args[1])
	},
}

func init() {
	postCreateCmd.Flags().StringVar(&postTitle, "title", "", "Post title")
	postCreateCmd.Flags().StringVar(&postContent, "content", "", "Post content")
	postCreateCmd.Flags().StringVar(&postMedia, "media", "", "Path to an image or video attachment")

	postEditCmd.Flags().StringVar(&postTitle, "title", "", "New title")
	postEditCmd.Flags().StringVar(&postContent, "content", "", "New content")
	postEditCmd.Flags().StringVar(&postMedia, "media", "", "Path to a replacement image or video")

	postDeleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Skip confirmation")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postEditCmd)
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postCommentCmd)
}
