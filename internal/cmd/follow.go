package cmd

import (
	"github.com/mingle-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		followSvc := service.NewFollowService()
		return followSvc.Follow(args[0])
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		followSvc := service.NewFollowService()
		return followSvc.Unfollow(args[0])
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers",
	Short: "List your followers",
	RunE: func(cmd *cobra.Command, args []string) error {
		followSvc := service.NewFollowService()
		return followSvc.Followers()
	},
}

var followingCmd = &cobra.Command{
	Use:   "following",
	Short: "List the people you follow",
	RunE: func(cmd *cobra.Command, args []string) error {
		followSvc := service.NewFollowService()
		return followSvc.Following()
	},
}
