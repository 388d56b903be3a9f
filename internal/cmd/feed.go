package cmd

import (
	"github.com/mingle-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "View posts from people you follow",
	RunE: func(cmd *cobra.Command, args []string) error {
		feedSvc := service.NewFeedService()
		return feedSvc.ViewFeed()
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for users",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}
		feedSvc := service.NewFeedService()
		return feedSvc.SearchUsers(query)
	},
}
