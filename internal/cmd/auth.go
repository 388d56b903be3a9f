package cmd

import (
	"github.com/mingle-social/cli/pkg/service"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with Mingle",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new Mingle account",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Signup()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Mingle",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Login()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from Mingle",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Logout()
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Display current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Me()
	},
}

var updateUsernameCmd = &cobra.Command{
	Use:   "update-username <username>",
	Short: "Change your username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.UpdateUsername(args[0])
	},
}

var updatePasswordCmd = &cobra.Command{
	Use:   "update-password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.UpdatePassword()
	},
}

func init() {
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(meCmd)
	authCmd.AddCommand(updateUsernameCmd)
	authCmd.AddCommand(updatePasswordCmd)
}
