package main

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for local API testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawUser, _ := cmd.Flags().GetString("user")
		role, _ := cmd.Flags().GetString("role")

		userID, err := uuid.Parse(strings.TrimSpace(rawUser))
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		if role != jwt.RoleSeeker && role != jwt.RoleEmployer {
			return fmt.Errorf("invalid --role %q", role)
		}

		tok, err := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn).GenerateAccessToken(userID, role)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("user", "", "user id")
	tokenCmd.Flags().String("role", jwt.RoleSeeker, "seeker or employer")
	_ = tokenCmd.MarkFlagRequired("user")
}
