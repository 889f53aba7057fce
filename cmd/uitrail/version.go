package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"

	"github.com/uitrail/uitrail/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("uitrail %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.BuildDate)

	check, _ := cmd.Flags().GetBool("check")
	if !check {
		return nil
	}

	githubTag := &latest.GithubTag{
		Owner:      "uitrail",
		Repository: "uitrail",
	}
	res, err := latest.Check(githubTag, version.Version)
	if err != nil {
		return fmt.Errorf("version check failed: %w", err)
	}
	if res.Outdated {
		fmt.Printf("A new version is available: %s (you have %s)\n", res.Current, version.Version)
		fmt.Println("Download it from https://github.com/uitrail/uitrail/releases")
	} else {
		fmt.Printf("You are using the latest version: %s\n", version.Version)
	}
	return nil
}
