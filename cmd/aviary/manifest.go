package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aviary-tools/aviary"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the archive's manifest summary",
	RunE:  runManifest,
}

func runManifest(cmd *cobra.Command, args []string) error {
	a, err := aviary.Open(flagArchive)
	if err != nil {
		return err
	}
	defer a.Close()

	m, err := a.Manifest()
	if err != nil {
		return err
	}

	fmt.Printf("Account ID:   %s\n", m.UserInfo.AccountID)
	fmt.Printf("User name:    %s\n", m.UserInfo.UserName)
	fmt.Printf("Display name: %s\n", m.UserInfo.DisplayName)
	fmt.Printf("Generated:    %s\n", m.ArchiveInfo.GenerationDate)
	fmt.Printf("Size (bytes): %s\n", m.ArchiveInfo.SizeBytes)
	fmt.Printf("Partial:      %t\n", m.ArchiveInfo.IsPartialArchive)
	return nil
}
