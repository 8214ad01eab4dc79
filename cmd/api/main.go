package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/phonebook/core/cmd/api/commands"
)

// @title Phonebook API
// @version 1.0
// @description Contact records kept in memory and mirrored to a JSON file

// @host localhost:3001
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:   "phonebook",
		Short: "Phonebook API Server",
		Long:  `Phonebook keeps contact records in memory, serves them over HTTP and mirrors every change to a JSON file on disk.`,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (yaml, toml or json)")

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
