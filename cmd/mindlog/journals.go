package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/mindlog/pkg/journal"
)

var activeOnly bool

var journalsCmd = &cobra.Command{
	Use:   "journals",
	Short: "Manage journals",
	Long:  `Create, list, update, and delete journals. Each journal holds one person's logged days.`,
}

var createJournalCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new journal",
	Long:  `Create a new journal with a unique name and an optional description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		if name == "" {
			return errors.New("journal name is required")
		}

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		j, err := journal.CreateJournal(cmd.Context(), dbConn, name, description)
		if errors.Is(err, journal.ErrJournalExists) {
			return fmt.Errorf("journal already exists: %s", name)
		}
		if err != nil {
			return fmt.Errorf("failed to create journal: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Journal created successfully!")
		printJournal(cmd.OutOrStdout(), j)
		return nil
	},
}

var getJournalCmd = &cobra.Command{
	Use:   "get [journal]",
	Short: "Get a journal by ID or name",
	Long:  `Retrieve a journal by its ID or name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		j, err := journal.ResolveJournal(cmd.Context(), dbConn, args[0])
		if errors.Is(err, journal.ErrJournalNotFound) {
			return fmt.Errorf("journal not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get journal: %w", err)
		}

		printJournal(cmd.OutOrStdout(), j)
		return nil
	},
}

var listJournalsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all journals",
	Long:  `List all journals, optionally filtering by active status.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		journals, err := journal.ListJournals(cmd.Context(), dbConn, activeOnly)
		if err != nil {
			return fmt.Errorf("failed to list journals: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(journals) == 0 {
			fmt.Fprintln(out, "No journals found.")
			return nil
		}

		fmt.Fprintf(out, "Found %d journals:\n\n", len(journals))
		for i, j := range journals {
			if i > 0 {
				fmt.Fprintln(out, "---")
			}
			printJournal(out, j)
		}
		return nil
	},
}

var updateJournalCmd = &cobra.Command{
	Use:   "update [journal]",
	Short: "Update a journal",
	Long:  `Update a journal's name, description, or active status.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		active, _ := cmd.Flags().GetBool("active")

		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		// First get the current journal to preserve any fields not being updated
		current, err := journal.ResolveJournal(cmd.Context(), dbConn, args[0])
		if errors.Is(err, journal.ErrJournalNotFound) {
			return fmt.Errorf("journal not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get journal: %w", err)
		}

		if name == "" {
			name = current.Name
		}
		if !cmd.Flags().Changed("description") {
			description = current.Description
		}
		if !cmd.Flags().Changed("active") {
			active = current.Active
		}

		j, err := journal.UpdateJournal(cmd.Context(), dbConn, current.ID, name, description, active)
		if err != nil {
			return fmt.Errorf("failed to update journal: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Journal updated successfully!")
		printJournal(cmd.OutOrStdout(), j)
		return nil
	},
}

var deleteJournalCmd = &cobra.Command{
	Use:   "delete [journal]",
	Short: "Delete a journal",
	Long:  `Permanently delete a journal and every day logged in it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		j, err := journal.ResolveJournal(cmd.Context(), dbConn, args[0])
		if errors.Is(err, journal.ErrJournalNotFound) {
			return fmt.Errorf("journal not found: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to get journal: %w", err)
		}

		if err := journal.DeleteJournal(cmd.Context(), dbConn, j.ID); err != nil {
			return fmt.Errorf("failed to delete journal: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Journal %s deleted successfully!\n", j.Name)
		return nil
	},
}

var cleanJournalsCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete inactive journals",
	Long:  `Delete all inactive journals from the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := openDB()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		count, err := journal.DeleteInactiveJournals(cmd.Context(), dbConn)
		if err != nil {
			return fmt.Errorf("failed to clean inactive journals: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d inactive journals.\n", count)
		return nil
	},
}

func initJournalsCmd() {
	createJournalCmd.Flags().String("name", "", "Name of the journal (required)")
	createJournalCmd.Flags().String("description", "", "Description of the journal")
	createJournalCmd.MarkFlagRequired("name")

	listJournalsCmd.Flags().BoolVar(&activeOnly, "active-only", false, "List only active journals")

	updateJournalCmd.Flags().String("name", "", "New name for the journal")
	updateJournalCmd.Flags().String("description", "", "New description for the journal")
	updateJournalCmd.Flags().Bool("active", true, "Set journal active status")

	journalsCmd.AddCommand(
		createJournalCmd,
		getJournalCmd,
		listJournalsCmd,
		updateJournalCmd,
		deleteJournalCmd,
		cleanJournalsCmd,
	)
}
