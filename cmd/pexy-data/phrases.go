package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/db"
)

var phraseCmd = &cobra.Command{
	Use:   "phrase",
	Short: "Manage custom phrases",
}

var (
	phrasePictogram string
	phraseText      string
	phraseEmoji     string
	phraseLanguage  string
)

// maxPhraseLength matches the add-phrase form limit.
const maxPhraseLength = 200

var phraseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Attach a phrase to a pictogram",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(phraseText)
		if phrasePictogram == "" || text == "" {
			return fmt.Errorf("--pictogram and --text are required")
		}
		if utf8.RuneCountInString(text) > maxPhraseLength {
			return fmt.Errorf("phrase must be at most %d characters", maxPhraseLength)
		}

		phrase := db.CustomPhrase{
			PictogramID: phrasePictogram,
			Text:        text,
			Language:    phraseLanguage,
		}
		if phraseEmoji != "" {
			phrase.Emoji = &phraseEmoji
		}
		if err := db.AddCustomPhrase(&phrase); err != nil {
			return fmt.Errorf("add phrase: %w", err)
		}
		fmt.Printf("Phrase #%d added to %s\n", phrase.ID, phrasePictogram)
		return nil
	},
}

var phraseListCmd = &cobra.Command{
	Use:   "list <pictogram-id>",
	Short: "List a pictogram's phrases, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phrases, err := db.GetCustomPhrases(args[0], phraseLanguage)
		if err != nil {
			return fmt.Errorf("list phrases: %w", err)
		}
		if len(phrases) == 0 {
			fmt.Println("No phrases")
			return nil
		}
		for _, phrase := range phrases {
			emoji := ""
			if phrase.Emoji != nil {
				emoji = " " + *phrase.Emoji
			}
			fmt.Printf("#%d%s %s\n", phrase.ID, emoji, phrase.Text)
		}
		return nil
	},
}

var phraseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a phrase's text or emoji",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid phrase id %q", args[0])
		}

		var text, emoji *string
		if cmd.Flags().Changed("text") {
			trimmed := strings.TrimSpace(phraseText)
			if trimmed == "" {
				return fmt.Errorf("text must not be empty")
			}
			if utf8.RuneCountInString(trimmed) > maxPhraseLength {
				return fmt.Errorf("phrase must be at most %d characters", maxPhraseLength)
			}
			text = &trimmed
		}
		if cmd.Flags().Changed("emoji") {
			emoji = &phraseEmoji
		}
		if text == nil && emoji == nil {
			return fmt.Errorf("nothing to update: pass --text or --emoji")
		}

		updated, err := db.UpdateCustomPhrase(uint(id), text, emoji)
		if err != nil {
			return fmt.Errorf("update phrase: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("no phrase with id %d", id)
		}
		fmt.Printf("Phrase #%d updated\n", updated.ID)
		return nil
	},
}

var phraseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a phrase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid phrase id %q", args[0])
		}
		if err := db.DeleteCustomPhrase(uint(id)); err != nil {
			return fmt.Errorf("delete phrase: %w", err)
		}
		fmt.Printf("Phrase #%d deleted\n", id)
		return nil
	},
}

func init() {
	phraseAddCmd.Flags().StringVar(&phrasePictogram, "pictogram", "", "owning pictogram id")
	phraseAddCmd.Flags().StringVar(&phraseText, "text", "", "phrase text")
	phraseAddCmd.Flags().StringVar(&phraseEmoji, "emoji", "", "optional emoji")
	phraseAddCmd.Flags().StringVar(&phraseLanguage, "language", db.LanguageFR, "phrase language (fr or en)")
	phraseListCmd.Flags().StringVar(&phraseLanguage, "language", db.LanguageFR, "phrase language (fr or en)")
	phraseUpdateCmd.Flags().StringVar(&phraseText, "text", "", "replacement text")
	phraseUpdateCmd.Flags().StringVar(&phraseEmoji, "emoji", "", "replacement emoji")

	phraseCmd.AddCommand(phraseAddCmd)
	phraseCmd.AddCommand(phraseListCmd)
	phraseCmd.AddCommand(phraseUpdateCmd)
	phraseCmd.AddCommand(phraseDeleteCmd)
}
