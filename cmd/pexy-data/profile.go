package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pexy-app/pexy-data/pkg/catalog"
	"github.com/pexy-app/pexy-data/pkg/db"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var (
	profileName     string
	profileLanguage string
	profileSpeed    float64
	profileVoice    string
	profilePin      string

	updateClearVoice bool
	updateClearPin   bool
	updateHidden     []string
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// validTTSSpeeds is the enumerated set the TTS engine accepts.
var validTTSSpeeds = []float64{0.5, 1.0, 1.25}

func validateLanguage(language string) error {
	for _, l := range db.SupportedLanguages {
		if language == l {
			return nil
		}
	}
	return fmt.Errorf("language must be one of %s (got %q)", strings.Join(db.SupportedLanguages, ", "), language)
}

func validateTTSSpeed(speed float64) error {
	for _, v := range validTTSSpeeds {
		if speed == v {
			return nil
		}
	}
	return fmt.Errorf("tts speed must be one of 0.5, 1.0, 1.25 (got %v)", speed)
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the user profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(profileName) == "" {
			return fmt.Errorf("--name is required")
		}
		if err := validateLanguage(profileLanguage); err != nil {
			return err
		}
		if err := validateTTSSpeed(profileSpeed); err != nil {
			return err
		}

		profile := db.UserProfile{
			Name:     strings.TrimSpace(profileName),
			Language: profileLanguage,
			TTSSpeed: profileSpeed,
		}
		if profileVoice != "" {
			profile.TTSVoiceID = &profileVoice
		}
		if profilePin != "" {
			if !pinPattern.MatchString(profilePin) {
				return fmt.Errorf("pin code must be exactly 4 digits")
			}
			profile.PinCode = &profilePin
		}

		if err := db.CreateUserProfile(&profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		fmt.Printf("Profile created: %s (%s)\n", profile.Name, profile.Language)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := db.GetUserProfile()
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		if profile == nil {
			fmt.Println("No profile found. Run: pexy-data profile create --name <name>")
			return nil
		}

		fmt.Printf("Name:       %s\n", profile.Name)
		fmt.Printf("Language:   %s\n", profile.Language)
		fmt.Printf("TTS speed:  %v\n", profile.TTSSpeed)
		if profile.TTSVoiceID != nil {
			fmt.Printf("TTS voice:  %s\n", *profile.TTSVoiceID)
		}
		if profile.PinCode != nil {
			fmt.Println("PIN:        set")
		}
		hidden, err := db.GetHiddenCategories()
		if err != nil {
			return fmt.Errorf("read hidden categories: %w", err)
		}
		if len(hidden) > 0 {
			fmt.Printf("Hidden:     %s\n", strings.Join(hidden, ", "))
		}
		fmt.Printf("Updated:    %s\n", profile.UpdatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := db.GetUserProfile()
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("no profile to update")
		}

		var update db.ProfileUpdate
		if cmd.Flags().Changed("name") {
			name := strings.TrimSpace(profileName)
			if name == "" {
				return fmt.Errorf("name must not be empty")
			}
			update.Name = &name
		}
		if cmd.Flags().Changed("language") {
			if err := validateLanguage(profileLanguage); err != nil {
				return err
			}
			update.Language = &profileLanguage
		}
		if cmd.Flags().Changed("tts-speed") {
			if err := validateTTSSpeed(profileSpeed); err != nil {
				return err
			}
			update.TTSSpeed = &profileSpeed
		}
		if cmd.Flags().Changed("voice") {
			update.TTSVoiceID = &profileVoice
		}
		update.ClearTTSVoiceID = updateClearVoice
		if cmd.Flags().Changed("pin") {
			if !pinPattern.MatchString(profilePin) {
				return fmt.Errorf("pin code must be exactly 4 digits")
			}
			update.PinCode = &profilePin
		}
		update.ClearPinCode = updateClearPin

		updated, err := db.UpdateUserProfile(profile.ID, update)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("profile disappeared during update")
		}

		if cmd.Flags().Changed("hide") {
			for _, id := range updateHidden {
				if !catalog.IsValid(id) {
					return fmt.Errorf("unknown category %q", id)
				}
			}
			if err := db.SetHiddenCategories(updated.ID, updateHidden); err != nil {
				return fmt.Errorf("set hidden categories: %w", err)
			}
		}

		fmt.Println("Profile updated")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{profileCreateCmd, profileUpdateCmd} {
		cmd.Flags().StringVar(&profileName, "name", "", "user name")
		cmd.Flags().StringVar(&profileLanguage, "language", db.LanguageFR, "interface language (fr or en)")
		cmd.Flags().Float64Var(&profileSpeed, "tts-speed", 1.0, "speech rate (0.5, 1.0, or 1.25)")
		cmd.Flags().StringVar(&profileVoice, "voice", "", "platform TTS voice id")
		cmd.Flags().StringVar(&profilePin, "pin", "", "4-digit settings PIN")
	}
	profileUpdateCmd.Flags().BoolVar(&updateClearVoice, "clear-voice", false, "reset the TTS voice")
	profileUpdateCmd.Flags().BoolVar(&updateClearPin, "clear-pin", false, "remove the settings PIN")
	profileUpdateCmd.Flags().StringSliceVar(&updateHidden, "hide", nil, "comma-separated category ids to hide")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
