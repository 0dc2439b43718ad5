package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a card image directory and the deal log",
	Long: `Validate checks that the image directory holds a decodable image for each of
the 52 card codes (e.g. AS.png, 10H.png) and that the deal log is a sequence of
date lines each followed by a line of four distinct card codes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		imageDir, _ := cmd.Flags().GetString("images")
		if imageDir == "" {
			imageDir = settings.ImageDir
		}

		logFile := settings.LogFile
		if skip, _ := cmd.Flags().GetBool("skip-log"); skip {
			logFile = ""
		}

		v := validator.NewValidator(imageDir, logFile)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintln(out, "✅ No problems found.")
		} else {
			fmt.Fprintf(out, "❌ Found %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("images", "", "card image directory (default image_dir from config)")
	validateCmd.Flags().Bool("skip-log", false, "do not check the deal log")
}
