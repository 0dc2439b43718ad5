package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/deallog"
	"github.com/arcanaland/dealer/internal/images"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a card image directory and a deal log.
// Either path may be empty to skip that check.
type Validator struct {
	ImageDir string
	LogFile  string
	Results  ValidationResults
}

func NewValidator(imageDir, logFile string) *Validator {
	return &Validator{
		ImageDir: imageDir,
		LogFile:  logFile,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.ImageDir == "" && v.LogFile == "" {
		return v.Results, fmt.Errorf("nothing to validate: no image directory or log file given")
	}

	if v.ImageDir != "" {
		v.validateImages()
	}

	if v.LogFile != "" {
		v.validateLog()
	}

	return v.Results, nil
}

// validateImages checks that every card has a decodable image
func (v *Validator) validateImages() {
	if _, err := os.Stat(v.ImageDir); os.IsNotExist(err) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("image directory not found: %s", v.ImageDir))
		return
	}

	lib, missing, err := images.Load(v.ImageDir)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return
	}

	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing card images: %s", strings.Join(missing, ", ")))
	}

	ansiOnly := 0
	for _, c := range card.All() {
		path, err := lib.Path(c)
		if err != nil {
			continue
		}

		if filepath.Ext(path) == images.AnsiExtension {
			ansiOnly++
			continue
		}

		if _, err := images.Decode(path); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s: %v", filepath.Base(path), err))
		}
	}

	if ansiOnly > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d cards use pre-rendered ANSI art instead of an image", ansiOnly))
	}

	v.validateStrayFiles()
}

// validateStrayFiles warns about files that are not named after a card
func (v *Validator) validateStrayFiles() {
	entries, err := os.ReadDir(v.ImageDir)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("error reading image directory: %v", err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		c, err := card.Parse(stem)
		if err != nil || c.Code() != stem {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("file is not named after a card code: %s", entry.Name()))
		}
	}
}

// validateLog checks that the log is a sequence of date and card lines
func (v *Validator) validateLog() {
	if _, err := os.Stat(v.LogFile); os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("log file not found: %s", v.LogFile))
		return
	}

	records, err := deallog.New(v.LogFile).Records()
	if err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("malformed log %s: %v", v.LogFile, err))
		return
	}

	if len(records) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "log file contains no deals")
	}

	for _, r := range records {
		if len(r.Cards) != card.HandSize {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("line %d: expected %d cards, found %d", r.Line+1, card.HandSize, len(r.Cards)))
		}
		if err := r.Cards.Distinct(); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("line %d: %v", r.Line+1, err))
		}
	}
}
