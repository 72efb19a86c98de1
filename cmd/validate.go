package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/initializ/signup/avatar"
	"github.com/initializ/signup/types"
	"github.com/initializ/signup/validate"
)

var (
	registrationFile string
	avatarOverride   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a registration document without the wizard",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&registrationFile, "file", "f", "registration.yaml", "registration document (YAML or JSON)")
	validateCmd.Flags().StringVar(&avatarOverride, "avatar", "", "avatar image path, overriding the document's avatar field")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(registrationFile)
	if err != nil {
		return fmt.Errorf("reading registration: %w", err)
	}
	reg, err := types.ParseRegistration(data)
	if err != nil {
		return err
	}

	var info *validate.AvatarInfo
	path := reg.Avatar
	if path != "" && !filepath.IsAbs(path) {
		// document paths are relative to the document
		path = filepath.Join(filepath.Dir(registrationFile), path)
	}
	if avatarOverride != "" {
		path = avatarOverride
	}
	if path != "" {
		blob, err := avatar.FromFile(path)
		if err != nil {
			return fmt.Errorf("reading avatar: %w", err)
		}
		info = blob.Info()
	}

	result := validate.ValidateCredentials(reg.Credentials())
	for f, e := range validate.ValidateProfile(reg.Profile(), info) {
		result[f] = e
	}

	out := cmd.OutOrStdout()
	if suggestion := validate.SuggestEmail(reg.Email); suggestion != "" {
		fmt.Fprintf(out, "HINT: email domain looks mistyped, did you mean %s?\n", suggestion)
	}
	for _, msg := range result.Messages(nil) {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %s\n", msg)
	}

	if !result.Valid() {
		return fmt.Errorf("validation failed: %d error(s)", len(result))
	}

	fmt.Fprintln(out, "Validation passed.")
	return nil
}
