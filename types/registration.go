// Package types holds the registration document read by `signup validate`.
package types

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/initializ/signup/validate"
)

// Registration is a registration supplied as a YAML (or JSON) document.
type Registration struct {
	Email           string `yaml:"email"`
	Password        string `yaml:"password"`
	ConfirmPassword string `yaml:"confirm_password"`
	FirstName       string `yaml:"first_name"`
	LastName        string `yaml:"last_name"`
	Avatar          string `yaml:"avatar,omitempty"` // path to an image file
}

// ParseRegistration parses raw YAML bytes into a Registration.
func ParseRegistration(data []byte) (*Registration, error) {
	var r Registration
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing registration: %w", err)
	}
	return &r, nil
}

// Credentials returns the step 1 inputs.
func (r *Registration) Credentials() validate.Credentials {
	return validate.Credentials{
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// Profile returns the step 2 text inputs.
func (r *Registration) Profile() validate.Profile {
	return validate.Profile{FirstName: r.FirstName, LastName: r.LastName}
}
