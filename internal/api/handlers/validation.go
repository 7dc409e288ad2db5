package handlers

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// Shop names become DNS subdomain labels, so they follow the label grammar.
var shopLabelPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks the signup payload and returns the normalized shop names:
// trimmed, deduplicated, order preserved. At least three distinct names must
// survive normalization.
func (r *SignupRequest) Validate() ([]string, error) {
	if strings.TrimSpace(r.UserName) == "" {
		return nil, errors.New("user_name is required")
	}
	if err := validatePassword(r.Password); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, raw := range r.ShopNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if !shopLabelPattern.MatchString(name) {
			return nil, errors.New("shop names may contain only lowercase letters, digits and hyphens")
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) < 3 {
		return nil, errors.New("at least 3 distinct shop names are required")
	}

	return names, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}

	var hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case !unicode.IsLetter(c):
			hasSpecial = true
		}
	}

	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	if !hasSpecial {
		return errors.New("password must contain at least one special character")
	}
	return nil
}
