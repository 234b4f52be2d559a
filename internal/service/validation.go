package service

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"devjournal/models"
)

// Field length limits shared by create and update validation.
const (
	maxTitleLen       = 200
	maxSummaryLen     = 500
	maxDescriptionLen = 1000
	maxNameLen        = 100
	maxBioLen         = 500
	maxTagNameLen     = 50
)

var tagNameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

func validateEntryInput(input models.EntryInput) error {
	if err := validateTitle(input.Title); err != nil {
		return err
	}
	if strings.TrimSpace(input.Content) == "" {
		return invalid("content", "must not be empty")
	}
	if input.Summary != nil && utf8.RuneCountInString(*input.Summary) > maxSummaryLen {
		return invalid("summary", "must be at most 500 characters")
	}
	return nil
}

func validateEntryUpdate(update models.EntryUpdate) error {
	if update.Empty() {
		return invalid("body", "must contain at least one field")
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return invalid("content", "must not be empty")
	}
	if update.Summary != nil && utf8.RuneCountInString(*update.Summary) > maxSummaryLen {
		return invalid("summary", "must be at most 500 characters")
	}
	return nil
}

func validateSnippetInput(input models.SnippetInput) error {
	if err := validateTitle(input.Title); err != nil {
		return err
	}
	if strings.TrimSpace(input.Code) == "" {
		return invalid("code", "must not be empty")
	}
	if !models.IsSupportedLanguage(input.Language) {
		return invalid("language", "is not supported")
	}
	if input.Description != nil && utf8.RuneCountInString(*input.Description) > maxDescriptionLen {
		return invalid("description", "must be at most 1000 characters")
	}
	return nil
}

func validateSnippetUpdate(update models.SnippetUpdate) error {
	if update.Empty() {
		return invalid("body", "must contain at least one field")
	}
	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Code != nil && strings.TrimSpace(*update.Code) == "" {
		return invalid("code", "must not be empty")
	}
	if update.Language != nil && !models.IsSupportedLanguage(*update.Language) {
		return invalid("language", "is not supported")
	}
	if update.Description != nil && utf8.RuneCountInString(*update.Description) > maxDescriptionLen {
		return invalid("description", "must be at most 1000 characters")
	}
	return nil
}

func validateProfileUpdate(update models.ProfileUpdate) error {
	if update.Empty() {
		return invalid("body", "must contain at least one field")
	}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return invalid("name", "must not be empty")
		}
		if utf8.RuneCountInString(*update.Name) > maxNameLen {
			return invalid("name", "must be at most 100 characters")
		}
	}
	if update.Bio != nil && utf8.RuneCountInString(*update.Bio) > maxBioLen {
		return invalid("bio", "must be at most 500 characters")
	}
	if err := validateOptionalURL("avatar", update.Avatar); err != nil {
		return err
	}
	if err := validateOptionalURL("githubUrl", update.GitHubURL); err != nil {
		return err
	}
	if err := validateOptionalURL("linkedinUrl", update.LinkedinURL); err != nil {
		return err
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalid("title", "must not be empty")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return invalid("title", "must be at most 200 characters")
	}
	return nil
}

// validateOptionalURL accepts nil and the empty string (clearing the
// field); anything else must parse as an absolute http(s) URL.
func validateOptionalURL(field string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	u, err := url.Parse(*value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(field, "must be a valid http(s) URL")
	}
	return nil
}

// normalizeTagNames lowercases and trims the names, drops empties,
// removes duplicates while preserving first-seen order, and rejects
// names outside the allowed character set.
func normalizeTagNames(names []string) ([]string, error) {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > maxTagNameLen {
			return nil, invalid("tag", "must be at most 50 characters")
		}
		if !tagNameRe.MatchString(name) {
			return nil, invalid("tag", "may only contain lowercase letters, digits, hyphens and underscores")
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}

	return normalized, nil
}
