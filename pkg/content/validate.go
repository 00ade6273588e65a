package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects which write path a document is validated for. Create and update differ in
// what they demand of a movie's links.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

// Validator enforces the write-path rules for Content documents. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks c for the given write path and returns the first failure as a *ValidationError.
// Required fields are checked first in declaration order (title, description, type, poster,
// language, category, year), then field formats, then the type-specific structure.
func (v *Validator) Validate(c Content, mode Mode) error {
	if err := v.checkFields(c); err != nil {
		return err
	}

	switch c.Type {
	case TypeMovie:
		return checkMovie(c, mode)
	case TypeSeries:
		return checkSeries(c)
	}

	return nil
}

func (v *Validator) checkFields(c Content) error {
	c.Title = trim(c.Title)

	err := v.validate.Struct(c)
	if err == nil {
		if !c.Type.Valid() {
			return invalid("type", "Invalid content type: %s", c.Type)
		}
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return MissingField(fe.Field())
		}
	}

	if !c.Type.Valid() {
		return invalid("type", "Invalid content type: %s", c.Type)
	}

	return fromFieldError(fieldErrs[0])
}

func fromFieldError(fe validator.FieldError) *ValidationError {
	path := strings.TrimPrefix(fe.Namespace(), "Content.")
	switch fe.Tag() {
	case "min", "max":
		return invalid(path, "%s must be between 0 and 10", path)
	case "oneof":
		return invalid(path, "%s must be one of %s", path, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return invalid(path, "%s is invalid", path)
	}
}

func checkMovie(c Content, mode Mode) error {
	var embed, download string
	if c.MovieData != nil {
		download = c.MovieData.DownloadLink
		if c.MovieData.EmbedIframeLink != nil {
			embed = *c.MovieData.EmbedIframeLink
		}
	}

	if mode == ModeUpdate {
		if download == "" {
			return invalid("movieData.downloadLink", "Movie downloadLink is required")
		}
		return nil
	}

	if embed == "" && download == "" {
		return invalid("movieData", "Movie embedIframeLink or downloadLink is required")
	}
	return nil
}

func checkSeries(c Content) error {
	if len(c.Seasons) == 0 {
		return invalid("seasons", "Series must have at least one season")
	}

	for i, s := range c.Seasons {
		for j, e := range s.Episodes {
			if e.DownloadLink == "" {
				return invalid(
					fmt.Sprintf("seasons[%d].episodes[%d].downloadLink", i, j),
					"Episode %d in Season %d is missing downloadLink", e.EpisodeNumber, s.SeasonNumber,
				)
			}
		}
	}

	return nil
}

// checkDraft is the stricter rule set applied to a builder tree before it is submitted
func checkDraft(seasons []Season) error {
	if len(seasons) == 0 {
		return invalid("seasons", "At least one season is required")
	}

	for i, s := range seasons {
		if len(s.Episodes) == 0 {
			return invalid(fmt.Sprintf("seasons[%d].episodes", i), "Season %d must have at least one episode", s.SeasonNumber)
		}

		for j, e := range s.Episodes {
			if trim(e.EpisodeTitle) == "" {
				return invalid(
					fmt.Sprintf("seasons[%d].episodes[%d].episodeTitle", i, j),
					"Episode %d in Season %d is missing a title", e.EpisodeNumber, s.SeasonNumber,
				)
			}
			if trim(e.DownloadLink) == "" {
				return invalid(
					fmt.Sprintf("seasons[%d].episodes[%d].downloadLink", i, j),
					"Episode %d in Season %d is missing a download link", e.EpisodeNumber, s.SeasonNumber,
				)
			}
		}
	}

	return nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
