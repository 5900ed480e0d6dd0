package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"babybook-be/internal/apperror"
	"babybook-be/internal/entity"

	"github.com/go-playground/validator/v10"
)

// Registry maps each page type to the validator for its content payload.
// Validate never panics on malformed input; failures come back as a
// ValidationFailed error carrying field-level violations.
type Registry struct {
	validate  *validator.Validate
	factories map[entity.PageType]func() PageContent
}

var (
	// Strict YYYY-MM-DD / YYYY-MM. The stdlib time parser is lenient
	// about zero padding, so the pattern is checked first.
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

func NewRegistry() *Registry {
	v := validator.New()

	// Report violations under the wire field name, not the Go name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !isoDatePattern.MatchString(s) {
			return false
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})

	_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !yearMonthPattern.MatchString(s) {
			return false
		}
		_, err := time.Parse("2006-01", s)
		return err == nil
	})

	return &Registry{
		validate: v,
		factories: map[entity.PageType]func() PageContent{
			entity.PageTypeCover:          func() PageContent { return &CoverContent{} },
			entity.PageTypeBirthStory:     func() PageContent { return &BirthStoryContent{} },
			entity.PageTypeMilestone:      func() PageContent { return &MilestoneContent{} },
			entity.PageTypePhotoSpread:    func() PageContent { return &PhotoSpreadContent{} },
			entity.PageTypeJournal:        func() PageContent { return &JournalContent{} },
			entity.PageTypeLetter:         func() PageContent { return &LetterContent{} },
			entity.PageTypeMonthlySummary: func() PageContent { return &MonthlySummaryContent{} },
		},
	}
}

// Validate decodes and validates a raw content payload against the schema
// registered for pageType. On success the typed content is returned; on
// failure the error is a ValidationFailed AppError listing every field
// violation. Referential checks (e.g. highlight_page_ids existence) are
// the caller's business.
func (r *Registry) Validate(pageType entity.PageType, payload json.RawMessage) (PageContent, error) {
	factory, ok := r.factories[pageType]
	if !ok {
		return nil, apperror.Validation([]apperror.FieldViolation{{
			Field:   "page_type",
			Rule:    "oneof",
			Message: fmt.Sprintf("unknown page type %q", pageType),
		}})
	}

	content := factory()
	dec := json.NewDecoder(bytes.NewReader(payload))
	if err := dec.Decode(content); err != nil {
		return nil, apperror.Validation([]apperror.FieldViolation{decodeViolation(err)})
	}

	if err := r.validate.Struct(content); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, apperror.Validation([]apperror.FieldViolation{{
				Field: "content", Rule: "struct", Message: err.Error(),
			}})
		}
		violations := make([]apperror.FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, apperror.FieldViolation{
				Field:   fieldPath(fe),
				Rule:    fe.Tag(),
				Message: violationMessage(fe),
			})
		}
		return nil, apperror.Validation(violations)
	}

	return content, nil
}

func decodeViolation(err error) apperror.FieldViolation {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return apperror.FieldViolation{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return apperror.FieldViolation{Field: "content", Rule: "json", Message: "malformed content payload"}
}

// fieldPath strips the root struct name from the validator namespace so
// nested violations read like "photos[0].caption".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "yearmonth":
		return "must be a month in YYYY-MM format"
	case "uuid":
		return "must be a valid identifier"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
