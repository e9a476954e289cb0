package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/api/metrics"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
	"github.com/HairulDev/tsn-asia-next/internal/core/ports"
)

// FormMode discriminates a draft between creation and editing.
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeEdit   FormMode = "edit"
)

// ModeCheck adds mode-dependent rules on top of a draft's validation tags.
// The user form uses it to require a password on create while allowing an
// empty one on edit.
type ModeCheck[D any] func(mode FormMode, draft D) []domain.FieldError

// FormView is a snapshot of a form controller for rendering.
type FormView[D any] struct {
	Open     bool     `json:"open"`
	Mode     FormMode `json:"mode,omitempty"`
	TargetID string   `json:"target_id,omitempty"`
	Draft    D        `json:"draft"`
}

// FormController owns a single screen's form draft: its fields, validation
// and create-vs-update submission. A draft lives from OpenCreate/OpenEdit
// until submit success or cancel, and survives failed submits so the user can
// retry without re-entering data.
type FormController[R any, D any] struct {
	gateway    ports.FormGateway[R, D]
	validate   *validator.Validate
	fromRecord func(R) D
	modeCheck  ModeCheck[D]
	refresh    func(ctx context.Context) error
	notifier   ports.Notifier
	log        zerolog.Logger
	resource   string

	mu       sync.Mutex
	open     bool
	mode     FormMode
	targetID string
	draft    D
}

// NewFormController builds a form controller for one resource. fromRecord maps
// a fetched record onto a draft for editing; it must leave server-only fields
// (passwords) untouched. modeCheck may be nil. refresh is invoked after every
// successful submit so the owning list re-queries at its current state.
func NewFormController[R any, D any](
	gateway ports.FormGateway[R, D],
	validate *validator.Validate,
	fromRecord func(R) D,
	modeCheck ModeCheck[D],
	refresh func(ctx context.Context) error,
	notifier ports.Notifier,
	log zerolog.Logger,
	resource string,
) *FormController[R, D] {
	return &FormController[R, D]{
		gateway:    gateway,
		validate:   validate,
		fromRecord: fromRecord,
		modeCheck:  modeCheck,
		refresh:    refresh,
		notifier:   notifier,
		log:        log.With().Str("resource", resource).Logger(),
		resource:   resource,
	}
}

// View returns the current form state.
func (f *FormController[R, D]) View() FormView[D] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormView[D]{Open: f.open, Mode: f.mode, TargetID: f.targetID, Draft: f.draft}
}

// OpenCreate clears the draft to its zero defaults and switches to create mode.
func (f *FormController[R, D]) OpenCreate() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero D
	f.open = true
	f.mode = ModeCreate
	f.targetID = ""
	f.draft = zero
	return f.draft
}

// OpenEdit fetches the target record and maps it onto a fresh draft. On fetch
// failure the form stays closed and the error is surfaced as a notice.
func (f *FormController[R, D]) OpenEdit(ctx context.Context, id string) (D, error) {
	var zero D
	record, err := f.gateway.Get(ctx, id)
	if err != nil {
		f.log.Error().Err(err).Str("id", id).Msg("edit fetch failed")
		f.notifier.Notify(domain.Notice{Kind: domain.NoticeError, Message: err.Error()})
		return zero, fmt.Errorf("open edit %s: %w", f.resource, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	f.mode = ModeEdit
	f.targetID = id
	f.draft = f.fromRecord(record)
	return f.draft, nil
}

// Cancel destroys the draft without submitting.
func (f *FormController[R, D]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero D
	f.open = false
	f.mode = ""
	f.targetID = ""
	f.draft = zero
}

// Validate evaluates the draft against its rules for the current mode and
// returns every failing field. Called on each change, not only on submit.
func (f *FormController[R, D]) Validate(draft D) *domain.ValidationError {
	f.mu.Lock()
	mode := f.mode
	f.mu.Unlock()
	if mode == "" {
		mode = ModeCreate
	}
	return f.check(mode, draft)
}

// Submit validates locally first — an invalid draft never reaches the gateway.
// Valid drafts dispatch create or update depending on mode. Success closes the
// form, resets the draft and triggers the owning list's re-query; failure
// keeps the draft and surfaces the upstream message.
func (f *FormController[R, D]) Submit(ctx context.Context, draft D) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return fmt.Errorf("submit %s: %w", f.resource, domain.ErrNoOpenForm)
	}
	mode, targetID := f.mode, f.targetID
	f.draft = draft // retained for retry on failure
	f.mu.Unlock()

	if verr := f.check(mode, draft); verr != nil {
		return verr
	}

	op := "create"
	var err error
	if mode == ModeEdit {
		op = "update"
		err = f.gateway.Update(ctx, targetID, draft)
	} else {
		err = f.gateway.Create(ctx, draft)
	}

	if err != nil {
		metrics.WritesTotal.WithLabelValues(f.resource, op, "error").Inc()
		f.log.Error().Err(err).Str("op", op).Str("id", targetID).Msg("submit failed")
		f.notifier.Notify(domain.Notice{Kind: domain.NoticeError, Message: err.Error()})
		return fmt.Errorf("submit %s: %w", f.resource, err)
	}

	metrics.WritesTotal.WithLabelValues(f.resource, op, "ok").Inc()
	f.log.Info().Str("op", op).Str("id", targetID).Msg("submit succeeded")
	f.notifier.Notify(domain.Notice{Kind: domain.NoticeSuccess, Message: "Data berhasil disimpan"})
	f.Cancel()

	if f.refresh != nil {
		if rerr := f.refresh(ctx); rerr != nil {
			f.log.Warn().Err(rerr).Msg("post-submit refresh failed")
		}
	}
	return nil
}

func (f *FormController[R, D]) check(mode FormMode, draft D) *domain.ValidationError {
	var fields []domain.FieldError
	if err := f.validate.Struct(draft); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				fields = append(fields, domain.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Message: fieldErrorMessage(fe),
				})
			}
		} else {
			fields = append(fields, domain.FieldError{Field: "", Message: err.Error()})
		}
	}
	if f.modeCheck != nil {
		fields = append(fields, f.modeCheck(mode, draft)...)
	}
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldErrorMessage converts a single validation error into a human-readable
// message.
func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "uuid":
		return field + " must be a valid identifier"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
