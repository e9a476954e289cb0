package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub gateway
// ---------------------------------------------------------------------------

type stubUserFormGateway struct {
	record    domain.User
	getErr    error
	createErr error
	updateErr error

	created []domain.UserDraft
	updated map[string]domain.UserDraft
}

func newStubUserFormGateway() *stubUserFormGateway {
	return &stubUserFormGateway{
		record: domain.User{
			ID:        "u-1",
			Name:      "Budi",
			Email:     "budi@example.com",
			Phone:     "081234567890",
			Role:      domain.RoleEmployee,
			CompanyID: "3f0e8d8e-52be-4e62-a6a8-1f7f2f3a9b10",
			IsActive:  true,
		},
		updated: make(map[string]domain.UserDraft),
	}
}

func (g *stubUserFormGateway) Get(_ context.Context, id string) (domain.User, error) {
	if g.getErr != nil {
		return domain.User{}, g.getErr
	}
	if id != g.record.ID {
		return domain.User{}, domain.ErrNotFound
	}
	return g.record, nil
}

func (g *stubUserFormGateway) Create(_ context.Context, draft domain.UserDraft) error {
	if g.createErr != nil {
		return g.createErr
	}
	g.created = append(g.created, draft)
	return nil
}

func (g *stubUserFormGateway) Update(_ context.Context, id string, draft domain.UserDraft) error {
	if g.updateErr != nil {
		return g.updateErr
	}
	g.updated[id] = draft
	return nil
}

func validUserDraft() domain.UserDraft {
	return domain.UserDraft{
		Name:      "Budi",
		Email:     "budi@example.com",
		Phone:     "081234567890",
		Role:      domain.RoleEmployee,
		CompanyID: "3f0e8d8e-52be-4e62-a6a8-1f7f2f3a9b10",
		IsActive:  true,
		Password:  "rahasia",
	}
}

func newFormUnderTest(g *stubUserFormGateway) (*FormController[domain.User, domain.UserDraft], *NoticeFeed, *int) {
	feed := NewNoticeFeed(0)
	refreshes := 0
	refresh := func(context.Context) error {
		refreshes++
		return nil
	}
	f := NewFormController[domain.User, domain.UserDraft](
		g,
		validator.New(),
		UserDraftFromRecord,
		UserPasswordRule,
		refresh,
		feed,
		zerolog.Nop(),
		"users",
	)
	return f, feed, &refreshes
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestFormController_SubmitWithoutOpenForm(t *testing.T) {
	f, _, _ := newFormUnderTest(newStubUserFormGateway())

	err := f.Submit(context.Background(), validUserDraft())
	if !errors.Is(err, domain.ErrNoOpenForm) {
		t.Fatalf("expected ErrNoOpenForm, got %v", err)
	}
}

func TestFormController_InvalidDraftNeverReachesGateway(t *testing.T) {
	g := newStubUserFormGateway()
	f, _, _ := newFormUnderTest(g)

	f.OpenCreate()
	err := f.Submit(context.Background(), domain.UserDraft{})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) == 0 {
		t.Fatalf("expected failing fields")
	}
	if len(g.created) != 0 {
		t.Fatalf("invalid draft must not reach the gateway")
	}

	view := f.View()
	if !view.Open {
		t.Fatalf("form must stay open after a rejected submit")
	}
}

func TestFormController_CreateRequiresPassword(t *testing.T) {
	f, _, _ := newFormUnderTest(newStubUserFormGateway())

	f.OpenCreate()
	draft := validUserDraft()
	draft.Password = ""

	err := f.Submit(context.Background(), draft)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	found := false
	for _, fe := range verr.Fields {
		if fe.Field == "password" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a password error, got %+v", verr.Fields)
	}
}

func TestFormController_EditAllowsEmptyPassword(t *testing.T) {
	g := newStubUserFormGateway()
	f, _, refreshes := newFormUnderTest(g)
	ctx := context.Background()

	if _, err := f.OpenEdit(ctx, "u-1"); err != nil {
		t.Fatalf("open edit: %v", err)
	}

	draft := validUserDraft()
	draft.Password = "" // leave unchanged
	if err := f.Submit(ctx, draft); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, ok := g.updated["u-1"]; !ok {
		t.Fatalf("expected an update for u-1")
	}
	if len(g.created) != 0 {
		t.Fatalf("edit mode must dispatch update, not create")
	}
	if *refreshes != 1 {
		t.Fatalf("expected one post-submit refresh, got %d", *refreshes)
	}
	if f.View().Open {
		t.Fatalf("form should close after a successful submit")
	}
}

func TestFormController_OpenEditNeverPopulatesPassword(t *testing.T) {
	f, _, _ := newFormUnderTest(newStubUserFormGateway())

	draft, err := f.OpenEdit(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if draft.Password != "" {
		t.Fatalf("edit draft must start with an empty password")
	}
	if draft.Name != "Budi" || draft.Role != domain.RoleEmployee {
		t.Fatalf("draft not populated from record: %+v", draft)
	}
}

func TestFormController_OpenEditFetchFailureKeepsFormClosed(t *testing.T) {
	g := newStubUserFormGateway()
	g.getErr = errors.New("upstream down")
	f, feed, _ := newFormUnderTest(g)

	if _, err := f.OpenEdit(context.Background(), "u-1"); err == nil {
		t.Fatalf("expected fetch error")
	}
	if f.View().Open {
		t.Fatalf("form must stay closed when the fetch fails")
	}
	if notices := feed.Drain(); len(notices) != 1 || notices[0].Kind != domain.NoticeError {
		t.Fatalf("expected one error notice, got %+v", notices)
	}
}

func TestFormController_SubmitFailureRetainsDraft(t *testing.T) {
	g := newStubUserFormGateway()
	g.createErr = errors.New("email sudah terdaftar")
	f, feed, refreshes := newFormUnderTest(g)

	f.OpenCreate()
	draft := validUserDraft()
	if err := f.Submit(context.Background(), draft); err == nil {
		t.Fatalf("expected submit error")
	}

	view := f.View()
	if !view.Open {
		t.Fatalf("form must stay open after a failed submit")
	}
	if view.Draft != draft {
		t.Fatalf("draft must survive a failed submit for retry")
	}
	if *refreshes != 0 {
		t.Fatalf("failed submit must not trigger a refresh")
	}
	if notices := feed.Drain(); len(notices) != 1 || notices[0].Kind != domain.NoticeError {
		t.Fatalf("expected one error notice, got %+v", notices)
	}
}

func TestFormController_SubmitSuccessResetsAndNotifies(t *testing.T) {
	g := newStubUserFormGateway()
	f, feed, refreshes := newFormUnderTest(g)

	f.OpenCreate()
	if err := f.Submit(context.Background(), validUserDraft()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(g.created) != 1 {
		t.Fatalf("expected one create, got %d", len(g.created))
	}
	if *refreshes != 1 {
		t.Fatalf("expected one refresh, got %d", *refreshes)
	}

	view := f.View()
	if view.Open || view.Mode != "" || view.TargetID != "" {
		t.Fatalf("form state not reset: %+v", view)
	}
	if view.Draft != (domain.UserDraft{}) {
		t.Fatalf("draft not cleared: %+v", view.Draft)
	}

	notices := feed.Drain()
	if len(notices) != 1 || notices[0].Kind != domain.NoticeSuccess {
		t.Fatalf("expected one success notice, got %+v", notices)
	}
}

func TestFormController_CancelClearsDraft(t *testing.T) {
	f, _, _ := newFormUnderTest(newStubUserFormGateway())

	f.OpenCreate()
	f.Cancel()

	view := f.View()
	if view.Open {
		t.Fatalf("cancel must close the form")
	}
	if view.Draft != (domain.UserDraft{}) {
		t.Fatalf("cancel must clear the draft")
	}
}

func TestFormController_ValidateDefaultsToCreateRules(t *testing.T) {
	f, _, _ := newFormUnderTest(newStubUserFormGateway())

	// No form open: Validate applies create-mode rules, so an empty
	// password is still a failure.
	draft := validUserDraft()
	draft.Password = ""
	verr := f.Validate(draft)
	if verr == nil {
		t.Fatalf("expected validation failure")
	}

	draft.Password = "rahasia"
	if verr := f.Validate(draft); verr != nil {
		t.Fatalf("expected valid draft, got %+v", verr.Fields)
	}
}
