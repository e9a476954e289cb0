package handler

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/api/metrics"
	"github.com/HairulDev/tsn-asia-next/internal/core/controller"
	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
	"github.com/HairulDev/tsn-asia-next/internal/core/ports"
	"github.com/HairulDev/tsn-asia-next/internal/infrastructure/upstream"
)

// Per-screen default page sizes (the original screens' initial selections).
const (
	companiesDefaultLimit     = 2
	usersDefaultLimit         = 5
	announcementsDefaultLimit = 2
	feedDefaultLimit          = 2
)

// screenPair couples one screen's list controller with its form controller.
// The read-only viewer has no form.
type screenPair[R any, D any] struct {
	list *controller.ListController[R]
	form *controller.FormController[R, D]
}

// ScreenSet is the complete screen state of one session. Only the screens the
// session's role can reach are populated; everything else stays nil and the
// role-gate middleware keeps requests away from it.
type ScreenSet struct {
	sessionID     string
	expiresAt     time.Time
	notices       *controller.NoticeFeed
	companies     *screenPair[domain.Company, domain.CompanyDraft]
	users         *screenPair[domain.User, domain.UserDraft]
	announcements *screenPair[domain.Announcement, domain.AnnouncementDraft]
	feed          *screenPair[domain.Announcement, domain.AnnouncementDraft]
	// companyPicker backs the user form's company select.
	companyPicker ports.ListGateway[domain.Company]
}

// Registry holds one ScreenSet per live session. Screen state is process-local
// and owned exclusively by its session; the only thing screens share is the
// read-only identity.
type Registry struct {
	upstream *upstream.Client
	validate *validator.Validate
	log      zerolog.Logger

	mu   sync.Mutex
	sets map[string]*ScreenSet
}

func NewRegistry(client *upstream.Client, validate *validator.Validate, log zerolog.Logger) *Registry {
	return &Registry{
		upstream: client,
		validate: validate,
		log:      log,
		sets:     make(map[string]*ScreenSet),
	}
}

// For returns the session's ScreenSet, building it on first use. Sets whose
// sessions have expired without a logout are reaped on the way.
func (r *Registry) For(sess *domain.Session) *ScreenSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for id, set := range r.sets {
		if !set.expiresAt.IsZero() && now.After(set.expiresAt) {
			delete(r.sets, id)
		}
	}

	if set, ok := r.sets[sess.ID]; ok {
		metrics.SessionsActive.Set(float64(len(r.sets)))
		return set
	}
	set := r.build(sess)
	set.expiresAt = sess.ExpiresAt
	r.sets[sess.ID] = set
	metrics.SessionsActive.Set(float64(len(r.sets)))
	return set
}

// Drop discards a session's screen state (logout, expiry).
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, sessionID)
	metrics.SessionsActive.Set(float64(len(r.sets)))
}

func (r *Registry) build(sess *domain.Session) *ScreenSet {
	client := r.upstream.WithToken(sess.Token)
	feed := controller.NewNoticeFeed(0)
	log := r.log.With().Str("session_id", sess.ID).Str("role", sess.Role).Logger()
	set := &ScreenSet{sessionID: sess.ID, notices: feed}

	for _, screen := range controller.ScreensFor(sess.Role) {
		switch screen {
		case domain.ScreenCompanies:
			gw := client.Companies()
			list := controller.NewListController[domain.Company](gw, feed, log, controller.ListConfig{
				Resource:     "companies",
				DefaultLimit: companiesDefaultLimit,
			})
			set.companies = &screenPair[domain.Company, domain.CompanyDraft]{
				list: list,
				form: controller.NewFormController(gw, r.validate,
					controller.CompanyDraftFromRecord, nil, list.Refresh, feed, log, "companies"),
			}

		case domain.ScreenUsers:
			gw := client.Users()
			list := controller.NewListController[domain.User](gw, feed, log, controller.ListConfig{
				Resource:     "users",
				DefaultLimit: usersDefaultLimit,
			})
			set.users = &screenPair[domain.User, domain.UserDraft]{
				list: list,
				form: controller.NewFormController(gw, r.validate,
					controller.UserDraftFromRecord, controller.UserPasswordRule, list.Refresh, feed, log, "users"),
			}
			set.companyPicker = client.Companies()

		case domain.ScreenAnnouncements:
			gw := client.Announcements()
			list := controller.NewListController[domain.Announcement](gw, feed, log, controller.ListConfig{
				Resource:     "announcements",
				DefaultLimit: announcementsDefaultLimit,
			})
			set.announcements = &screenPair[domain.Announcement, domain.AnnouncementDraft]{
				list: list,
				form: controller.NewFormController(gw, r.validate,
					controller.AnnouncementDraftFromRecord, nil, list.Refresh, feed, log, "announcements"),
			}

		case domain.ScreenAnnouncementFeed:
			gw := client.AnnouncementFeed()
			list := controller.NewListController[domain.Announcement](gw, feed, log, controller.ListConfig{
				Resource:     "announcement-feed",
				DefaultLimit: feedDefaultLimit,
				ReadOnly:     true,
			})
			set.feed = &screenPair[domain.Announcement, domain.AnnouncementDraft]{list: list}
		}
	}
	return set
}
