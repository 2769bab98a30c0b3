package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"churchEvents/internal/models"
	"churchEvents/internal/storage"
	"churchEvents/internal/storage/sqlstore"
	"churchEvents/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) *sqlstore.Storage {
	t.Helper()

	s, err := InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newEvent(t *testing.T, s *sqlstore.Storage, slug string, capacity int) *models.Event {
	t.Helper()

	e, err := s.CreateEvent(context.Background(), models.Event{
		Title:    "Evento " + slug,
		Slug:     slug,
		Date:     time.Date(2025, 11, 20, 19, 30, 0, 0, time.UTC),
		Location: "Templo Central",
		Category: models.CategoryConference,
		Capacity: capacity,
		IsActive: true,
	})
	require.NoError(t, err)

	return e
}

func register(t *testing.T, s *sqlstore.Storage, eventID, name string) *models.Registration {
	t.Helper()

	r, err := s.CreateRegistration(context.Background(), models.Registration{
		EventID: eventID,
		Name:    name,
		Email:   name + "@example.com",
		Phone:   "(11) 3456-7890",
	})
	require.NoError(t, err)

	return r
}

func counter(t *testing.T, s *sqlstore.Storage, eventID string) int {
	t.Helper()

	e, err := s.GetEvent(context.Background(), eventID)
	require.NoError(t, err)

	return e.CurrentRegistrations
}

func TestCreateEventSlugIsUnique(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	first := newEvent(t, s, "retiro-2025", 10)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 0, first.CurrentRegistrations)

	_, err := s.CreateEvent(ctx, models.Event{
		Title:    "Outro",
		Slug:     "retiro-2025",
		Date:     time.Now(),
		Category: models.CategoryRetreat,
		Capacity: 5,
	})
	assert.ErrorIs(t, err, storage.ErrEventExists)

	got, err := s.GetEventBySlug(ctx, "retiro-2025")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, got.Date.Equal(first.Date))
}

func TestGetEventsFilters(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	newEvent(t, s, "culto-a", 10)
	featured := newEvent(t, s, "culto-b", 10)
	featured.IsFeatured = true
	featured.Category = models.CategoryWorship
	_, err := s.UpdateEvent(ctx, *featured)
	require.NoError(t, err)

	all, err := s.GetEvents(ctx, models.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	yes := true
	onlyFeatured, err := s.GetEvents(ctx, models.EventFilter{Featured: &yes})
	require.NoError(t, err)
	require.Len(t, onlyFeatured, 1)
	assert.Equal(t, "culto-b", onlyFeatured[0].Slug)

	worship, err := s.GetEvents(ctx, models.EventFilter{Category: models.CategoryWorship})
	require.NoError(t, err)
	assert.Len(t, worship, 1)
}

func TestCapacityGateSequence(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	e := newEvent(t, s, "capacidade-dois", 2)

	a := register(t, s, e.ID, "a")
	assert.Equal(t, models.StatusPending, a.Status)
	assert.Equal(t, 1, counter(t, s, e.ID))

	b := register(t, s, e.ID, "b")
	assert.Equal(t, models.StatusPending, b.Status)
	assert.Equal(t, 2, counter(t, s, e.ID))

	c := register(t, s, e.ID, "c")
	assert.Equal(t, models.StatusWaitlist, c.Status)
	assert.Equal(t, 2, counter(t, s, e.ID))
}

func TestCreateRegistrationMissingOrInactiveEvent(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	_, err := s.CreateRegistration(ctx, models.Registration{EventID: "4a0e0d4e-7d0b-4c36-9c57-1b3f9f4f2a11", Name: "x"})
	assert.ErrorIs(t, err, storage.ErrEventNotFound)

	e := newEvent(t, s, "inativo", 3)
	e.IsActive = false
	_, err = s.UpdateEvent(ctx, *e)
	require.NoError(t, err)

	_, err = s.CreateRegistration(ctx, models.Registration{EventID: e.ID, Name: "x"})
	assert.ErrorIs(t, err, storage.ErrEventInactive)
	assert.Equal(t, 0, counter(t, s, e.ID))
}

func TestUpdateStatusAdjustsCounter(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()
	e := newEvent(t, s, "status", 1)

	a := register(t, s, e.ID, "a")
	w := register(t, s, e.ID, "w")
	require.Equal(t, models.StatusWaitlist, w.Status)

	_, err := s.UpdateRegistrationStatus(ctx, w.ID, models.StatusConfirmed)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)

	got, err := s.GetRegistration(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaitlist, got.Status)
	assert.Equal(t, 1, counter(t, s, e.ID))

	updated, err := s.UpdateRegistrationStatus(ctx, a.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, 1, counter(t, s, e.ID))

	_, err = s.UpdateRegistrationStatus(ctx, a.ID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 0, counter(t, s, e.ID))

	_, err = s.UpdateRegistrationStatus(ctx, w.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, 1, counter(t, s, e.ID))

	_, err = s.UpdateRegistrationStatus(ctx, a.ID, models.StatusWaitlist)
	require.NoError(t, err)
	assert.Equal(t, 1, counter(t, s, e.ID), "cancelled to waitlist leaves the counter alone")
}

func TestUpdateStatusUnknownRegistration(t *testing.T) {
	t.Parallel()

	s := newStorage(t)

	_, err := s.UpdateRegistrationStatus(context.Background(), "4a0e0d4e-7d0b-4c36-9c57-1b3f9f4f2a11", models.StatusConfirmed)
	assert.ErrorIs(t, err, storage.ErrRegistrationNotFound)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	e := newEvent(t, s, "desconhecido", 1)
	a := register(t, s, e.ID, "a")

	_, err := s.UpdateRegistrationStatus(context.Background(), a.ID, "ARCHIVED")
	assert.ErrorIs(t, err, workflow.ErrUnknownStatus)
	assert.Equal(t, 1, counter(t, s, e.ID))
}

func TestDeleteRegistration(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()
	e := newEvent(t, s, "apagar", 1)

	a := register(t, s, e.ID, "a")
	w := register(t, s, e.ID, "w")

	require.NoError(t, s.DeleteRegistration(ctx, w.ID))
	assert.Equal(t, 1, counter(t, s, e.ID))

	require.NoError(t, s.DeleteRegistration(ctx, a.ID))
	assert.Equal(t, 0, counter(t, s, e.ID))

	err := s.DeleteRegistration(ctx, a.ID)
	assert.ErrorIs(t, err, storage.ErrRegistrationNotFound)
	assert.Equal(t, 0, counter(t, s, e.ID))
}

func TestUpdateEventCapacityBelowCount(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()
	e := newEvent(t, s, "reduzir", 3)

	register(t, s, e.ID, "a")
	register(t, s, e.ID, "b")

	e.Capacity = 1
	_, err := s.UpdateEvent(ctx, *e)
	assert.ErrorIs(t, err, storage.ErrCapacityExceeded)

	e.Capacity = 2
	updated, err := s.UpdateEvent(ctx, *e)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Capacity)
	assert.Equal(t, 2, updated.CurrentRegistrations)

	e.ID = "4a0e0d4e-7d0b-4c36-9c57-1b3f9f4f2a11"
	_, err = s.UpdateEvent(ctx, *e)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestDeleteEventCascades(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()
	e := newEvent(t, s, "cascata", 3)
	r := register(t, s, e.ID, "a")

	require.NoError(t, s.DeleteEvent(ctx, e.ID))

	_, err := s.GetRegistration(ctx, r.ID)
	assert.ErrorIs(t, err, storage.ErrRegistrationNotFound)

	err = s.DeleteEvent(ctx, e.ID)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestGetRegistrationsFilter(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()
	one := newEvent(t, s, "um", 1)
	two := newEvent(t, s, "dois", 5)

	register(t, s, one.ID, "a")
	register(t, s, one.ID, "b")
	register(t, s, two.ID, "c")

	all, err := s.GetRegistrations(ctx, models.RegistrationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byEvent, err := s.GetRegistrations(ctx, models.RegistrationFilter{EventID: one.ID})
	require.NoError(t, err)
	assert.Len(t, byEvent, 2)

	waitlisted, err := s.GetRegistrations(ctx, models.RegistrationFilter{Status: models.StatusWaitlist})
	require.NoError(t, err)
	require.Len(t, waitlisted, 1)
	assert.Equal(t, "b", waitlisted[0].Name)

	future, err := s.GetRegistrations(ctx, models.RegistrationFilter{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	window, err := s.GetRegistrations(ctx, models.RegistrationFilter{
		From: time.Now().Add(-time.Hour),
		To:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Len(t, window, 3)
}

func TestConcurrentRegistrations(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	const capacity = 5
	const requests = 40

	e := newEvent(t, s, "concorrencia", capacity)

	var wg sync.WaitGroup
	statuses := make(chan models.Status, requests)
	errs := make(chan error, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			r, err := s.CreateRegistration(ctx, models.Registration{
				EventID: e.ID,
				Name:    fmt.Sprintf("pessoa %d", i),
				Email:   fmt.Sprintf("pessoa%d@example.com", i),
				Phone:   "(11) 3456-7890",
			})
			if err != nil {
				errs <- err
				return
			}
			statuses <- r.Status
		}(i)
	}

	wg.Wait()
	close(statuses)
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	counts := map[models.Status]int{}
	for st := range statuses {
		counts[st]++
	}

	assert.Equal(t, capacity, counts[models.StatusPending])
	assert.Equal(t, requests-capacity, counts[models.StatusWaitlist])
	assert.Equal(t, capacity, counter(t, s, e.ID))
}

func TestConfigs(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	_, err := s.CreateConfig(ctx, models.SiteConfig{Key: "site_title", Value: "Igreja", Type: models.ConfigText, Category: "general", IsPublic: true})
	require.NoError(t, err)
	_, err = s.CreateConfig(ctx, models.SiteConfig{Key: "primary_color", Value: "#112233", Type: models.ConfigColor, Category: "theme", IsPublic: true})
	require.NoError(t, err)
	_, err = s.CreateConfig(ctx, models.SiteConfig{Key: "smtp_host", Value: "mail", Type: models.ConfigText, Category: "general"})
	require.NoError(t, err)

	_, err = s.CreateConfig(ctx, models.SiteConfig{Key: "site_title", Value: "x", Type: models.ConfigText, Category: "general"})
	assert.ErrorIs(t, err, storage.ErrConfigExists)

	public, err := s.GetPublicConfigs(ctx)
	require.NoError(t, err)
	assert.Len(t, public, 2)

	general, err := s.GetConfigsByCategory(ctx, "general")
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, "site_title", general[0].Key)

	all, err := s.GetConfigs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, s.DeleteConfig(ctx, "smtp_host"))
	assert.ErrorIs(t, s.DeleteConfig(ctx, "smtp_host"), storage.ErrConfigNotFound)
}

func TestUpdateConfigsIsAllOrNothing(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	_, err := s.CreateConfig(ctx, models.SiteConfig{Key: "a", Value: "1", Type: models.ConfigNumber, Category: "general"})
	require.NoError(t, err)
	_, err = s.CreateConfig(ctx, models.SiteConfig{Key: "b", Value: "2", Type: models.ConfigNumber, Category: "general"})
	require.NoError(t, err)

	_, err = s.UpdateConfigs(ctx, map[string]string{"a": "10", "missing": "x"}, nil)
	assert.ErrorIs(t, err, storage.ErrConfigNotFound)

	a, err := s.GetConfig(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", a.Value)

	rejected := fmt.Errorf("rejected")
	_, err = s.UpdateConfigs(ctx, map[string]string{"a": "10", "b": "oops"}, func(_ models.SiteConfig, value string) error {
		if value == "oops" {
			return rejected
		}
		return nil
	})
	assert.ErrorIs(t, err, rejected)

	a, err = s.GetConfig(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", a.Value)

	updated, err := s.UpdateConfigs(ctx, map[string]string{"a": "10", "b": "20"}, nil)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, "a", updated[0].Key)
	assert.Equal(t, "10", updated[0].Value)
}

func TestUploads(t *testing.T) {
	t.Parallel()

	s := newStorage(t)
	ctx := context.Background()

	u, err := s.CreateUpload(ctx, models.Upload{
		ID:           "7f1c2a3b-4d5e-4f60-8a9b-0c1d2e3f4a5b",
		Filename:     "7f1c2a3b-4d5e-4f60-8a9b-0c1d2e3f4a5b.png",
		OriginalName: "banner.png",
		Mimetype:     "image/png",
		Size:         1024,
		Path:         "/tmp/x.png",
		URL:          "/uploads/files/7f1c2a3b-4d5e-4f60-8a9b-0c1d2e3f4a5b.png",
		Category:     "events",
	})
	require.NoError(t, err)

	events, err := s.GetUploads(ctx, "events")
	require.NoError(t, err)
	assert.Len(t, events, 1)

	other, err := s.GetUploads(ctx, "config")
	require.NoError(t, err)
	assert.Empty(t, other)

	used, err := s.SetUploadUsed(ctx, u.ID, true)
	require.NoError(t, err)
	assert.True(t, used.IsUsed)

	deleted, err := s.DeleteUpload(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.png", deleted.Path)

	_, err = s.DeleteUpload(ctx, u.ID)
	assert.ErrorIs(t, err, storage.ErrUploadNotFound)

	_, err = s.SetUploadUsed(ctx, u.ID, false)
	assert.ErrorIs(t, err, storage.ErrUploadNotFound)
}
