package siteconfig

import (
	"context"
	"testing"

	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
	"churchEvents/internal/services/siteconfig/mocks"
	"churchEvents/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	want := models.SiteConfig{
		Key:      "theme.primary_color",
		Value:    "#224488",
		Type:     models.ConfigColor,
		Category: "general",
		IsPublic: true,
	}
	store.On("CreateConfig", mock.Anything, want).Return(&want, nil)

	got, err := svc.Create(context.Background(), CreateInput{
		Key:      " theme.primary_color ",
		Value:    "#224488",
		Type:     "COLOR",
		IsPublic: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "general", got.Category)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		in    CreateInput
		field string
	}{
		{name: "Bad key", in: CreateInput{Key: "Site Title", Value: "x", Type: "TEXT"}, field: "key"},
		{name: "Unknown type", in: CreateInput{Key: "site_title", Value: "x", Type: "STRING"}, field: "type"},
		{name: "Value does not match type", in: CreateInput{Key: "max_per_event", Value: "dez", Type: "NUMBER"}, field: "value"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := New(slogdiscard.NewDiscardLogger(), mocks.NewStorage(t))

			_, err := svc.Create(context.Background(), tc.in)

			var vErr *validate.Error
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, tc.field, vErr.Fields[0].Field)
		})
	}
}

func TestUpdateChecksStoredType(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	values := map[string]string{"show_banner": "sim"}

	store.On("UpdateConfigs", mock.Anything, values, mock.Anything).
		Return(func(_ context.Context, _ map[string]string, check storage.ConfigCheck) ([]models.SiteConfig, error) {
			if err := check(models.SiteConfig{Key: "show_banner", Type: models.ConfigBoolean}, "sim"); err != nil {
				return nil, err
			}
			return []models.SiteConfig{}, nil
		})

	_, err := svc.Update(context.Background(), values)

	var vErr *validate.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "show_banner", vErr.Fields[0].Field)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	values := map[string]string{"site_title": "Igreja Batista Central"}
	store.On("UpdateConfigs", mock.Anything, values, mock.Anything).
		Return([]models.SiteConfig{{Key: "site_title", Value: "Igreja Batista Central"}}, nil)

	updated, err := svc.Update(context.Background(), values)
	require.NoError(t, err)
	assert.Len(t, updated, 1)
}

func TestUpdateEmpty(t *testing.T) {
	t.Parallel()

	svc := New(slogdiscard.NewDiscardLogger(), mocks.NewStorage(t))

	_, err := svc.Update(context.Background(), map[string]string{})

	var vErr *validate.Error
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateUnknownKey(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	store.On("UpdateConfigs", mock.Anything, mock.Anything, mock.Anything).Return(nil, storage.ErrConfigNotFound)

	_, err := svc.Update(context.Background(), map[string]string{"nope": "x"})
	assert.ErrorIs(t, err, storage.ErrConfigNotFound)
}
