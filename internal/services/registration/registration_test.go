package registration

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"churchEvents/internal/lib/logger/handlers/slogdiscard"
	"churchEvents/internal/lib/validate"
	"churchEvents/internal/models"
	"churchEvents/internal/services/registration/mocks"
	"churchEvents/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	eventID = "9d6c1b6e-2f1a-4c3d-8e7f-0a1b2c3d4e5f"
	regID   = "1e2d3c4b-5a69-4788-9a0b-c1d2e3f4a5b6"
)

func validInput() CreateInput {
	return CreateInput{
		EventID: eventID,
		Name:    "  João Pereira ",
		Email:   "Joao@Example.com",
		Phone:   "(31) 99876-5432",
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	store.On("CreateRegistration", mock.Anything, models.Registration{
		EventID: eventID,
		Name:    "João Pereira",
		Email:   "joao@example.com",
		Phone:   "(31) 99876-5432",
	}).Return(&models.Registration{ID: regID, EventID: eventID, Status: models.StatusPending}, nil)

	reg, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, reg.Status)
}

func TestCreateWaitlisted(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	store.On("CreateRegistration", mock.Anything, mock.AnythingOfType("models.Registration")).
		Return(&models.Registration{ID: regID, EventID: eventID, Status: models.StatusWaitlist}, nil)

	reg, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, models.StatusWaitlist, reg.Status)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	_, err := svc.Create(context.Background(), CreateInput{
		EventID: "123",
		Email:   "nope",
		Phone:   "31 9876",
	})

	var vErr *validate.Error
	require.ErrorAs(t, err, &vErr)

	fields := map[string]bool{}
	for _, f := range vErr.Fields {
		fields[f.Field] = true
	}
	assert.Equal(t, map[string]bool{"eventId": true, "name": true, "email": true, "phone": true}, fields)

	store.AssertNotCalled(t, "CreateRegistration", mock.Anything, mock.Anything)
}

func TestCreateEventNotFound(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	store.On("CreateRegistration", mock.Anything, mock.Anything).
		Return(nil, storage.ErrEventNotFound)

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		id        string
		status    models.Status
		mockSetup func(m *mocks.Storage)
		wantErr   error
		wantField string
	}{
		{
			name:   "Success",
			id:     regID,
			status: models.StatusConfirmed,
			mockSetup: func(m *mocks.Storage) {
				m.On("UpdateRegistrationStatus", mock.Anything, regID, models.StatusConfirmed).
					Return(&models.Registration{ID: regID, Status: models.StatusConfirmed}, nil)
			},
		},
		{
			name:   "Capacity exceeded",
			id:     regID,
			status: models.StatusConfirmed,
			mockSetup: func(m *mocks.Storage) {
				m.On("UpdateRegistrationStatus", mock.Anything, regID, models.StatusConfirmed).
					Return(nil, storage.ErrCapacityExceeded)
			},
			wantErr: storage.ErrCapacityExceeded,
		},
		{
			name:   "Not found",
			id:     regID,
			status: models.StatusCancelled,
			mockSetup: func(m *mocks.Storage) {
				m.On("UpdateRegistrationStatus", mock.Anything, regID, models.StatusCancelled).
					Return(nil, storage.ErrRegistrationNotFound)
			},
			wantErr: storage.ErrRegistrationNotFound,
		},
		{
			name:      "Unknown status",
			id:        regID,
			status:    "DONE",
			mockSetup: func(m *mocks.Storage) {},
			wantField: "status",
		},
		{
			name:      "Malformed id",
			id:        "42",
			status:    models.StatusConfirmed,
			mockSetup: func(m *mocks.Storage) {},
			wantField: "id",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewStorage(t)
			tc.mockSetup(store)
			svc := New(slogdiscard.NewDiscardLogger(), store)

			reg, err := svc.UpdateStatus(context.Background(), tc.id, tc.status)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantField != "":
				var vErr *validate.Error
				require.ErrorAs(t, err, &vErr)
				require.Len(t, vErr.Fields, 1)
				assert.Equal(t, tc.wantField, vErr.Fields[0].Field)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.status, reg.Status)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	store.On("DeleteRegistration", mock.Anything, regID).Return(nil).Once()
	store.On("DeleteRegistration", mock.Anything, regID).Return(storage.ErrRegistrationNotFound).Once()

	require.NoError(t, svc.Delete(context.Background(), regID))
	assert.ErrorIs(t, svc.Delete(context.Background(), regID), storage.ErrRegistrationNotFound)
}

func TestExport(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	filter := models.RegistrationFilter{Status: models.StatusConfirmed}

	store.On("GetRegistrations", mock.Anything, filter).Return([]models.Registration{
		{ID: "r1", EventID: eventID, Name: "Ana", Email: "ana@example.com", Phone: "(11) 3456-7890", Status: models.StatusConfirmed, CreatedAt: created},
		{ID: "r2", EventID: eventID, Name: "Bruno, Jr.", Email: "b@example.com", Phone: "(11) 3456-7891", Status: models.StatusConfirmed, CreatedAt: created},
		{ID: "r3", EventID: "gone", Name: "Caio", Status: models.StatusConfirmed, CreatedAt: created},
	}, nil)
	store.On("GetEvent", mock.Anything, eventID).Return(&models.Event{ID: eventID, Title: "Retiro de Carnaval"}, nil).Once()
	store.On("GetEvent", mock.Anything, "gone").Return(nil, storage.ErrEventNotFound).Once()

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), filter, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "Retiro de Carnaval", records[1][2])
	assert.Equal(t, "Bruno, Jr.", records[2][3])
	assert.Equal(t, "", records[3][2])
	assert.Equal(t, "2025-03-01T12:00:00Z", records[1][10])
}

func TestExportStorageError(t *testing.T) {
	t.Parallel()

	store := mocks.NewStorage(t)
	svc := New(slogdiscard.NewDiscardLogger(), store)

	store.On("GetRegistrations", mock.Anything, models.RegistrationFilter{}).Return(nil, errors.New("db down"))

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), models.RegistrationFilter{}, &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
