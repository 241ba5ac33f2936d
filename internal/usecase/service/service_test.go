package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/service"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
	"github.com/nowshad-islam-dev/skipq-api/internal/logger"
	"github.com/nowshad-islam-dev/skipq-api/internal/mocks"
	"github.com/nowshad-islam-dev/skipq-api/internal/models"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

type fixture struct {
	users    *mocks.UserRepository
	repo     *mocks.ServiceRepository
	uploader *mocks.Uploader
	sink     *mocks.AuditSink
}

func newFixture() *fixture {
	users := mocks.NewUserRepository(models.User{ID: 1, Email: "owner@example.com", Phone: "1", Username: "owner"})
	return &fixture{
		users:    users,
		repo:     mocks.NewServiceRepository(users),
		uploader: &mocks.Uploader{},
		sink:     &mocks.AuditSink{},
	}
}

func (f *fixture) create() *CreateService {
	return NewCreateService(f.repo, f.uploader, validators.New(), f.sink, logger.Discard(), 4)
}

func validFields() validators.NewService {
	return validators.NewService{
		ServiceName:        "Haircut",
		ServiceDescription: "Classic gentleman's cut",
		AverageWaitingTime: "20m",
		ServiceLocation:    "Dhaka",
		UserID:             "1",
	}
}

func TestCreateService_WithPhotos(t *testing.T) {
	f := newFixture()

	view, err := f.create().Execute(context.Background(), CreateServiceInput{
		Fields: validFields(),
		Photos: [][]byte{[]byte("p1"), []byte("p2")},
	})
	require.NoError(t, err)

	assert.NotZero(t, view.ID)
	assert.Equal(t, uint(1), view.UserID)
	assert.Equal(t, []string{
		"https://cdn.example/services_pictures/p1",
		"https://cdn.example/services_pictures/p2",
	}, view.Photos)

	for _, up := range f.uploader.Uploads() {
		assert.Equal(t, media.FolderServicesPictures, up.Folder)
	}
	assert.Equal(t, []string{audit.ActionServiceCreated}, f.sink.Actions())
}

func TestCreateService_NoPhotos(t *testing.T) {
	f := newFixture()

	view, err := f.create().Execute(context.Background(), CreateServiceInput{Fields: validFields()})
	require.NoError(t, err)
	assert.Empty(t, view.Photos)
	assert.Empty(t, f.uploader.Uploads())
}

func TestCreateService_OneFailedUploadPersistsNothing(t *testing.T) {
	f := newFixture()
	f.uploader.FailOn = map[string]bool{"p3": true}

	_, err := f.create().Execute(context.Background(), CreateServiceInput{
		Fields: validFields(),
		Photos: [][]byte{[]byte("p1"), []byte("p2"), []byte("p3")},
	})
	assert.True(t, httperr.IsBusiness(err, domain.CodeUploadFailed))
	assert.Zero(t, f.repo.Len())
	assert.Empty(t, f.sink.Actions())
}

func TestCreateService_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *CreateServiceInput)
		code   string
	}{
		{
			name:   "non numeric owner",
			mutate: func(in *CreateServiceInput) { in.Fields.UserID = "abc" },
			code:   domain.CodeInvalidUserID,
		},
		{
			name:   "zero owner",
			mutate: func(in *CreateServiceInput) { in.Fields.UserID = "0" },
			code:   domain.CodeInvalidUserID,
		},
		{
			name:   "unknown owner",
			mutate: func(in *CreateServiceInput) { in.Fields.UserID = "42" },
			code:   domain.CodeOwnerNotFound,
		},
		{
			name: "too many photos",
			mutate: func(in *CreateServiceInput) {
				in.Photos = [][]byte{[]byte("1"), []byte("2"), []byte("3"), []byte("4"), []byte("5")}
			},
			code: domain.CodeTooManyPhotos,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			in := CreateServiceInput{Fields: validFields(), Photos: [][]byte{[]byte("p1")}}
			tt.mutate(&in)

			_, err := f.create().Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
			assert.Empty(t, f.uploader.Uploads())
			assert.Zero(t, f.repo.Len())
		})
	}
}

func TestCreateService_ValidationFailure(t *testing.T) {
	f := newFixture()
	in := validFields()
	in.ServiceName = "  "
	in.ServiceDescription = "short"

	_, err := f.create().Execute(context.Background(), CreateServiceInput{Fields: in})
	ve, ok := validators.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "serviceName")
	assert.Contains(t, ve.Fields, "serviceDescription")
	assert.Zero(t, f.repo.Calls())
}

func TestCreateService_OwnerVanishesBeforeInsert(t *testing.T) {
	f := newFixture()
	repo := &staleOwnerRepo{ServiceRepository: f.repo}
	in := validFields()
	in.UserID = "42"

	uc := NewCreateService(repo, f.uploader, validators.New(), f.sink, logger.Discard(), 0)
	_, err := uc.Execute(context.Background(), CreateServiceInput{Fields: in})
	assert.True(t, httperr.IsBusiness(err, domain.CodeOwnerNotFound), "got %v", err)
	assert.Zero(t, f.repo.Len())
}

// staleOwnerRepo reports every owner as present, so only the insert's
// foreign key catches a missing one.
type staleOwnerRepo struct {
	*mocks.ServiceRepository
}

func (r *staleOwnerRepo) OwnerExists(context.Context, uint) (bool, error) {
	return true, nil
}

func TestListAndGetServices(t *testing.T) {
	f := newFixture()
	f.repo = mocks.NewServiceRepository(f.users,
		models.Service{ID: 1, ServiceName: "Haircut", ServiceDescription: "Classic haircut", ServiceLocation: "D", UserID: 1},
		models.Service{ID: 2, ServiceName: "X", ServiceDescription: "Too short name", ServiceLocation: "D", UserID: 1},
	)

	list, err := NewListServices(f.repo).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Haircut", list[0].ServiceName)

	get := NewGetService(f.repo)
	view, err := get.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), view.ID)

	_, err = get.Execute(context.Background(), 99)
	assert.True(t, httperr.IsBusiness(err, domain.CodeNotFound))
}

func TestListServices_StoreError(t *testing.T) {
	f := newFixture()
	f.repo.Err = errors.New("boom")

	_, err := NewListServices(f.repo).Execute(context.Background())
	assert.Error(t, err)
}
