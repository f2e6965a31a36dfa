package booking

import (
	"testing"

	"homehero/database/repository/service"
	"homehero/models"
	"homehero/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	byID      map[string]*models.Booking
	byUser    []models.Booking
	created   *models.Booking
	deletedID string
}

func (r *fakeBookingRepo) GetByUser(email string) ([]models.Booking, error) {
	return r.byUser, nil
}

func (r *fakeBookingRepo) GetByServiceIDs(ids []string) ([]models.Booking, error) {
	panic("not implemented")
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.byID[id], nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.created = b
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	r.deletedID = id
	return nil
}

type fakeServiceRepo struct {
	byID  map[string]*models.Service
	idErr error
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if r.idErr != nil {
		return nil, r.idErr
	}
	return r.byID[id], nil
}

func (r *fakeServiceRepo) Search(filter serviceRepo.SearchFilter) ([]models.Service, error) {
	panic("not implemented")
}
func (r *fakeServiceRepo) GetByProvider(email string) ([]models.Service, error) {
	panic("not implemented")
}
func (r *fakeServiceRepo) GetReviewed() ([]models.Service, error) { panic("not implemented") }
func (r *fakeServiceRepo) Create(svc *models.Service) error       { panic("not implemented") }
func (r *fakeServiceRepo) Update(id string, fields bson.M) error  { panic("not implemented") }
func (r *fakeServiceRepo) Delete(id string) error                 { panic("not implemented") }
func (r *fakeServiceRepo) AddReview(id string, review models.Review) (bool, error) {
	panic("not implemented")
}

func TestCreateRejectsSelfBooking(t *testing.T) {
	svc := &DefaultBookingService{
		Repo: &fakeBookingRepo{},
		Services: &fakeServiceRepo{byID: map[string]*models.Service{
			"svc-1": {ID: "svc-1", ProviderEmail: "provider@x.com"},
		}},
	}

	_, err := svc.Create("provider@x.com", CreateInput{ServiceID: "svc-1"})
	var forbidden services.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Forbidden: You cannot book your own service", err.Error())
}

func TestCreateMissingService(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:     &fakeBookingRepo{},
		Services: &fakeServiceRepo{byID: map[string]*models.Service{}},
	}

	_, err := svc.Create("customer@x.com", CreateInput{ServiceID: "missing"})
	var notFound services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Service", notFound.Resource)
}

func TestCreateSetsIdentityFields(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{
		Repo: repo,
		Services: &fakeServiceRepo{byID: map[string]*models.Service{
			"svc-1": {ID: "svc-1", ProviderEmail: "provider@x.com"},
		}},
	}

	b, err := svc.Create("customer@x.com", CreateInput{
		ServiceID:   "svc-1",
		BookingDate: "2026-09-15",
		Price:       120,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "customer@x.com", b.UserEmail)
	assert.Equal(t, "svc-1", b.ServiceID)
	assert.Equal(t, "2026-09-15", b.BookingDate)
	assert.Equal(t, float64(120), b.Price)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestCancelOwnership(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[string]*models.Booking{
		"b1": {ID: "b1", UserEmail: "customer@x.com"},
	}}
	svc := &DefaultBookingService{Repo: repo, Services: &fakeServiceRepo{}}

	err := svc.Cancel("b1", "someone-else@x.com")
	var forbidden services.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Empty(t, repo.deletedID)

	require.NoError(t, svc.Cancel("b1", "customer@x.com"))
	assert.Equal(t, "b1", repo.deletedID)
}

func TestCancelMissingBooking(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:     &fakeBookingRepo{byID: map[string]*models.Booking{}},
		Services: &fakeServiceRepo{},
	}

	err := svc.Cancel("missing", "customer@x.com")
	var notFound services.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListForUserPopulatesServices(t *testing.T) {
	svc := &DefaultBookingService{
		Repo: &fakeBookingRepo{byUser: []models.Booking{
			{ID: "b1", UserEmail: "customer@x.com", ServiceID: "svc-1"},
			{ID: "b2", UserEmail: "customer@x.com", ServiceID: "gone"},
		}},
		Services: &fakeServiceRepo{byID: map[string]*models.Service{
			"svc-1": {ID: "svc-1", ServiceName: "Plumbing"},
		}},
	}

	result, err := svc.ListForUser("customer@x.com")
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.NotNil(t, result[0].Service)
	assert.Equal(t, "Plumbing", result[0].Service.ServiceName)
	// A booking whose listing was deleted survives with a nil service.
	assert.Nil(t, result[1].Service)
}

func TestListForUserKeepsBookingOnLookupError(t *testing.T) {
	svc := &DefaultBookingService{
		Repo: &fakeBookingRepo{byUser: []models.Booking{
			{ID: "b1", UserEmail: "customer@x.com", ServiceID: "svc-1"},
		}},
		Services: &fakeServiceRepo{idErr: assert.AnError},
	}

	result, err := svc.ListForUser("customer@x.com")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Service)
}
