package impl

import (
	"context"
	"testing"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	mockRepo "zakaz/internal/mocks/repository"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCourierService(t *testing.T) (usecase.CourierUsecase, *mockRepo.MockUserRepository, *mockRepo.MockCourierLocationRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	locationRepo := mockRepo.NewMockCourierLocationRepository(t)

	return NewCourierService(CourierServiceParams{
		UserRepo:     userRepo,
		LocationRepo: locationRepo,
		Logger:       newDiscardLogger(),
	}), userRepo, locationRepo
}

func TestCourierService_UpdateLocation(t *testing.T) {
	srv, userRepo, locationRepo := createTestCourierService(t)
	courier := newTestUser(entity.RoleCourier)
	accuracy := 12.5

	userRepo.EXPECT().FindByID(mock.Anything, courier.ID).Return(courier, nil)
	locationRepo.EXPECT().
		Upsert(mock.Anything, mock.MatchedBy(func(l *entity.CourierLocation) bool {
			return l.CourierID == courier.ID && l.Latitude == 41.3111 && l.IsOnline
		})).
		Return(nil)

	location, err := srv.UpdateLocation(context.Background(), courier.ID, &usecase.UpdateLocationInput{
		Latitude:  41.3111,
		Longitude: 69.2797,
		Accuracy:  &accuracy,
		IsOnline:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 69.2797, location.Longitude)
}

func TestCourierService_UpdateLocation_Rejections(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		srv, _, _ := createTestCourierService(t)

		_, err := srv.UpdateLocation(context.Background(), uuid.New(), &usecase.UpdateLocationInput{Latitude: 91, Longitude: 0})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not a courier", func(t *testing.T) {
		srv, userRepo, _ := createTestCourierService(t)
		customer := newTestUser(entity.RoleCustomer)
		userRepo.EXPECT().FindByID(mock.Anything, customer.ID).Return(customer, nil)

		_, err := srv.UpdateLocation(context.Background(), customer.ID, &usecase.UpdateLocationInput{Latitude: 41, Longitude: 69})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestCourierService_GetLocation_NotFound(t *testing.T) {
	srv, _, locationRepo := createTestCourierService(t)
	courierID := uuid.New()

	locationRepo.EXPECT().FindByCourierID(mock.Anything, courierID).Return(nil, repository.ErrCourierLocationNotFound)

	_, err := srv.GetLocation(context.Background(), courierID)
	assert.ErrorIs(t, err, domainerrors.ErrCourierLocationNotFound)
}
