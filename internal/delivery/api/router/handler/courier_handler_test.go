package handler

import (
	"net/http"
	"testing"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	mockUC "zakaz/internal/mocks/usecase"
	"zakaz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCourierTestEcho(t *testing.T, courierID uuid.UUID) (*echo.Echo, *mockUC.MockCourierUsecase) {
	t.Helper()

	courierUC := mockUC.NewMockCourierUsecase(t)
	h := NewCourierHandler(CourierHandlerParams{CourierUC: courierUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.PUT("/courier/location", h.UpdateLocation, asCaller(courierID, entity.RoleCourier))
	e.GET("/couriers/:id/location", h.GetLocation)

	return e, courierUC
}

func TestCourierHandler_UpdateLocation_DefaultsOnline(t *testing.T) {
	courierID := uuid.New()
	e, courierUC := newCourierTestEcho(t, courierID)

	courierUC.EXPECT().
		UpdateLocation(mock.Anything, courierID, mock.MatchedBy(func(in *usecase.UpdateLocationInput) bool {
			return in.Latitude == 41.3111 && in.Longitude == 69.2797 && in.IsOnline && in.Accuracy == nil
		})).
		Return(&entity.CourierLocation{CourierID: courierID, Latitude: 41.3111, Longitude: 69.2797, IsOnline: true}, nil)

	rec := doRequest(e, http.MethodPut, "/courier/location", `{"latitude":41.3111,"longitude":69.2797}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCourierHandler_UpdateLocation_ZeroCoordinatesAccepted(t *testing.T) {
	courierID := uuid.New()
	e, courierUC := newCourierTestEcho(t, courierID)

	courierUC.EXPECT().
		UpdateLocation(mock.Anything, courierID, mock.MatchedBy(func(in *usecase.UpdateLocationInput) bool {
			return in.Latitude == 0 && in.Longitude == 0 && !in.IsOnline
		})).
		Return(&entity.CourierLocation{CourierID: courierID}, nil)

	rec := doRequest(e, http.MethodPut, "/courier/location", `{"latitude":0,"longitude":0,"is_online":false}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestCourierHandler_UpdateLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing latitude", body: `{"longitude":69.2}`},
		{name: "latitude out of range", body: `{"latitude":91,"longitude":69.2}`},
		{name: "longitude out of range", body: `{"latitude":41.3,"longitude":-181}`},
		{name: "non-positive accuracy", body: `{"latitude":41.3,"longitude":69.2,"accuracy":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newCourierTestEcho(t, uuid.New())

			rec := doRequest(e, http.MethodPut, "/courier/location", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestCourierHandler_GetLocation(t *testing.T) {
	e, courierUC := newCourierTestEcho(t, uuid.New())
	courierID := uuid.New()

	courierUC.EXPECT().GetLocation(mock.Anything, courierID).Return(nil, domainerrors.ErrCourierLocationNotFound)

	rec := doRequest(e, http.MethodGet, "/couriers/"+courierID.String()+"/location", "")

	requireErrorCode(t, rec, http.StatusNotFound, "COURIER_LOCATION_NOT_FOUND")
}
