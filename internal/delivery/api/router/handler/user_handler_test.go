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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_Register(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.POST("/auth/register", h.Register)

	userUC.EXPECT().
		RegisterUser(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
			return in.Email == "aziza@example.uz" && in.Role == entity.RoleCourier
		})).
		Return(&entity.User{ID: uuid.New(), Email: "aziza@example.uz", PasswordHash: "$2a$10$secret", Role: entity.RoleCourier}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register",
		`{"email":" aziza@example.uz ","phone":"+998901112233","password":"parol123","role":"courier","full_name":"Aziza Karimova"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestUserHandler_Register_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "admin is not self assignable", body: `{"email":"a@b.uz","phone":"901112233","password":"parol123","role":"admin","full_name":"Ali Valiyev"}`},
		{name: "short password", body: `{"email":"a@b.uz","phone":"901112233","password":"123","role":"customer","full_name":"Ali Valiyev"}`},
		{name: "bad email", body: `{"email":"not-an-email","phone":"901112233","password":"parol123","role":"customer","full_name":"Ali Valiyev"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUC.NewMockUserUsecase(t)
			h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
			e := newTestEcho()
			e.POST("/auth/register", h.Register)

			rec := doRequest(e, http.MethodPost, "/auth/register", tt.body)

			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestUserHandler_Me(t *testing.T) {
	userID := uuid.New()
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/me", h.Me, asCaller(userID, entity.RoleCustomer))

	userUC.EXPECT().GetUser(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

	rec := doRequest(e, http.MethodGet, "/me", "")

	requireErrorCode(t, rec, http.StatusNotFound, "USER_NOT_FOUND")
}

func newShopTestEcho(t *testing.T, ownerID uuid.UUID) (*echo.Echo, *mockUC.MockShopUsecase) {
	t.Helper()

	shopUC := mockUC.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{ShopUC: shopUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/shops", h.GetShops)
	e.GET("/shops/:id", h.GetShop)
	e.POST("/shops", h.CreateShop, asCaller(ownerID, entity.RoleShop))

	return e, shopUC
}

func TestShopHandler(t *testing.T) {
	ownerID := uuid.New()
	e, shopUC := newShopTestEcho(t, ownerID)

	shop := &entity.Shop{ID: uuid.New(), UserID: ownerID, Name: "Oqtepa Lavash", IsActive: true}
	shopUC.EXPECT().
		CreateShop(mock.Anything, ownerID, mock.MatchedBy(func(in *usecase.CreateShopInput) bool {
			return in.Name == "Oqtepa Lavash" && in.Address == "Amir Temur 15"
		})).
		Return(shop, nil)
	shopUC.EXPECT().GetShops(mock.Anything).Return([]*entity.Shop{shop}, nil)
	shopUC.EXPECT().GetShop(mock.Anything, shop.ID).Return(shop, nil)

	rec := doRequest(e, http.MethodPost, "/shops", `{"name":"Oqtepa Lavash","address":"Amir Temur 15","phone":"+998901234567"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/shops", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/shops/"+shop.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oqtepa Lavash")
}

func TestShopHandler_CreateShop_LandlineRejected(t *testing.T) {
	e, _ := newShopTestEcho(t, uuid.New())

	rec := doRequest(e, http.MethodPost, "/shops", `{"name":"Oqtepa Lavash","address":"Amir Temur 15","phone":"+998712001020"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestShopHandler_GetShop_NotFound(t *testing.T) {
	e, shopUC := newShopTestEcho(t, uuid.New())
	shopUC.EXPECT().GetShop(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrShopNotFound)

	rec := doRequest(e, http.MethodGet, "/shops/"+uuid.NewString(), "")

	requireErrorCode(t, rec, http.StatusNotFound, "SHOP_NOT_FOUND")
}
