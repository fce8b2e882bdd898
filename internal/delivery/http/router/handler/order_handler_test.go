package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"retrokick/internal/delivery/http/validator"
	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	mockusecase "retrokick/internal/mocks/usecase"
	"retrokick/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func placedOrder() *entity.Order {
	return &entity.Order{
		OrderID: "RK-0F47AC10B58CC4372A5670E02B2C3D479",
		Items: []entity.OrderItem{
			{ProductID: "1", ProductName: "Barcelona Home 2025-26", UnitPrice: 6999, Size: "M", Quantity: 1},
		},
		Shipping: entity.ShippingInfo{
			FirstName: "Sunil", LastName: "Chhetri", Email: "sunil@example.com",
			Phone: "9876543210", Address: "11 Marina Arena", City: "Bengaluru",
			State: "Karnataka", Pincode: "560001",
		},
		PaymentRef:    "pay_123",
		Subtotal:      6999,
		Tax:           1259.82,
		GrandTotal:    8258.82,
		Status:        entity.StatusConfirmed,
		CustomerEmail: "sunil@example.com",
		CreatedAt:     time.Now(),
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.Default())

	uc.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(input usecase.PlaceOrderInput) bool {
			return len(input.Items) == 1 && input.PaymentRef == "pay_123"
		})).
		Return(placedOrder(), nil).
		Once()

	body := `{
		"items": [{"productId":"1","name":"Barcelona Home 2025-26","unitPrice":6999,"size":"M","quantity":1}],
		"shipping": {"firstName":"Sunil","lastName":"Chhetri","email":"sunil@example.com","phone":"9876543210","address":"11 Marina Arena","city":"Bengaluru","state":"Karnataka","pincode":"560001"},
		"paymentRef": "pay_123"
	}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderId":"RK-0F47AC10B58CC4372A5670E02B2C3D479"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestOrderHandler_PlaceOrderRejectsBadShipping(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.Default())

	// Phone carries letters, so validation fails before the usecase runs.
	body := `{
		"items": [{"productId":"1","size":"M","quantity":1}],
		"shipping": {"firstName":"Sunil","lastName":"Chhetri","email":"sunil@example.com","phone":"not-a-phone","address":"11 Marina Arena","city":"Bengaluru","state":"Karnataka","pincode":"560001"}
	}`

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.PlaceOrder(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestOrderHandler_GetOrderNotFound(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.Default())

	uc.EXPECT().
		GetOrder(mock.Anything, "RK-MISSING").
		Return(nil, domainerrors.ErrOrderNotFound).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/RK-MISSING", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderId")
	c.SetParamValues("RK-MISSING")

	err := handler.GetOrder(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestOrderHandler_Stats(t *testing.T) {
	uc := mockusecase.NewMockOrderUsecase(t)
	handler := NewOrderHandler(uc, slog.Default())

	uc.EXPECT().
		Stats(mock.Anything).
		Return(&usecase.OrderStatsOutput{
			TotalOrders:     3,
			TotalRevenue:    12345.67,
			PendingOrders:   1,
			CompletedOrders: 2,
			RecentOrders:    []*entity.Order{placedOrder()},
		}, nil).
		Once()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Stats(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalOrders":3`)
	assert.Contains(t, rec.Body.String(), `"totalRevenue":12345.67`)
}
