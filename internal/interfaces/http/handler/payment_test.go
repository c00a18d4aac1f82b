package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reportapp "github.com/backoffice/backend/internal/application/report"
	"github.com/backoffice/backend/internal/domain/ledger"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/shared/valueobject"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPaymentReportRepo serves a fixed settlement list
type stubPaymentReportRepo struct {
	records []report.SettlementRecord
}

func (s *stubPaymentReportRepo) FindSettlementsInRange(_ context.Context, _ shared.DateRange) ([]report.SettlementRecord, error) {
	return s.records, nil
}

func newPaymentDashboardRouter(repo report.PaymentReportRepository) *gin.Engine {
	h := NewPaymentHandler(nil, reportapp.NewPaymentDashboardService(repo))
	router := gin.New()
	router.GET("/api/payments/dashboard", h.Dashboard)
	return router
}

func TestPaymentDashboard_RollsUpCustomers(t *testing.T) {
	customerID := uuid.New()
	sell := ledger.TransactionSell
	repo := &stubPaymentReportRepo{records: []report.SettlementRecord{
		{
			PaymentID:       uuid.New(),
			PaymentDate:     time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
			Direction:       ledger.PaymentInflow,
			Amount:          valueobject.MustMoneyFromString("150"),
			TransactionType: &sell,
			CustomerID:      &customerID,
			CustomerName:    "Acme",
		},
	}}
	router := newPaymentDashboardRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/payments/dashboard?startDate=2026-01-01&endDate=2026-01-31", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data report.PaymentDashboard `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	d := envelope.Data
	assert.True(t, d.TotalReceivable.Equals(valueobject.MustMoneyFromString("150")))
	require.Len(t, d.Customers, 1)
	assert.Equal(t, "Acme", d.Customers[0].CustomerName)
	assert.NotEmpty(t, d.Series)
}

func TestPaymentDashboard_InvalidIntervalIs422(t *testing.T) {
	router := newPaymentDashboardRouter(&stubPaymentReportRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/payments/dashboard?startDate=2026-01-01&endDate=2026-01-31&interval=hourly", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPaymentDashboard_MissingWindowIs400(t *testing.T) {
	router := newPaymentDashboardRouter(&stubPaymentReportRepo{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/payments/dashboard", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
