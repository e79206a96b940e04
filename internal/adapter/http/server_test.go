package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/courseflow/courseflow-backend/internal/domain"
	"github.com/courseflow/courseflow-backend/internal/usecase/client"
	"github.com/courseflow/courseflow-backend/internal/usecase/finance"
	"github.com/courseflow/courseflow-backend/internal/usecase/ledgerbook"
	"github.com/courseflow/courseflow-backend/internal/usecase/planner"
	"github.com/courseflow/courseflow-backend/internal/usecase/reservation"
)

const testToken = "test-token"

// MockLedgerEntryRepository is a mock implementation of domain.LedgerEntryRepository
type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.LedgerEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Set(ctx context.Context, goal *domain.MonthlyGoal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetBySide(ctx context.Context, side domain.Side) (*domain.MonthlyGoal, error) {
	args := m.Called(ctx, side)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyGoal), args.Error(1)
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, sideFilter domain.Side) ([]*domain.Category, error) {
	args := m.Called(ctx, sideFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// MockClientRepository is a mock implementation of domain.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReservationRepository is a mock implementation of domain.ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testEnv struct {
	entryRepo       *MockLedgerEntryRepository
	goalRepo        *MockGoalRepository
	categoryRepo    *MockCategoryRepository
	clientRepo      *MockClientRepository
	reservationRepo *MockReservationRepository
	handler         http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		entryRepo:       new(MockLedgerEntryRepository),
		goalRepo:        new(MockGoalRepository),
		categoryRepo:    new(MockCategoryRepository),
		clientRepo:      new(MockClientRepository),
		reservationRepo: new(MockReservationRepository),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(
		logger,
		client.NewService(env.clientRepo),
		reservation.NewService(env.reservationRepo, env.clientRepo),
		ledgerbook.NewService(env.entryRepo, env.categoryRepo, env.goalRepo),
		finance.NewService(env.entryRepo, env.goalRepo, env.categoryRepo),
		planner.NewService(env.reservationRepo),
		testToken,
		0,
	)
	env.handler = server.Router()
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpointIsOpen(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "wrong token", header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			env.handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCreateClient(t *testing.T) {
	env := newTestEnv()
	env.clientRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/v1/clients", map[string]string{
		"name":  "Mme Dupont",
		"phone": "+33 6 12 34 56 78",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp clientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Mme Dupont", resp.Name)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	env.clientRepo.AssertExpectations(t)
}

func TestCreateClientRejectsMissingName(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/clients", map[string]string{
		"phone": "+33 6 12 34 56 78",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env.clientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetClientNotFound(t *testing.T) {
	env := newTestEnv()
	id := uuid.New()
	env.clientRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	rec := env.do(t, http.MethodGet, "/api/v1/clients/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookReservationAppliesDefaultDuration(t *testing.T) {
	env := newTestEnv()
	env.reservationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/v1/reservations", map[string]any{
		"client_name": "Walk-in",
		"start_at":    "2026-03-10T09:00:00Z",
		"price":       "35.00",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp reservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(planner.DefaultDurationMinutes), resp.DurationMinutes)
	assert.Equal(t, string(domain.ReservationStatusPending), resp.Status)
}

func TestChangeReservationStatus(t *testing.T) {
	env := newTestEnv()
	id := uuid.New()
	existing := &domain.Reservation{
		ID:              id,
		ClientName:      "Mme Dupont",
		StartAt:         time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Price:           decimal.RequireFromString("35.00"),
		Status:          domain.ReservationStatusPending,
	}
	env.reservationRepo.On("GetByID", mock.Anything, id).Return(existing, nil)
	env.reservationRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/v1/reservations/"+id.String()+"/status", map[string]string{
		"status": "CONFIRMED",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp reservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestChangeReservationStatusRejectsTerminal(t *testing.T) {
	env := newTestEnv()
	id := uuid.New()
	existing := &domain.Reservation{
		ID:              id,
		ClientName:      "Mme Dupont",
		StartAt:         time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Price:           decimal.RequireFromString("35.00"),
		Status:          domain.ReservationStatusCanceled,
	}
	env.reservationRepo.On("GetByID", mock.Anything, id).Return(existing, nil)

	rec := env.do(t, http.MethodPost, "/api/v1/reservations/"+id.String()+"/status", map[string]string{
		"status": "CONFIRMED",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	env.reservationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFinanceSummaryMonth(t *testing.T) {
	env := newTestEnv()

	categoryID := uuid.New()
	entries := []*domain.LedgerEntry{
		{
			ID:          uuid.New(),
			Side:        domain.SideRevenue,
			NetAmount:   decimal.RequireFromString("1000"),
			GrossAmount: decimal.RequireFromString("1200"),
			CategoryID:  categoryID,
			OccurredAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local),
		},
	}
	categories := []*domain.Category{
		{ID: categoryID, Name: "Courses", Side: domain.SideRevenue},
	}
	goal := &domain.MonthlyGoal{
		Side:        domain.SideRevenue,
		NetTarget:   decimal.RequireFromString("2000"),
		GrossTarget: decimal.RequireFromString("2400"),
	}

	env.entryRepo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).Return(entries, nil)
	env.goalRepo.On("GetBySide", mock.Anything, domain.SideRevenue).Return(goal, nil)
	env.categoryRepo.On("List", mock.Anything, domain.SideRevenue).Return(categories, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/finance/summary?side=REVENUE&period=MONTH&ref=2026-03-10", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "REVENUE", resp.Side)
	assert.True(t, resp.Net.Equal(decimal.RequireFromString("1000")))
	assert.True(t, resp.Gross.Equal(decimal.RequireFromString("1200")))
	assert.True(t, resp.GoalNet.Equal(decimal.RequireFromString("2000")))
	assert.True(t, resp.RemainingNet.Equal(decimal.RequireFromString("1000")))
	assert.True(t, resp.ProgressNet.Equal(decimal.RequireFromString("0.5")))
	require.Len(t, resp.Breakdown, 1)
	assert.Equal(t, "Courses", resp.Breakdown[0].CategoryName)
}

func TestFinanceSummaryCustomWithoutRange(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/v1/finance/summary?side=REVENUE&period=CUSTOM", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceSummaryRejectsUnknownPeriod(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet, "/api/v1/finance/summary?side=REVENUE&period=FORTNIGHT", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlanningWeekHasSevenDays(t *testing.T) {
	env := newTestEnv()
	env.reservationRepo.On("ListBetween", mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Reservation{}, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/planning/week?ref=2026-03-11", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp weekViewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-03-09", resp.WeekStart)
	assert.Equal(t, "2026-03-15", resp.WeekEnd)
	assert.Len(t, resp.Days, 7)
}

func TestVATConvertFromNet(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/vat/convert", map[string]any{
		"amount":    "100",
		"rate":      "20",
		"direction": "NET_TO_GROSS",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp vatConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Gross.Equal(decimal.RequireFromString("120")))
	assert.True(t, resp.VAT.Equal(decimal.RequireFromString("20")))
}

func TestVATConvertChainedSteps(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/api/v1/vat/convert", map[string]any{
		"amount": "100",
		"steps": []map[string]string{
			{"kind": "ADD", "value": "50"},
			{"kind": "ADD_VAT", "value": "20"},
			{"kind": "SUBTRACT", "value": "30"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp vatCalculatorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Equal(decimal.RequireFromString("150")))
	require.Len(t, resp.Steps, 3)
	assert.Equal(t, "ADD_VAT", resp.Steps[1].Kind)
	assert.True(t, resp.Steps[1].Result.Equal(decimal.RequireFromString("180")))
}
