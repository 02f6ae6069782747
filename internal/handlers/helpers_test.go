package handlers_test

import (
	"Catalog/internal/config"
	"Catalog/internal/handlers"
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"Catalog/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testAPIKey = "test-key"

// Local light mocks
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) ListByPrice(ctx context.Context, priceMin, priceMax *int64) ([]model.Item, error) {
	args := m.Called(ctx, priceMin, priceMax)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Create(ctx context.Context, it *model.Item) error {
	return m.Called(ctx, it).Error(0)
}
func (m *hMockItemRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Item, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *hMockItemRepo) CreateWithPriceUpdate(ctx context.Context, it *model.Item, targetID, price int64) error {
	return m.Called(ctx, it, targetID, price).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

func newRouter(t *testing.T, r repo.ItemRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{APIKey: testAPIKey}
	logger := zap.NewNop().Sugar()
	itemSvc := service.NewItemService(r, logger)
	h := handlers.NewHandler(itemSvc, logger, cfg, prometheus.NewRegistry())
	return h.Router
}

func newMockRouter(t *testing.T) (http.Handler, *hMockItemRepo) {
	t.Helper()
	ir := &hMockItemRepo{}
	return newRouter(t, ir), ir
}

// do выполняет запрос с ключом и возвращает recorder
func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", testAPIKey)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, rr.Body.String())
	}
	return m
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var l []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &l); err != nil {
		t.Fatalf("response is not a JSON array: %v (%s)", err, rr.Body.String())
	}
	return l
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
