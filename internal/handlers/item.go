package handlers

import (
	"Catalog/internal/config"
	"Catalog/internal/service"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/naughtygopher/errors"
	"go.uber.org/zap"
)

const (
	msgNotFound        = "Item not found"
	msgFilterNotFound  = "Item not found with the given filters"
	msgNameTaken       = "Item with the same name already exists"
	msgTransactionFail = "Transaction failed"
	msgDeleted         = "Item deleted successfully"
	msgFilterRequired  = "At least one filter parameter (price_min or price_max) must be provided"
	msgEmptyName       = "Item name must not be empty"
	msgInvalidID       = "Invalid item id"
	msgInvalidBody     = "invalid request body"
	msgInternal        = "internal error"
)

// ItemHandler обрабатывает CRUD-операции над items.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// List GET /items — все записи.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.ListAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// Get GET /items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	it, err := h.ItemService.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Filter GET /items/filter?price_min=&price_max=
func (h *ItemHandler) Filter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f service.PriceFilter
	var err error
	if f.Min, err = optionalInt(q.Get("price_min")); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "price_min must be an integer")
		return
	}
	if f.Max, err = optionalInt(q.Get("price_max")); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "price_max must be an integer")
		return
	}

	items, err := h.ItemService.ListByPrice(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if len(items) == 0 {
		writeErrorMessage(w, http.StatusNotFound, msgFilterNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponses(items))
}

// Create POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemSchema
	if !h.bind(w, r, &req) {
		return
	}
	it, err := h.ItemService.Create(r.Context(), req.toNewItem())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(it))
}

// CreateV2 POST /items/create_v2 — создание и обновление цены другой записи в одной транзакции.
func (h *ItemHandler) CreateV2(w http.ResponseWriter, r *http.Request) {
	var req ItemTxSchema
	if !h.bind(w, r, &req) {
		return
	}
	it, err := h.ItemService.CreateAndUpdate(r.Context(), req.toNewItem(), req.UpdateID, req.price())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(it))
}

// Update PUT/PATCH /items/{id} — применяет только переданные поля.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	var req ItemPatch
	if !h.bind(w, r, &req) {
		return
	}
	it, err := h.ItemService.Update(r.Context(), id, req.toService())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// Delete DELETE /items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}

// writeError единая точка перевода ошибок сервиса в HTTP-ответ.
func (h *ItemHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrTransactionFailed):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": msgTransactionFail,
			"error":   err.Error(),
		})
	case errors.Is(err, service.ErrItemNotFound):
		writeErrorMessage(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, service.ErrNameTaken):
		writeErrorMessage(w, http.StatusBadRequest, msgNameTaken)
	case errors.Is(err, service.ErrFilterRequired):
		writeErrorMessage(w, http.StatusBadRequest, msgFilterRequired)
	case errors.Is(err, service.ErrEmptyName):
		writeErrorMessage(w, http.StatusBadRequest, msgEmptyName)
	default:
		h.Logger.Errorw("request failed",
			"method", r.Method,
			"uri", r.RequestURI,
			"error", err,
			"stack", errors.Stacktrace(err),
		)
		writeErrorMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

// bind декодирует и валидирует тело запроса; при ошибке сам пишет 400.
func (h *ItemHandler) bind(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := decodeJSON(r, target); err != nil {
		h.Logger.Warnw("invalid request body", "uri", r.RequestURI, "error", err)
		writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := validate.Struct(target); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func (h *ItemHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

func optionalInt(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
