package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/SergeyBogomolovv/order-intake/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
	BulkUpdateStatus(ctx context.Context, orderIDs []string, status string) entities.BulkUpdateResult
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Post("/bulk-status", h.BulkUpdateStatus)
		r.Get("/{order_id}", h.GetOrder)
		r.Patch("/{order_id}/status", h.UpdateOrderStatus)
	})
}

// CreateOrder принимает заказ.
// @Summary      Создать заказ
// @Description  Принимает заказ и сразу возвращает его. Сохранение и уведомления выполняются в фоне
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Заказ"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeAndValidate(w, r, h.validate, &req); err != nil {
		h.logger.DebugContext(ctx, "invalid order request", slog.Any("error", err))
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderJSONToDraft(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.WithLabelValues(sourceHTTP).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders возвращает последние заказы.
// @Summary      Список заказов
// @Description  Возвращает до 100 последних заказов, новые первыми
// @Tags         orders
// @Produce      json
// @Success      200  {array}   Order
// @Failure      500  {object}  utils.ErrorResponse "Хранилище не настроено"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.writeStoreError(ctx, w, err, "failed to list orders")
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder возвращает заказ по бизнес-ключу.
// @Summary      Получить заказ по order_id
// @Description  Возвращает заказ из внешнего хранилища, клиент опрашивает его для проверки email_sent
// @Tags         orders
// @Produce      json
// @Param        order_id  path      string  true  "Бизнес-ключ заказа, например ORD-1A2B3C4D"
// @Success      200       {object}  Order
// @Failure      400       {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404       {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500       {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Failure      503       {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.writeStoreError(ctx, w, err, "failed to get order", slog.String("order_id", orderID))
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus меняет статус заказа.
// @Summary      Сменить статус заказа
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string               true  "Бизнес-ключ заказа"
// @Param        status    body      UpdateStatusRequest  true  "Новый статус"
// @Success      200       {object}  utils.MessageResponse
// @Failure      400       {object}  utils.ValidationErrorResponse "Статус не передан"
// @Failure      500       {object}  utils.ErrorResponse "Не удалось обновить статус"
// @Failure      503       {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeAndValidate(w, r, h.validate, &req); err != nil {
		return
	}

	err := h.svc.UpdateOrderStatus(ctx, orderID, req.Status)
	switch {
	case err == nil:
		statusUpdates.WithLabelValues(modeSingle, "ok").Inc()
		utils.WriteMessage(w, "order status updated", http.StatusOK)
	case errors.Is(err, entities.ErrStatusRequired):
		utils.WriteError(w, "status is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrStoreUnavailable):
		statusUpdates.WithLabelValues(modeSingle, "failed").Inc()
		h.logger.ErrorContext(ctx, "record store unavailable", slog.String("order_id", orderID), slog.Any("error", err))
		utils.WriteError(w, "record store unavailable", http.StatusServiceUnavailable)
	default:
		// not found здесь тоже считается неудачным обновлением
		statusUpdates.WithLabelValues(modeSingle, "failed").Inc()
		h.logger.ErrorContext(ctx, "failed to update order status", slog.String("order_id", orderID), slog.Any("error", err))
		utils.WriteError(w, "failed to update order status", http.StatusInternalServerError)
	}
}

// BulkUpdateStatus меняет статус нескольких заказов.
// @Summary      Массовая смена статуса
// @Description  Обновляет каждый заказ независимо и возвращает, какие обновились, а какие нет
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      BulkStatusRequest  true  "Заказы и новый статус"
// @Success      200      {object}  BulkStatusResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /orders/bulk-status [post]
func (h *HTTPHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BulkStatusRequest
	if err := utils.DecodeAndValidate(w, r, h.validate, &req); err != nil {
		return
	}

	result := h.svc.BulkUpdateStatus(ctx, req.OrderIDs, req.Status)
	statusUpdates.WithLabelValues(modeBulk, "ok").Add(float64(len(result.Success)))
	statusUpdates.WithLabelValues(modeBulk, "failed").Add(float64(len(result.Failed)))

	utils.WriteJSON(w, BulkResultEntityToJSON(result), http.StatusOK)
}

func (h *HTTPHandler) writeStoreError(ctx context.Context, w http.ResponseWriter, err error, msg string, attrs ...any) {
	h.logger.ErrorContext(ctx, msg, append(attrs, slog.Any("error", err))...)

	if errors.Is(err, entities.ErrStoreUnavailable) {
		utils.WriteError(w, "record store unavailable", http.StatusServiceUnavailable)
		return
	}
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}
