package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/internal/service"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Checkouter interface {
	Checkout(ctx context.Context, in service.CheckoutInput) (service.CheckoutResult, error)
}

type CallbackProcessor interface {
	HandleCallback(ctx context.Context, cb entities.PaymentCallback) (service.CallbackOutcome, error)
}

type OrderManager interface {
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	TrackOrder(ctx context.Context, trackingID string) (entities.Order, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	checkout  Checkouter
	callbacks CallbackProcessor
	orders    OrderManager
}

func NewHTTPHandler(logger *slog.Logger, checkout Checkouter, callbacks CallbackProcessor, orders OrderManager) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		checkout:  checkout,
		callbacks: callbacks,
		orders:    orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/health", h.Health)
	r.Post("/orders", h.Checkout)
	r.Get("/orders/track/{tracking_id}", h.TrackOrder)
	r.Post("/payments/callback", h.PaymentCallback)
	r.Patch("/admin/orders/{order_id}/status", h.UpdateOrderStatus)
}

// Health сообщает, что сервис запущен.
// @Summary      Проверка доступности
// @Tags         system
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// Checkout оформляет заказ.
// @Summary      Оформить заказ
// @Description  Резервирует товар, создает заказ и инициирует оплату. Для мобильных платежей заказ остается в статусе pending до callback от провайдера.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRequest  true  "Корзина, покупатель и способ оплаты"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недостаточно товара на складе"
// @Failure      502  {object}  utils.ErrorResponse "Ошибка платежного провайдера"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteErrorDetail(w, "invalid request body", err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.checkout.Checkout(ctx, CheckoutRequestToInput(req))
	if err != nil {
		h.writeCheckoutError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, CheckoutResultToJSON(res), http.StatusCreated)
}

func (h *HTTPHandler) writeCheckoutError(ctx context.Context, w http.ResponseWriter, err error) {
	var perr *entities.ProviderError

	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteErrorDetail(w, "invalid request", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPhoneNumber):
		utils.WriteErrorDetail(w, "invalid phone number", err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteErrorDetail(w, "product not found", err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteErrorDetail(w, "insufficient stock", err.Error(), http.StatusConflict)
	case errors.As(err, &perr):
		h.logger.WarnContext(ctx, "payment provider rejected checkout", slog.Any("error", err))
		utils.WriteErrorDetail(w, "payment could not be initiated", perr.Error(), http.StatusBadGateway)
	case errors.Is(err, entities.ErrProviderCommunication):
		h.logger.WarnContext(ctx, "payment provider unavailable", slog.Any("error", err))
		utils.WriteErrorDetail(w, "payment could not be initiated", err.Error(), http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, "failed to checkout", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// PaymentCallback принимает результат платежа от провайдера.
// @Summary      Callback платежного провайдера
// @Description  Сверяет заказ с итогом платежа. Повторная доставка того же callback ничего не меняет. Неизвестная ссылка тоже подтверждается кодом 200.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      PaymentCallback  true  "Результат платежа"
// @Success      200  {object}  CallbackResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /payments/callback [post]
func (h *HTTPHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PaymentCallback
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	_, err := h.callbacks.HandleCallback(ctx, PaymentCallbackToEntity(req))

	// провайдер не должен узнать, существует ли заказ
	if errors.Is(err, entities.ErrOrderNotFound) {
		h.logger.WarnContext(ctx, "callback for unknown reference", slog.String("reference", req.ThirdPartyReference))
		err = nil
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to handle payment callback",
			slog.Any("error", err),
			slog.String("reference", req.ThirdPartyReference),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CallbackResponse{Message: "ok"}, http.StatusOK)
}

// UpdateOrderStatus меняет статус выполнения заказа.
// @Summary      Сменить статус заказа
// @Description  Меняет только статус выполнения. Статус оплаты и остатки не затрагиваются.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        order_id  path      string               true  "Идентификатор заказа"
// @Param        request   body      UpdateStatusRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status))

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrValidation) {
		utils.WriteErrorDetail(w, "invalid request", err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// TrackOrder возвращает заказ по трек-номеру.
// @Summary      Отследить заказ
// @Tags         orders
// @Produce      json
// @Param        tracking_id  path      string  true  "Трек-номер заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/track/{tracking_id} [get]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackingID := chi.URLParam(r, "tracking_id")

	trackRequestsInProgress.Inc()
	defer trackRequestsInProgress.Dec()

	start := time.Now()
	status := http.StatusOK
	defer func() {
		trackRequestTotal.WithLabelValues(strconv.Itoa(status)).Inc()
		trackRequestDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.validate.Var(trackingID, "required"); err != nil {
		status = http.StatusBadRequest
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.TrackOrder(ctx, trackingID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		status = http.StatusNotFound
		utils.WriteError(w, "order not found", status)
		return
	}

	if err != nil {
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.String("tracking_id", trackingID))
		utils.WriteError(w, "internal server error", status)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), status)
}
