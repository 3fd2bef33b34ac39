// Package create реализует HTTP-обработчик для добавления товаров в каталог.
//
// Handler принимает JSON-запрос с данными товара, валидирует их,
// вызывает бизнес-логику создания товара через сервис и возвращает
// сохраненную запись в JSON-формате.
//
// Поля price и inStock объявлены указателями: ноль и false — допустимые
// значения, отличить их от отсутствующего поля можно только по nil.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/memory"
)

// Request — входные данные для создания товара.
type Request struct {
	ID       int      `json:"id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	InStock  *bool    `json:"inStock" validate:"required"`
}

// Handler управляет HTTP-запросами на создание товаров.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики каталога
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания товара.
type Service interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить товар
// @Description Добавляет товар в каталог. ID и имя (без учета регистра) должны быть уникальны.
// @Tags Products
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные нового товара"
// @Success 201 {object} map[string]any "Товар создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или отсутствуют поля"
// @Failure 401 {object} response.ErrorResponse "Отсутствует токен"
// @Failure 403 {object} response.ErrorResponse "Невалидный токен"
// @Failure 409 {object} response.ErrorResponse "Дубликат ID или имени"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int("id", req.ID), slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	product, err := h.service.Create(r.Context(), models.Product{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		InStock:  *req.InStock,
	})
	switch {
	case errors.Is(err, memory.ErrProductIDExists):
		log.Error("duplicate product id", slog.Int("id", req.ID))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.ErrorWithMessage(
			"Duplicate product ID",
			"Product with this ID already exists",
		))
		return
	case errors.Is(err, memory.ErrProductNameExists):
		log.Error("duplicate product name", slog.String("name", req.Name))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, response.ErrorWithMessage(
			"Duplicate product name",
			"Product with this name already exists (case-insensitive check)",
		))
		return
	case err != nil:
		log.Error("failed to create product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Internal server error"))
		return
	}

	log.Info("product created", slog.Int("id", product.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"message": "Product created successfully",
		"product": product,
	})
}
