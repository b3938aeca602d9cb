package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcmnotify/sandbox/internal/core/domain"
	"github.com/hcmnotify/sandbox/internal/core/ports"
)

type WebhookHandler struct {
	webhooks ports.WebhookService
}

func NewWebhookHandler(webhooks ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

type registerWebhookRequest struct {
	URL    string   `json:"url"    validate:"required"`
	Events []string `json:"events"`
}

type registerWebhookResponse struct {
	ID      string   `json:"id"`
	URL     string   `json:"url"`
	Events  []string `json:"events"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
}

type listWebhooksResponse struct {
	Webhooks []domain.Webhook `json:"webhooks"`
}

// Register subscribes a URL and schedules one test event to it.
//
// @Summary      Register a webhook
// @Tags         webhooks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        companyId  path      string                  true  "Company id"
// @Param        body       body      registerWebhookRequest  true  "Subscription"
// @Success      201        {object}  registerWebhookResponse
// @Failure      400        {object}  map[string]any
// @Failure      403        {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/webhooks [post]
func (h *WebhookHandler) Register(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}

	var req registerWebhookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	w, err := h.webhooks.Register(c.Request().Context(), ports.RegisterWebhookInput{
		Scope:  scope,
		URL:    req.URL,
		Events: req.Events,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerWebhookResponse{
		ID:      w.ID,
		URL:     w.URL,
		Events:  w.Events,
		Status:  "active",
		Message: "Webhook registered. A test event will be sent to your URL shortly.",
	})
}

// @Summary      List webhooks
// @Tags         webhooks
// @Security     BearerAuth
// @Produce      json
// @Param        companyId  path      string  true  "Company id"
// @Success      200        {object}  listWebhooksResponse
// @Failure      403        {object}  map[string]any
// @Router       /ta/rest/v2/companies/{companyId}/webhooks [get]
func (h *WebhookHandler) List(c echo.Context) error {
	scope, err := ctxScope(c)
	if err != nil {
		return err
	}
	hooks, err := h.webhooks.List(c.Request().Context(), scope)
	if err != nil {
		return err
	}
	if hooks == nil {
		hooks = []domain.Webhook{}
	}
	return c.JSON(http.StatusOK, listWebhooksResponse{Webhooks: hooks})
}
