package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/models"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils"
	"github.com/aaravmahajanofficial/papela-rentals/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

// SubmitInquiry godoc
//
//	@Summary	Send an event inquiry to the Papela team
//	@Tags		Contact
//	@Accept		json
//	@Produce	json
//	@Param		inquiry	body		models.ContactInquiry	true	"Inquiry"
//	@Success	202		{object}	models.ContactResponse
//	@Failure	502		{object}	response.ErrorResponse	"Email delivery failed"
//	@Router		/contact [post]
func (h *ContactHandler) SubmitInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactInquiry
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid contact input")
			return
		}

		resp, err := h.contactService.Submit(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to submit inquiry", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusAccepted, resp)
	}
}
