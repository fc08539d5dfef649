package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"campushelp/pkg/types"

	"github.com/alexedwards/flow"
)

const maxMarketingImages = 1

type submitMarketingHelpForm struct {
	Description   string  `form:"description"`
	Price         float64 `form:"price"`
	PaymentMethod string  `form:"paymentMethod"`
}

func (s *Service) handleSubmitMarketingHelp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxRequestMemory); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart payload", err)
		return
	}

	var input submitMarketingHelpForm
	if err := decoder.Decode(&input, url.Values(r.MultipartForm.Value)); err != nil {
		s.logger.WithError(err).Info("failed to decode marketing help form")
		s.respondError(w, http.StatusBadRequest, "invalid form payload", err)
		return
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		s.respondError(w, http.StatusBadRequest, "description is required", nil)
		return
	}

	if input.Price <= 0 {
		s.respondError(w, http.StatusBadRequest, "price must be a positive number", nil)
		return
	}

	method := types.PaymentMethod(strings.TrimSpace(input.PaymentMethod))
	if !method.Valid() {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown payment method %q", method), nil)
		return
	}

	stored, err := s.ingestor.Ingest(ctx, r.MultipartForm, "image", maxMarketingImages)
	if err != nil {
		s.handleError(w, err, "failed to store marketing help image")
		return
	}

	help := &types.MarketingHelp{
		Description:   description,
		Price:         input.Price,
		PaymentMethod: method,
	}
	if len(stored) > 0 {
		help.Image = stored[0].URL
	}

	if err := s.marketingRepo.Create(ctx, help); err != nil {
		s.handleError(w, err, "failed to create marketing help request")
		return
	}

	s.respond(w, http.StatusCreated, "Marketing help request submitted successfully", help)
}

func (s *Service) handleListMarketingHelp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	helps, err := s.marketingRepo.List(ctx)
	if err != nil {
		s.handleError(w, err, "failed to fetch marketing help requests")
		return
	}

	s.respond(w, http.StatusOK, "", helps)
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func (s *Service) handleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input updatePaymentStatusRequest
	if err := decodeJSON(r, &input); err != nil {
		s.handleError(w, err, "failed to decode payment status update")
		return
	}

	status := types.PaymentStatus(strings.TrimSpace(input.PaymentStatus))
	if !status.Valid() {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown payment status %q", status), nil)
		return
	}

	help, err := s.marketingRepo.UpdatePaymentStatus(ctx, flow.Param(ctx, "id"), status)
	if err != nil {
		s.handleError(w, err, "failed to update payment status")
		return
	}

	s.respond(w, http.StatusOK, "Payment status updated successfully", help)
}
