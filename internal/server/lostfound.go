package server

import (
	"net/http"
	"strings"
	"time"

	"campushelp/pkg/types"
)

const maxLostFoundImages = 3

func (s *Service) handleSubmitLostFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxRequestMemory); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart payload", err)
		return
	}

	description := strings.TrimSpace(r.FormValue("description"))
	if description == "" {
		s.respondError(w, http.StatusBadRequest, "description is required", nil)
		return
	}

	stored, err := s.ingestor.Ingest(ctx, r.MultipartForm, "images", maxLostFoundImages)
	if err != nil {
		s.handleError(w, err, "failed to store lost and found images")
		return
	}

	images := make([]string, 0, len(stored))
	for _, attachment := range stored {
		images = append(images, attachment.URL)
	}

	item := &types.LostFound{
		Description: description,
		Images:      images,
	}

	if err := s.lostFoundRepo.Create(ctx, item); err != nil {
		s.handleError(w, err, "failed to create lost and found item")
		return
	}

	s.respond(w, http.StatusCreated, "Item submitted successfully", item)
}

func (s *Service) handleListLostFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := s.lostFoundRepo.List(ctx)
	if err != nil {
		s.handleError(w, err, "failed to fetch lost and found items")
		return
	}

	s.respond(w, http.StatusOK, "", items)
}

type lostFoundReplyRequest struct {
	ItemID  string `json:"itemId"`
	User    string `json:"user"`
	Message string `json:"message"`
}

func (s *Service) handleLostFoundReply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input lostFoundReplyRequest
	if err := decodeJSON(r, &input); err != nil {
		s.handleError(w, err, "failed to decode lost and found reply")
		return
	}

	itemID := strings.TrimSpace(input.ItemID)
	user := strings.TrimSpace(input.User)
	message := strings.TrimSpace(input.Message)
	if itemID == "" || user == "" || message == "" {
		s.respondError(w, http.StatusBadRequest, "itemId, user and message are required", nil)
		return
	}

	reply := types.Reply{
		User:      user,
		Message:   message,
		CreatedAt: time.Now(),
	}

	item, err := s.lostFoundRepo.AddReply(ctx, itemID, reply)
	if err != nil {
		s.handleError(w, err, "failed to add reply to lost and found item")
		return
	}

	s.respond(w, http.StatusCreated, "Reply added successfully", item)
}
