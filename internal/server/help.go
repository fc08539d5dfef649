package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campushelp/pkg/types"

	"github.com/alexedwards/flow"
)

// Budget for buffering multipart bodies in memory before spilling to temp
// files; individual file limits live in the upload package.
const maxRequestMemory = 32 << 20

const maxHelpAttachments = 5

type createHelpRequestForm struct {
	Description string   `form:"description"`
	Category    string   `form:"category"`
	Tags        []string `form:"tags"`
}

func (s *Service) handleCreateHelpRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxRequestMemory); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart payload", err)
		return
	}

	var input createHelpRequestForm
	if err := decoder.Decode(&input, url.Values(r.MultipartForm.Value)); err != nil {
		s.logger.WithError(err).Info("failed to decode help request form")
		s.respondError(w, http.StatusBadRequest, "invalid form payload", err)
		return
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		s.respondError(w, http.StatusBadRequest, "description is required", nil)
		return
	}

	category := types.Category(strings.TrimSpace(input.Category))
	if category == "" {
		s.respondError(w, http.StatusBadRequest, "category is required", nil)
		return
	}
	if !category.Valid() {
		s.respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", category), nil)
		return
	}

	attachments, err := s.ingestor.Ingest(ctx, r.MultipartForm, "attachments", maxHelpAttachments)
	if err != nil {
		s.handleError(w, err, "failed to store help request attachments")
		return
	}

	req := &types.HelpRequest{
		Description: description,
		Category:    category,
		Tags:        normalizeTags(input.Tags),
		Attachments: attachments,
	}

	if err := s.helpRepo.Create(ctx, req); err != nil {
		s.handleError(w, err, "failed to create help request")
		return
	}

	s.respond(w, http.StatusCreated, "Help request submitted successfully", req)
}

func (s *Service) handleListHelpRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter types.HelpRequestFilter
	if err := decoder.Decode(&filter, r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	requests, err := s.helpRepo.List(ctx, filter)
	if err != nil {
		s.handleError(w, err, "failed to fetch help requests")
		return
	}

	s.respond(w, http.StatusOK, "", requests)
}

func (s *Service) handleGetHelpRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := s.helpRepo.Get(ctx, flow.Param(ctx, "id"))
	if err != nil {
		s.handleError(w, err, "failed to fetch help request")
		return
	}

	s.respond(w, http.StatusOK, "", req)
}

func (s *Service) handleUpvoteHelpRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	upvotes, err := s.helpRepo.Upvote(ctx, flow.Param(ctx, "requestId"))
	if err != nil {
		s.handleError(w, err, "failed to upvote help request")
		return
	}

	s.respond(w, http.StatusOK, "Upvote recorded", map[string]int{"upvotes": upvotes})
}

type replyRequest struct {
	User    string `json:"user"`
	Message string `json:"message"`
}

func (s *Service) handleAddHelpReply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input replyRequest
	if err := decodeJSON(r, &input); err != nil {
		s.handleError(w, err, "failed to decode reply")
		return
	}

	user := strings.TrimSpace(input.User)
	message := strings.TrimSpace(input.Message)
	if user == "" || message == "" {
		s.respondError(w, http.StatusBadRequest, "user and message are required", nil)
		return
	}

	reply := types.Reply{
		User:      user,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.helpRepo.AddReply(ctx, flow.Param(ctx, "id"), reply); err != nil {
		s.handleError(w, err, "failed to add reply to help request")
		return
	}

	s.respond(w, http.StatusOK, "Reply added successfully", reply)
}

// normalizeTags accepts tags however the client sent them: a repeated field,
// a single value, or one comma-separated string. The result is an ordered
// slice of trimmed, non-empty strings.
func normalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, tag := range strings.Split(value, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			tags = append(tags, tag)
		}
	}
	return tags
}
