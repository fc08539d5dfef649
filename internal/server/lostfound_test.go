package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campushelp/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitLostFound(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)

	var created *types.LostFound
	lostFoundRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*types.LostFound)
	}).Return(nil)

	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	body, contentType := multipartBody(t, map[string][]string{
		"description": {"Found a black umbrella in lecture hall 3"},
	},
		filePart{field: "images", name: "umbrella.jpg", contentType: "image/jpeg", content: []byte("jpeg")},
		filePart{field: "images", name: "handle.png", contentType: "image/png", content: []byte("png")},
	)

	req := httptest.NewRequest(http.MethodPost, "/api/lost-found", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	require.Len(t, created.Images, 2)
	assert.True(t, strings.HasPrefix(created.Images[0], "/uploads/"))
	lostFoundRepo.AssertExpectations(t)
}

func TestSubmitLostFoundRequiresDescription(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)
	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	body, contentType := multipartBody(t, map[string][]string{})

	req := httptest.NewRequest(http.MethodPost, "/api/lost-found", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	lostFoundRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitLostFoundRejectsTooManyImages(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)
	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	files := make([]filePart, 0, 4)
	for range 4 {
		files = append(files, filePart{field: "images", name: "a.jpg", contentType: "image/jpeg", content: []byte("x")})
	}

	body, contentType := multipartBody(t, map[string][]string{
		"description": {"Lost everything at once"},
	}, files...)

	req := httptest.NewRequest(http.MethodPost, "/api/lost-found", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Message, "at most 3")
	lostFoundRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListLostFound(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)
	lostFoundRepo.On("List", mock.Anything).Return([]types.LostFound{
		{Description: "Found keys"},
		{Description: "Lost ID card"},
	}, nil)

	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	req := httptest.NewRequest(http.MethodGet, "/api/lost-found", nil)
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var docs []types.LostFound
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &docs))
	assert.Len(t, docs, 2)
}

func TestLostFoundReply(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)
	updated := &types.LostFound{
		Description: "Found keys",
		Replies:     []types.Reply{{User: "sam", Message: "Those are mine!"}},
	}
	lostFoundRepo.On("AddReply", mock.Anything, "64f0c2a9e13a7a0001234567", mock.MatchedBy(func(reply types.Reply) bool {
		return reply.User == "sam" && reply.Message == "Those are mine!"
	})).Return(updated, nil)

	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	req := httptest.NewRequest(http.MethodPost, "/api/lost-found/reply",
		strings.NewReader(`{"itemId":"64f0c2a9e13a7a0001234567","user":"sam","message":"Those are mine!"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var doc types.LostFound
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &doc))
	require.Len(t, doc.Replies, 1)
	assert.Equal(t, "sam", doc.Replies[0].User)
	lostFoundRepo.AssertExpectations(t)
}

func TestLostFoundReplyRequiresAllFields(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)
	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	req := httptest.NewRequest(http.MethodPost, "/api/lost-found/reply",
		strings.NewReader(`{"user":"sam","message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	lostFoundRepo.AssertNotCalled(t, "AddReply", mock.Anything, mock.Anything, mock.Anything)
}

func TestLostFoundReplyNotFound(t *testing.T) {
	lostFoundRepo := new(MockLostFoundRepository)
	lostFoundRepo.On("AddReply", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, types.ErrLostFoundNotFound)

	svc := newTestService(t, new(MockHelpRequestRepository), lostFoundRepo, new(MockMarketingHelpRepository))

	req := httptest.NewRequest(http.MethodPost, "/api/lost-found/reply",
		strings.NewReader(`{"itemId":"deadbeef","user":"sam","message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	svc.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
