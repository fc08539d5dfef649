package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"campushelp/internal/storage"
	"campushelp/internal/store"
	"campushelp/internal/upload"
	"campushelp/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// MockHelpRequestRepository is a mock implementing store.HelpRequestRepository
type MockHelpRequestRepository struct {
	mock.Mock
}

func (m *MockHelpRequestRepository) Create(ctx context.Context, req *types.HelpRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockHelpRequestRepository) Get(ctx context.Context, id string) (*types.HelpRequest, error) {
	args := m.Called(ctx, id)
	if req, ok := args.Get(0).(*types.HelpRequest); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHelpRequestRepository) List(ctx context.Context, filter types.HelpRequestFilter) ([]types.HelpRequest, error) {
	args := m.Called(ctx, filter)
	if requests, ok := args.Get(0).([]types.HelpRequest); ok {
		return requests, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHelpRequestRepository) Upvote(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockHelpRequestRepository) AddReply(ctx context.Context, id string, reply types.Reply) error {
	args := m.Called(ctx, id, reply)
	return args.Error(0)
}

// MockLostFoundRepository is a mock implementing store.LostFoundRepository
type MockLostFoundRepository struct {
	mock.Mock
}

func (m *MockLostFoundRepository) Create(ctx context.Context, item *types.LostFound) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLostFoundRepository) List(ctx context.Context) ([]types.LostFound, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]types.LostFound); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLostFoundRepository) AddReply(ctx context.Context, id string, reply types.Reply) (*types.LostFound, error) {
	args := m.Called(ctx, id, reply)
	if item, ok := args.Get(0).(*types.LostFound); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMarketingHelpRepository is a mock implementing store.MarketingHelpRepository
type MockMarketingHelpRepository struct {
	mock.Mock
}

func (m *MockMarketingHelpRepository) Create(ctx context.Context, help *types.MarketingHelp) error {
	args := m.Called(ctx, help)
	return args.Error(0)
}

func (m *MockMarketingHelpRepository) List(ctx context.Context) ([]types.MarketingHelp, error) {
	args := m.Called(ctx)
	if helps, ok := args.Get(0).([]types.MarketingHelp); ok {
		return helps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMarketingHelpRepository) UpdatePaymentStatus(ctx context.Context, id string, status types.PaymentStatus) (*types.MarketingHelp, error) {
	args := m.Called(ctx, id, status)
	if help, ok := args.Get(0).(*types.MarketingHelp); ok {
		return help, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Helpers ---

func newTestService(
	t *testing.T,
	helpRepo store.HelpRequestRepository,
	lostFoundRepo store.LostFoundRepository,
	marketingRepo store.MarketingHelpRepository,
) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	uploadDir := t.TempDir()
	diskStore, err := storage.NewDiskStore(uploadDir)
	require.NoError(t, err)

	config := &types.Config{
		ServerPort:     0,
		AllowedOrigin:  "*",
		StorageBackend: "disk",
		UploadDir:      uploadDir,
	}

	svc, err := New(
		config,
		logger,
		helpRepo,
		lostFoundRepo,
		marketingRepo,
		upload.NewIngestor(diskStore),
		func(ctx context.Context) error { return nil },
	)
	require.NoError(t, err)

	return svc
}

type filePart struct {
	field       string
	name        string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, fields map[string][]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for name, values := range fields {
		for _, value := range values {
			require.NoError(t, writer.WriteField(name, value))
		}
	}

	for _, fp := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fp.field, fp.name))
		header.Set("Content-Type", fp.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fp.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}
