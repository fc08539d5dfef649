package store

import (
	"context"

	"campushelp/pkg/types"
)

// HelpRequestRepository defines the persistence operations for help requests.
type HelpRequestRepository interface {
	Create(ctx context.Context, req *types.HelpRequest) error
	Get(ctx context.Context, id string) (*types.HelpRequest, error)
	List(ctx context.Context, filter types.HelpRequestFilter) ([]types.HelpRequest, error)
	// Upvote increments the counter server-side and returns the new count.
	Upvote(ctx context.Context, id string) (int, error)
	AddReply(ctx context.Context, id string, reply types.Reply) error
}

// LostFoundRepository defines the persistence operations for lost-and-found
// items.
type LostFoundRepository interface {
	Create(ctx context.Context, item *types.LostFound) error
	List(ctx context.Context) ([]types.LostFound, error)
	// AddReply appends to the item's thread and returns the updated item.
	AddReply(ctx context.Context, id string, reply types.Reply) (*types.LostFound, error)
}

// MarketingHelpRepository defines the persistence operations for marketing
// help requests.
type MarketingHelpRepository interface {
	Create(ctx context.Context, help *types.MarketingHelp) error
	List(ctx context.Context) ([]types.MarketingHelp, error)
	// UpdatePaymentStatus transitions a Pending request and returns the
	// updated document. Requests already Completed or Failed are rejected
	// with types.ErrPaymentStatusFinal.
	UpdatePaymentStatus(ctx context.Context, id string, status types.PaymentStatus) (*types.MarketingHelp, error)
}
