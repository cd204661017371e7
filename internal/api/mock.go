package api

import (
	"context"
	"sync"

	"ticketdesk/internal/domain"
)

// MockClient is a test double for the Client interface.
type MockClient struct {
	ListTicketsFn  func(context.Context, domain.Filter) ([]domain.Ticket, error)
	CreateTicketFn func(context.Context, domain.NewTicket) (CreateResult, error)
	UpdateTicketFn func(context.Context, domain.TicketID, domain.TicketPatch) (domain.Ticket, error)
	GetStatsFn     func(context.Context) (domain.Stats, error)
	ClassifyFn     func(context.Context, string) (domain.Suggestion, error)

	mu                    sync.Mutex
	ListTicketsCallCount  int
	CreateTicketCallCount int
	UpdateTicketCallCount int
	GetStatsCallCount     int
	ClassifyCallCount     int
	ListTicketsCallArgs   []domain.Filter
	CreateTicketCallArgs  []domain.NewTicket
	UpdateTicketCallArgs  []UpdateTicketCallArg
	ClassifyCallArgs      []string
}

// UpdateTicketCallArg captures arguments passed to UpdateTicket.
type UpdateTicketCallArg struct {
	ID    domain.TicketID
	Patch domain.TicketPatch
}

// NewMockClient returns a MockClient with zeroed handlers.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// ListTickets invokes the configured stub or returns an empty list.
func (m *MockClient) ListTickets(ctx context.Context, filter domain.Filter) ([]domain.Ticket, error) {
	m.mu.Lock()
	m.ListTicketsCallCount++
	m.ListTicketsCallArgs = append(m.ListTicketsCallArgs, filter)
	m.mu.Unlock()

	if m.ListTicketsFn == nil {
		return []domain.Ticket{}, nil
	}
	return m.ListTicketsFn(ctx, filter)
}

// CreateTicket invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) CreateTicket(ctx context.Context, ticket domain.NewTicket) (CreateResult, error) {
	m.mu.Lock()
	m.CreateTicketCallCount++
	m.CreateTicketCallArgs = append(m.CreateTicketCallArgs, ticket)
	m.mu.Unlock()

	if m.CreateTicketFn == nil {
		return CreateResult{}, ErrMockNotImplemented
	}
	return m.CreateTicketFn(ctx, ticket)
}

// UpdateTicket invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) UpdateTicket(ctx context.Context, id domain.TicketID, patch domain.TicketPatch) (domain.Ticket, error) {
	m.mu.Lock()
	m.UpdateTicketCallCount++
	m.UpdateTicketCallArgs = append(m.UpdateTicketCallArgs, UpdateTicketCallArg{ID: id, Patch: patch})
	m.mu.Unlock()

	if m.UpdateTicketFn == nil {
		return domain.Ticket{}, ErrMockNotImplemented
	}
	return m.UpdateTicketFn(ctx, id, patch)
}

// GetStats invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) GetStats(ctx context.Context) (domain.Stats, error) {
	m.mu.Lock()
	m.GetStatsCallCount++
	m.mu.Unlock()

	if m.GetStatsFn == nil {
		return domain.Stats{}, ErrMockNotImplemented
	}
	return m.GetStatsFn(ctx)
}

// Classify invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Classify(ctx context.Context, description string) (domain.Suggestion, error) {
	m.mu.Lock()
	m.ClassifyCallCount++
	m.ClassifyCallArgs = append(m.ClassifyCallArgs, description)
	m.mu.Unlock()

	if m.ClassifyFn == nil {
		return domain.Suggestion{}, ErrMockNotImplemented
	}
	return m.ClassifyFn(ctx, description)
}

// Calls returns a snapshot of call counts keyed by operation name.
func (m *MockClient) Calls() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return map[string]int{
		"ListTickets":  m.ListTicketsCallCount,
		"CreateTicket": m.CreateTicketCallCount,
		"UpdateTicket": m.UpdateTicketCallCount,
		"GetStats":     m.GetStatsCallCount,
		"Classify":     m.ClassifyCallCount,
	}
}

var _ Client = (*MockClient)(nil)
