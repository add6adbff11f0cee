package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	clientDomain "github.com/allisson/taxledger/internal/client/domain"
	"github.com/allisson/taxledger/internal/metrics"
)

const metricsDomain = "client"

// clientUseCaseWithMetrics decorates ClientUseCase with metrics instrumentation.
type clientUseCaseWithMetrics struct {
	next    ClientUseCase
	metrics metrics.BusinessMetrics
}

// NewClientUseCaseWithMetrics wraps a ClientUseCase with metrics recording.
func NewClientUseCaseWithMetrics(useCase ClientUseCase, m metrics.BusinessMetrics) ClientUseCase {
	return &clientUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *clientUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	c.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Create records metrics for client creation operations.
func (c *clientUseCaseWithMetrics) Create(
	ctx context.Context,
	input *clientDomain.CreateClientInput,
) (*clientDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Create(ctx, input)
	c.record(ctx, "client_create", start, err)
	return client, err
}

// Update records metrics for client update operations.
func (c *clientUseCaseWithMetrics) Update(
	ctx context.Context,
	clientID uuid.UUID,
	input *clientDomain.UpdateClientInput,
) (*clientDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Update(ctx, clientID, input)
	c.record(ctx, "client_update", start, err)
	return client, err
}

// Get records metrics for client retrieval operations.
func (c *clientUseCaseWithMetrics) Get(ctx context.Context, clientID uuid.UUID) (*clientDomain.Client, error) {
	start := time.Now()
	client, err := c.next.Get(ctx, clientID)
	c.record(ctx, "client_get", start, err)
	return client, err
}

// Delete records metrics for client deletion operations.
func (c *clientUseCaseWithMetrics) Delete(ctx context.Context, clientID uuid.UUID) error {
	start := time.Now()
	err := c.next.Delete(ctx, clientID)
	c.record(ctx, "client_delete", start, err)
	return err
}

// List records metrics for client list operations.
func (c *clientUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*clientDomain.Client, error) {
	start := time.Now()
	clients, err := c.next.List(ctx, offset, limit)
	c.record(ctx, "client_list", start, err)
	return clients, err
}

// EncryptLegacy records metrics for legacy encryption runs.
func (c *clientUseCaseWithMetrics) EncryptLegacy(ctx context.Context, batchSize int) (int, error) {
	start := time.Now()
	count, err := c.next.EncryptLegacy(ctx, batchSize)
	c.record(ctx, "client_encrypt_legacy", start, err)
	return count, err
}
