package queries

import (
	"context"
	"log/slog"
)

// OrderFormOptionsCache stores the last computed OrderFormOptions.
// Get reports a miss with found == false and a nil error.
type OrderFormOptionsCache interface {
	Get(ctx context.Context) (options OrderFormOptions, found bool, err error)
	Set(ctx context.Context, options OrderFormOptions) error
	Invalidate(ctx context.Context) error
}

// OrderFormOptionsHandler is implemented by every handler answering GetOrderFormOptionsQuery.
type OrderFormOptionsHandler interface {
	Handle(ctx context.Context, query GetOrderFormOptionsQuery) (OrderFormOptions, error)
}

// CachedOrderFormOptionsQueryHandler answers from the cache and falls back to next.
// Cache failures are logged and never fail the query.
type CachedOrderFormOptionsQueryHandler struct {
	next   OrderFormOptionsHandler
	cache  OrderFormOptionsCache
	logger *slog.Logger
}

func NewCachedOrderFormOptionsQueryHandler(
	next OrderFormOptionsHandler,
	cache OrderFormOptionsCache,
	logger *slog.Logger,
) CachedOrderFormOptionsQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return CachedOrderFormOptionsQueryHandler{next: next, cache: cache, logger: logger}
}

func (h CachedOrderFormOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFormOptionsQuery,
) (OrderFormOptions, error) {
	if err := query.Validate(); err != nil {
		return OrderFormOptions{}, err
	}

	options, found, err := h.cache.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "order form options cache read failed", "error", err)
	}
	if found {
		return options, nil
	}

	options, err = h.next.Handle(ctx, query)
	if err != nil {
		return OrderFormOptions{}, err
	}

	if err = h.cache.Set(ctx, options); err != nil {
		h.logger.WarnContext(ctx, "order form options cache write failed", "error", err)
	}

	return options, nil
}
