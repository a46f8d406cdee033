package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

func (h GetOrderBacklogQueryHandler) Handle(ctx context.Context, query GetOrderBacklogQuery) (OrderBacklog, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make(OrderBacklog, len(order.Statuses()))
	for _, status := range order.Statuses() {
		backlog[status] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status int
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		backlog[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
