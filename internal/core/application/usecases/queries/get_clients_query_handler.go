package queries

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type GetClientsQueryHandler struct {
	db *gorm.DB
}

func NewGetClientsQueryHandler(db *gorm.DB) GetClientsQueryHandler {
	return GetClientsQueryHandler{db: db}
}

func (h GetClientsQueryHandler) Handle(ctx context.Context, query GetClientsQuery) ([]ClientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	direction := query.SortOrder().sql()
	rows, err := h.db.WithContext(ctx).Raw(clientViewSelect + fmt.Sprintf(
		"\n\t\tORDER BY name %s, surname %s, id", direction, direction,
	)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := make([]ClientView, 0)
	for rows.Next() {
		view, scanErr := scanClientView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		clients = append(clients, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
