package queries

import (
	"context"

	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetClientQueryHandler struct {
	db *gorm.DB
}

func NewGetClientQueryHandler(db *gorm.DB) GetClientQueryHandler {
	return GetClientQueryHandler{db: db}
}

// Handle returns the client or an ObjectNotFoundError.
func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (ClientView, error) {
	if err := query.Validate(); err != nil {
		return ClientView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(clientViewSelect+"\n\t\tWHERE id = ?", query.ClientID().String()).Rows()
	if err != nil {
		return ClientView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ClientView{}, err
		}
		return ClientView{}, errs.NewObjectNotFoundError("client", query.ClientID())
	}

	return scanClientView(rows)
}
