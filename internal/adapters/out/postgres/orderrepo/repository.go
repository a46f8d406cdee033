package orderrepo

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const foreignKeyViolation = "23503"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is implemented by the unit of work; tracked orders have their
// domain events published after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its items and total.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return translateInsertError(aggregate, err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus writes status and completed_at only.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "completed_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreFailureError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreFailureError("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) DeleteByClient(ctx context.Context, clientID kernel.UUID) (int64, error) {
	return r.deleteWhere(ctx, "client_id", clientID, "delete orders by client")
}

func (r *GormOrderRepository) DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error) {
	return r.deleteWhere(ctx, "restaurant_id", restaurantID, "delete orders by restaurant")
}

func (r *GormOrderRepository) deleteWhere(ctx context.Context, column string, id kernel.UUID, operation string) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where(column+" = ?", id.Raw()).Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, errs.NewStoreFailureError(operation, result.Error)
	}

	return result.RowsAffected, nil
}

// translateInsertError reports a dangling client or restaurant reference as not found.
func translateInsertError(aggregate *order.Order, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		if strings.Contains(strings.ToLower(pgErr.ConstraintName), "client") {
			return errs.NewObjectNotFoundErrorWithCause("client", aggregate.ClientID().String(), err)
		}
		return errs.NewObjectNotFoundErrorWithCause("restaurant", aggregate.RestaurantID().String(), err)
	}
	return errs.NewStoreFailureError("add order", err)
}
