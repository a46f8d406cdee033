package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type ClientRequest struct {
	Name    string `json:"name"    form:"name"`
	Surname string `json:"surname" form:"surname"`
	Address string `json:"address" form:"address"`
	Phone   string `json:"phone"   form:"phone"`
}

type RestaurantRequest struct {
	Name    string `json:"name"    form:"name"`
	Address string `json:"address" form:"address"`
	Phone   string `json:"phone"   form:"phone"`
}

type ItemRequest struct {
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
}

// ItemsField accepts a JSON array of items, or a string holding one as sent
// by HTML forms.
type ItemsField []ItemRequest

func (f *ItemsField) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		return f.UnmarshalParam(encoded)
	}

	var items []ItemRequest
	if err := json.Unmarshal(data, &items); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("items", err)
	}
	*f = items
	return nil
}

// UnmarshalParam is used by echo when binding form values.
func (f *ItemsField) UnmarshalParam(param string) error {
	if strings.TrimSpace(param) == "" {
		*f = nil
		return nil
	}

	var items []ItemRequest
	if err := json.Unmarshal([]byte(param), &items); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("items", err)
	}
	*f = items
	return nil
}

// Items builds the domain items, reporting every invalid entry.
func (f ItemsField) Items() ([]order.Item, error) {
	items := make([]order.Item, 0, len(f))
	var itemErrs []error
	for i, item := range f {
		built, err := order.NewItem(item.Quantity, item.UnitPrice, item.Description)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, built)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return nil, err
	}
	return items, nil
}

type OrderRequest struct {
	RestaurantID string     `json:"restaurantId" form:"restaurantId"`
	ClientID     string     `json:"clientId"     form:"clientId"`
	Status       string     `json:"status"       form:"status"`
	Items        ItemsField `json:"items"        form:"items"`
}

type StatusRequest struct {
	Status string `json:"status" form:"status"`
}

type ItemResponse struct {
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Subtotal    string `json:"subtotal"`
	Description string `json:"description"`
}

type RestaurantSummary struct {
	ID   kernel.UUID `json:"id"`
	Name string      `json:"name"`
}

type ClientSummary struct {
	ID       kernel.UUID `json:"id"`
	Name     string      `json:"name"`
	Surname  string      `json:"surname"`
	Initials string      `json:"initials"`
}

// OrderResponse renders money with two decimals.
type OrderResponse struct {
	ID              kernel.UUID       `json:"id"`
	Restaurant      RestaurantSummary `json:"restaurant"`
	Client          ClientSummary     `json:"client"`
	Status          order.Status      `json:"status"`
	AllowedStatuses []order.Status    `json:"allowedStatuses"`
	Items           []ItemResponse    `json:"items"`
	Total           string            `json:"total"`
	CreatedAt       time.Time         `json:"createdAt"`
	CompletedAt     *time.Time        `json:"completedAt"`
}

func newOrderResponse(view queries.OrderView) OrderResponse {
	items := make([]ItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, ItemResponse{
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Subtotal:    item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
			Description: item.Description,
		})
	}

	allowed := view.AllowedStatuses
	if allowed == nil {
		allowed = []order.Status{}
	}

	return OrderResponse{
		ID:         view.ID,
		Restaurant: RestaurantSummary{ID: view.Restaurant.ID, Name: view.Restaurant.Name},
		Client: ClientSummary{
			ID:       view.Client.ID,
			Name:     view.Client.Name,
			Surname:  view.Client.Surname,
			Initials: kernel.Initials(view.Client.Name + " " + view.Client.Surname),
		},
		Status:          view.Status,
		AllowedStatuses: allowed,
		Items:           items,
		Total:           view.Total.StringFixed(2),
		CreatedAt:       view.CreatedAt,
		CompletedAt:     view.CompletedAt,
	}
}

func newOrderResponses(views []queries.OrderView) []OrderResponse {
	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = newOrderResponse(view)
	}
	return response
}

func parseID(paramName, raw string) (kernel.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(paramName)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// parseOptionalID returns nil for an empty value.
func parseOptionalID(paramName, raw string) (*kernel.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(paramName, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseStatus maps an empty value to order.Unknown, which commands treat as PENDING.
func parseStatus(raw string) (order.Status, error) {
	if strings.TrimSpace(raw) == "" {
		return order.Unknown, nil
	}
	return order.ParseStatus(raw)
}
