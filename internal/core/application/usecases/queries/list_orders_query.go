package queries

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	MinPerPage     = 1
	MaxPerPage     = 100
	DefaultPerPage = 20
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first.
//
// Example:
//
//	shipped := order.Shipped
//	query, err := NewListOrdersQuery(&shipped, 1, 50)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d shipped orders\n", len(page.Items), page.Total)
type ListOrdersQuery struct {
	status  *order.Status
	page    int
	perPage int
	guard   guard.ConstructorGuard
}

// NewListOrdersQuery validates paging. page starts at 1; status may be nil
// to list every order.
func NewListOrdersQuery(status *order.Status, page, perPage int) (ListOrdersQuery, error) {
	var problems []error
	if status != nil {
		if err := status.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if page < 1 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is less than 1", page)))
	}
	if perPage < MinPerPage || perPage > MaxPerPage {
		problems = append(problems, errs.NewValueIsOutOfRangeError("perPage", perPage, MinPerPage, MaxPerPage))
	}
	if len(problems) > 0 {
		return ListOrdersQuery{}, errors.Join(problems...)
	}

	return ListOrdersQuery{
		status:  status,
		page:    page,
		perPage: perPage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() *order.Status { return q.status }
func (q ListOrdersQuery) Page() int             { return q.page }
func (q ListOrdersQuery) PerPage() int          { return q.perPage }

func (q ListOrdersQuery) offset() int {
	return (q.page - 1) * q.perPage
}

// ListOrdersQueryResponse is one page of order summaries.
type ListOrdersQueryResponse struct {
	Items   []OrderSummary
	Total   int64
	Page    int
	PerPage int
}

// OrderSummary is a row of the back-office order list.
type OrderSummary struct {
	ID            kernel.UUID
	Status        order.Status
	CustomerName  string
	CustomerEmail string
	Total         kernel.Money
	ItemCount     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
