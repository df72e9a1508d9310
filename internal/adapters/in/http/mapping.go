package http

import (
	"errors"
	"fmt"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

func placeOrderCommand(body servers.NewOrder) (commands.PlaceOrderCommand, error) {
	id := kernel.NewUUID()
	if body.Id != nil {
		parsed, err := kernel.UUIDOf(*body.Id)
		if err != nil {
			return commands.PlaceOrderCommand{}, err
		}
		id = parsed
	}

	customer, err := kernel.NewContact(body.Customer.Name, string(body.Customer.Email), deref(body.Customer.Phone))
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	address, err := kernel.NewAddress(
		body.ShippingAddress.Line1,
		deref(body.ShippingAddress.Line2),
		body.ShippingAddress.City,
		deref(body.ShippingAddress.Region),
		body.ShippingAddress.PostalCode,
		body.ShippingAddress.Country,
	)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	shippingCost, err := parseMoney("shippingCost", body.ShippingCost, body.Currency)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	var problems []error
	items := make([]order.LineItem, 0, len(body.Lines))
	for i, line := range body.Lines {
		unitPrice, priceErr := parseMoney(fmt.Sprintf("lines[%d].unitPrice", i), line.UnitPrice, body.Currency)
		if priceErr != nil {
			problems = append(problems, priceErr)
			continue
		}

		variant := order.Variant{Color: deref(line.Color), Size: deref(line.Size)}
		item, itemErr := order.NewLineItem(line.ProductName, variant, line.Quantity, unitPrice)
		if itemErr != nil {
			problems = append(problems, fmt.Errorf("lines[%d]: %w", i, itemErr))
			continue
		}
		items = append(items, item)
	}
	if len(problems) > 0 {
		return commands.PlaceOrderCommand{}, errors.Join(problems...)
	}

	return commands.NewPlaceOrderCommand(id, customer, address, items, shippingCost)
}

func parseMoney(field, amount, currency string) (kernel.Money, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return kernel.Money{}, fmt.Errorf("%s: %q is not a decimal amount", field, amount)
	}
	money, err := kernel.NewMoney(value, currency)
	if err != nil {
		return kernel.Money{}, fmt.Errorf("%s: %w", field, err)
	}
	return money, nil
}

func (s *Server) orderDetails(o *order.Order) servers.OrderDetails {
	customer := o.Customer()
	address := o.ShippingAddress()
	amounts := o.Amounts()

	lines := make([]servers.LineItem, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		lines = append(lines, servers.LineItem{
			ProductName: item.ProductName(),
			Color:       optional(item.Variant().Color),
			Size:        optional(item.Variant().Size),
			Quantity:    item.Quantity(),
			UnitPrice:   toMoney(item.UnitPrice()),
			LineTotal:   toMoney(item.LineTotal()),
		})
	}

	details := servers.OrderDetails{
		Id:     o.ID().Value(),
		Status: servers.OrderStatus(o.Status().String()),
		Customer: servers.Customer{
			Name:  customer.Name(),
			Email: openapi_types.Email(customer.Email()),
			Phone: optional(customer.Phone()),
		},
		ShippingAddress: servers.Address{
			Line1:      address.Line1(),
			Line2:      optional(address.Line2()),
			City:       address.City(),
			Region:     optional(address.Region()),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		Lines:               lines,
		Subtotal:            toMoney(amounts.Subtotal()),
		ShippingCost:        toMoney(amounts.Shipping()),
		Total:               toMoney(amounts.Total()),
		AllowedNextStatuses: toStatuses(o.Status().Successors()),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		TrackingNotifiedAt:  o.TrackingNotifiedAt(),
		Version:             o.Version(),
	}
	if tracking := o.Tracking(); tracking != nil {
		details.Tracking = s.tracking(tracking.TrackingNumber(), tracking.ShippingCarrier())
	}
	return details
}

func (s *Server) orderDetailsFromQuery(r queries.GetOrderDetailsQueryResponse) servers.OrderDetails {
	lines := make([]servers.LineItem, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, servers.LineItem{
			ProductName: line.ProductName,
			Color:       optional(line.Color),
			Size:        optional(line.Size),
			Quantity:    line.Quantity,
			UnitPrice:   toMoney(line.UnitPrice),
			LineTotal:   toMoney(line.LineTotal),
		})
	}

	details := servers.OrderDetails{
		Id:     r.ID.Value(),
		Status: servers.OrderStatus(r.Status.String()),
		Customer: servers.Customer{
			Name:  r.Customer.Name,
			Email: openapi_types.Email(r.Customer.Email),
			Phone: optional(r.Customer.Phone),
		},
		ShippingAddress: servers.Address{
			Line1:      r.ShippingAddress.Line1,
			Line2:      optional(r.ShippingAddress.Line2),
			City:       r.ShippingAddress.City,
			Region:     optional(r.ShippingAddress.Region),
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    r.ShippingAddress.Country,
		},
		Lines:               lines,
		Subtotal:            toMoney(r.Subtotal),
		ShippingCost:        toMoney(r.ShippingCost),
		Total:               toMoney(r.Total),
		AllowedNextStatuses: toStatuses(r.AllowedNextStatuses()),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		TrackingNotifiedAt:  r.TrackingNotifiedAt,
		Version:             r.Version,
	}
	if r.Tracking != nil {
		details.Tracking = s.tracking(r.Tracking.TrackingNumber, r.Tracking.ShippingCarrier)
	}
	return details
}

func (s *Server) tracking(number, carrierName string) *servers.Tracking {
	tracking := &servers.Tracking{TrackingNumber: number, ShippingCarrier: carrierName}
	if url, ok := s.carriers.TrackingURL(carrierName, number); ok {
		tracking.TrackingUrl = &url
	}
	return tracking
}

func (s *Server) transitionResponse(result commands.TransitionResult) servers.TransitionResponse {
	response := servers.TransitionResponse{
		Outcome:          servers.TransitionResponseOutcome(result.Outcome),
		PreviousStatus:   servers.OrderStatus(result.PreviousStatus.String()),
		NotificationSent: result.NotificationSent,
		Order:            s.orderDetails(result.Order),
	}
	if result.IsPartial() {
		warning := partialSuccessWarning
		response.Warning = &warning
	}
	return response
}

func toOrderPage(r queries.ListOrdersQueryResponse) servers.OrderPage {
	items := make([]servers.OrderSummary, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, servers.OrderSummary{
			Id:            item.ID.Value(),
			Status:        servers.OrderStatus(item.Status.String()),
			CustomerName:  item.CustomerName,
			CustomerEmail: item.CustomerEmail,
			Total:         toMoney(item.Total),
			ItemCount:     item.ItemCount,
			CreatedAt:     item.CreatedAt,
			UpdatedAt:     item.UpdatedAt,
		})
	}
	return servers.OrderPage{Items: items, Total: r.Total, Page: r.Page, PerPage: r.PerPage}
}

func toValidationOutcome(o queries.ValidationOutcome) servers.ValidationOutcome {
	outcome := servers.ValidationOutcome{
		Allowed:        o.Allowed,
		AllowedTargets: toStatuses(o.AllowedTargets),
		RequiredFields: o.RequiredFields,
	}
	if outcome.RequiredFields == nil {
		outcome.RequiredFields = []string{}
	}
	if !o.Allowed {
		reason := string(o.Reason)
		outcome.Reason = &reason
		outcome.Message = optional(o.Message)
	}
	return outcome
}

func toMoney(m kernel.Money) servers.Money {
	return servers.Money{
		Amount:    m.Amount().StringFixed(2),
		Currency:  m.Currency(),
		Formatted: m.Format(),
	}
}

func toStatuses(statuses []order.Status) []servers.OrderStatus {
	result := make([]servers.OrderStatus, 0, len(statuses))
	for _, status := range statuses {
		result = append(result, servers.OrderStatus(status.String()))
	}
	return result
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
