package sale

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/backoffice/internal/domain"
	"github.com/kailas-cloud/backoffice/internal/domain/aggregate"
)

// IDPrefix and IDWidth shape order identifiers: VD001, VD002, ...
const (
	IDPrefix = "VD"
	IDWidth  = 3
)

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"PIX", "Cartão de Crédito", "Cartão de Débito", "Dinheiro"}

// Item is one order line. Product name and price are copied at order time.
type Item struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       float64
}

// Subtotal returns quantity times price.
func (i Item) Subtotal() float64 {
	return aggregate.Mul(i.Price, float64(i.Quantity))
}

// Draft carries the fields a new order is created from.
type Draft struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []Item
	Total           float64
	PaymentMethod   string
	Date            string
}

// State carries the lifecycle fields restored from a snapshot.
type State struct {
	Status        Status
	PaymentStatus PaymentStatus
	DeliveryDate  string
}

// Sale is the order aggregate (immutable value object).
type Sale struct {
	id              string
	customerName    string
	customerPhone   string
	customerAddress string
	items           []Item
	total           float64
	status          Status
	paymentMethod   string
	paymentStatus   PaymentStatus
	date            string
	deliveryDate    string
}

// Validate reports whether d carries the fields New requires.
func (d Draft) Validate() error {
	if err := domain.Required("customerName", d.CustomerName); err != nil {
		return err
	}
	if err := domain.Required("paymentMethod", d.PaymentMethod); err != nil {
		return err
	}
	for i, it := range d.Items {
		if domain.IsBlank(it.ProductID) {
			return fmt.Errorf("item %d: %w", i, &domain.MissingFieldError{Field: "productId"})
		}
	}
	return nil
}

// ItemsTotal sums the order lines.
func ItemsTotal(items []Item) float64 {
	return aggregate.Sum(items, Item.Subtotal)
}

// New validates a draft and creates a pending, unpaid order dated today unless
// the draft carries a date. A draft with items gets its total from the lines.
func New(id string, d Draft, now time.Time) (Sale, error) {
	if err := d.Validate(); err != nil {
		return Sale{}, err
	}
	if d.Date == "" {
		d.Date = domain.Today(now)
	}
	if len(d.Items) > 0 {
		d.Total = ItemsTotal(d.Items)
	}
	return Reconstruct(id, d, State{Status: StatusPending, PaymentStatus: PaymentPending}), nil
}

// Reconstruct creates a Sale without validation (seed hydration).
func Reconstruct(id string, d Draft, st State) Sale {
	return Sale{
		id:              id,
		customerName:    d.CustomerName,
		customerPhone:   d.CustomerPhone,
		customerAddress: d.CustomerAddress,
		items:           cloneItems(d.Items),
		total:           d.Total,
		status:          st.Status,
		paymentMethod:   d.PaymentMethod,
		paymentStatus:   st.PaymentStatus,
		date:            d.Date,
		deliveryDate:    st.DeliveryDate,
	}
}

// EntityID returns the collection key of the order.
func (s Sale) EntityID() string { return s.id }

// ID returns the identifier of the order.
func (s Sale) ID() string { return s.id }

// CustomerName returns the buyer name.
func (s Sale) CustomerName() string { return s.customerName }

// CustomerPhone returns the buyer phone.
func (s Sale) CustomerPhone() string { return s.customerPhone }

// CustomerAddress returns the delivery address.
func (s Sale) CustomerAddress() string { return s.customerAddress }

// Items returns a copy of the order lines.
func (s Sale) Items() []Item { return cloneItems(s.items) }

// Total returns the order total.
func (s Sale) Total() float64 { return s.total }

// Status returns the fulfillment state.
func (s Sale) Status() Status { return s.status }

// PaymentMethod returns how the customer pays.
func (s Sale) PaymentMethod() string { return s.paymentMethod }

// PaymentStatus returns the settlement state.
func (s Sale) PaymentStatus() PaymentStatus { return s.paymentStatus }

// Date returns the record date as YYYY-MM-DD.
func (s Sale) Date() string { return s.date }

// DeliveryDate returns the delivery date, empty until delivered.
func (s Sale) DeliveryDate() string { return s.deliveryDate }

func (s Sale) statusString() string        { return string(s.status) }
func (s Sale) paymentStatusString() string { return string(s.paymentStatus) }

// Draft returns the editable fields of s.
func (s Sale) Draft() Draft {
	return Draft{
		CustomerName:    s.customerName,
		CustomerPhone:   s.customerPhone,
		CustomerAddress: s.customerAddress,
		Items:           cloneItems(s.items),
		Total:           s.total,
		PaymentMethod:   s.paymentMethod,
		Date:            s.date,
	}
}

func (s Sale) state() State {
	return State{Status: s.status, PaymentStatus: s.paymentStatus, DeliveryDate: s.deliveryDate}
}

// WithStatus moves the order along the transitions table. Delivering an
// order stamps its delivery date with today.
func (s Sale) WithStatus(to Status, now time.Time) (Sale, error) {
	if !to.IsValid() {
		return Sale{}, fmt.Errorf("unknown status %q: %w", to, domain.ErrInvalidDraft)
	}
	if !CanTransition(s.status, to) {
		return Sale{}, transitionError(s.status, to)
	}
	s.items = cloneItems(s.items)
	s.status = to
	if to == StatusDelivered {
		s.deliveryDate = domain.Today(now)
	}
	return s, nil
}

// WithPaymentStatus moves the payment along its transitions table.
func (s Sale) WithPaymentStatus(to PaymentStatus) (Sale, error) {
	if !to.IsValid() {
		return Sale{}, fmt.Errorf("unknown payment status %q: %w", to, domain.ErrInvalidDraft)
	}
	if !CanTransitionPayment(s.paymentStatus, to) {
		return Sale{}, transitionError(s.paymentStatus, to)
	}
	s.items = cloneItems(s.items)
	s.paymentStatus = to
	return s, nil
}

// Patch edits customer and payment details. Status fields move only
// through WithStatus and WithPaymentStatus.
type Patch struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	Items           *[]Item
	Total           *float64
	PaymentMethod   *string
}

// Apply returns s with the patch applied. Replacing the items recomputes the total.
func (s Sale) Apply(p Patch) (Sale, error) {
	d := s.Draft()
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		d.CustomerPhone = *p.CustomerPhone
	}
	if p.CustomerAddress != nil {
		d.CustomerAddress = *p.CustomerAddress
	}
	if p.Total != nil {
		d.Total = *p.Total
	}
	if p.Items != nil {
		d.Items = *p.Items
		if len(d.Items) > 0 {
			d.Total = ItemsTotal(d.Items)
		}
	}
	if p.PaymentMethod != nil {
		d.PaymentMethod = *p.PaymentMethod
	}
	if err := d.Validate(); err != nil {
		return Sale{}, err
	}
	return Reconstruct(s.id, d, s.state()), nil
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
