package sale

import "github.com/kailas-cloud/backoffice/internal/domain"

// Status is the fulfillment state of an order.
type Status string

const (
	// StatusPending orders await confirmation.
	StatusPending Status = "pending"
	// StatusConfirmed orders are accepted and being prepared.
	StatusConfirmed Status = "confirmed"
	// StatusShipped orders are on their way to the customer.
	StatusShipped Status = "shipped"
	// StatusDelivered orders reached the customer. Terminal.
	StatusDelivered Status = "delivered"
	// StatusCancelled orders were called off. Terminal.
	StatusCancelled Status = "cancelled"
)

// Statuses lists every order status in lifecycle order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
	StatusDelivered: nil,
	StatusCancelled: nil,
}

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// NextStatuses returns the statuses reachable from s in one step.
func NextStatuses(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from -> to is in the transitions table.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	// PaymentPending orders are not yet paid.
	PaymentPending PaymentStatus = "pending"
	// PaymentPaid orders are settled.
	PaymentPaid PaymentStatus = "paid"
	// PaymentRefunded orders had their payment returned. Terminal.
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid},
	PaymentPaid:     {PaymentRefunded},
	PaymentRefunded: nil,
}

// IsValid checks if the payment status is supported.
func (p PaymentStatus) IsValid() bool {
	_, ok := paymentTransitions[p]
	return ok
}

// NextPaymentStatuses returns the payment statuses reachable from p in one step.
func NextPaymentStatuses(p PaymentStatus) []PaymentStatus {
	next := paymentTransitions[p]
	out := make([]PaymentStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionPayment reports whether from -> to is allowed.
func CanTransitionPayment(from, to PaymentStatus) bool {
	for _, p := range paymentTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

func transitionError[S ~string](from, to S) error {
	return domain.NewTransitionError(string(from), string(to))
}
