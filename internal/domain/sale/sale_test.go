package sale

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/backoffice/internal/domain"
)

var today = time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

func seed() []Sale {
	return []Sale{
		Reconstruct("VD001", Draft{
			CustomerName: "Ana Silva", PaymentMethod: "PIX", Total: 135.8, Date: "2024-01-15",
			Items: []Item{
				{ProductID: "1", ProductName: "Conjunto Fitness Rosa", Quantity: 1, Price: 89.9},
				{ProductID: "2", ProductName: "Top Esportivo Preto", Quantity: 1, Price: 45.9},
			},
		}, State{Status: StatusDelivered, PaymentStatus: PaymentPaid, DeliveryDate: "2024-01-18"}),
		Reconstruct("VD002", Draft{CustomerName: "Maria Santos", PaymentMethod: "Cartão de Crédito", Total: 240, Date: "2024-01-14"},
			State{Status: StatusShipped, PaymentStatus: PaymentPaid, DeliveryDate: "2024-01-17"}),
		Reconstruct("VD003", Draft{CustomerName: "Julia Costa", PaymentMethod: "Cartão de Débito", Total: 156.8, Date: "2024-01-13"},
			State{Status: StatusConfirmed, PaymentStatus: PaymentPaid}),
		Reconstruct("VD004", Draft{CustomerName: "Carla Oliveira", PaymentMethod: "PIX", Total: 246.9, Date: "2024-01-12"},
			State{Status: StatusPending, PaymentStatus: PaymentPending}),
	}
}

func TestNew_Defaults(t *testing.T) {
	s, err := New("VD005", Draft{CustomerName: "Bia", PaymentMethod: "PIX", Total: 50}, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status() != StatusPending || s.PaymentStatus() != PaymentPending {
		t.Errorf("expected pending/pending, got %s/%s", s.Status(), s.PaymentStatus())
	}
	if s.Date() != "2024-01-20" {
		t.Errorf("expected today's date, got %q", s.Date())
	}
	if s.Total() != 50 {
		t.Errorf("expected draft total 50, got %v", s.Total())
	}
	if s.Items() == nil {
		t.Error("items should be an empty slice, not nil")
	}
}

func TestNew_TotalFromItems(t *testing.T) {
	s, err := New("VD005", Draft{
		CustomerName:  "Bia",
		PaymentMethod: "PIX",
		Total:         1,
		Items: []Item{
			{ProductID: "1", Quantity: 1, Price: 89.9},
			{ProductID: "5", Quantity: 2, Price: 78.5},
		},
	}, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total() != 246.9 {
		t.Errorf("expected 246.9, got %v", s.Total())
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{"missing customer", Draft{PaymentMethod: "PIX"}},
		{"missing payment method", Draft{CustomerName: "Bia"}},
		{"item without product", Draft{CustomerName: "Bia", PaymentMethod: "PIX", Items: []Item{{Quantity: 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("VD009", tt.draft, today); !errors.Is(err, domain.ErrInvalidDraft) {
				t.Errorf("expected ErrInvalidDraft, got %v", err)
			}
		})
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusConfirmed, StatusShipped, true},
		{StatusConfirmed, StatusPending, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.ok {
				t.Errorf("CanTransition = %v, want %v", got, tt.ok)
			}
		})
	}
}

func TestNextStatuses_NoControlBackToPending(t *testing.T) {
	s, err := seed()[3].WithStatus(StatusConfirmed, today)
	if err != nil {
		t.Fatalf("pending -> confirmed: %v", err)
	}
	for _, next := range NextStatuses(s.Status()) {
		if next == StatusPending {
			t.Fatal("confirmed must not offer pending")
		}
	}
	if !StatusDelivered.IsTerminal() || !StatusCancelled.IsTerminal() || StatusShipped.IsTerminal() {
		t.Error("unexpected terminal set")
	}
}

func TestWithStatus_DeliveredStampsDate(t *testing.T) {
	shipped := seed()[1]
	got, err := shipped.WithStatus(StatusDelivered, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DeliveryDate() != "2024-01-20" {
		t.Errorf("expected delivery date stamped, got %q", got.DeliveryDate())
	}
	if shipped.Status() != StatusShipped {
		t.Error("receiver mutated")
	}
}

func TestWithStatus_Rejected(t *testing.T) {
	delivered := seed()[0]
	_, err := delivered.WithStatus(StatusCancelled, today)
	if !errors.Is(err, domain.ErrTransitionNotAllowed) {
		t.Fatalf("expected ErrTransitionNotAllowed, got %v", err)
	}
	var te *domain.TransitionError
	if !errors.As(err, &te) || te.From != "delivered" || te.To != "cancelled" {
		t.Errorf("unexpected transition error %v", err)
	}

	if _, err := delivered.WithStatus("lost", today); !errors.Is(err, domain.ErrInvalidDraft) {
		t.Errorf("expected ErrInvalidDraft for unknown status, got %v", err)
	}
}

func TestWithPaymentStatus(t *testing.T) {
	pending := seed()[3]
	paid, err := pending.WithPaymentStatus(PaymentPaid)
	if err != nil {
		t.Fatalf("pending -> paid: %v", err)
	}
	refunded, err := paid.WithPaymentStatus(PaymentRefunded)
	if err != nil {
		t.Fatalf("paid -> refunded: %v", err)
	}
	if _, err := refunded.WithPaymentStatus(PaymentPaid); !errors.Is(err, domain.ErrTransitionNotAllowed) {
		t.Errorf("expected refunded -> paid rejected, got %v", err)
	}
	if _, err := pending.WithPaymentStatus(PaymentRefunded); !errors.Is(err, domain.ErrTransitionNotAllowed) {
		t.Errorf("expected pending -> refunded rejected, got %v", err)
	}
}

func TestApply_KeepsLifecycle(t *testing.T) {
	s := seed()[1]
	phone := "(11) 90000-0000"
	got, err := s.Apply(Patch{CustomerPhone: &phone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomerPhone() != phone || got.Status() != StatusShipped || got.DeliveryDate() != "2024-01-17" {
		t.Errorf("unexpected result %+v", got)
	}

	blank := " "
	if _, err := s.Apply(Patch{CustomerName: &blank}); !errors.Is(err, domain.ErrInvalidDraft) {
		t.Errorf("expected ErrInvalidDraft, got %v", err)
	}
}

func TestCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"all", Criteria{Status: "all"}, []string{"VD001", "VD002", "VD003", "VD004"}},
		{"by customer", Criteria{Search: "maria"}, []string{"VD002"}},
		{"by id", Criteria{Search: "vd00"}, []string{"VD001", "VD002", "VD003", "VD004"}},
		{"by status", Criteria{Status: "pending"}, []string{"VD004"}},
		{"search and status", Criteria{Search: "a", Status: "paid"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.criteria.Project(seed())
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %d items", tt.want, len(got))
			}
			for i, id := range tt.want {
				if got[i].ID() != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID())
				}
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(seed())
	if s.TotalValue != 779.5 {
		t.Errorf("expected total 779.5, got %v", s.TotalValue)
	}
	if s.Pending != 1 || s.Delivered != 1 || s.Count != 4 {
		t.Errorf("unexpected counts %+v", s)
	}
	if s.PaidValue != 532.6 {
		t.Errorf("expected paid value 532.6, got %v", s.PaidValue)
	}
	if s.ByPaymentMethod["PIX"] != 2 || s.ByStatus["shipped"] != 1 {
		t.Errorf("unexpected breakdowns %v %v", s.ByPaymentMethod, s.ByStatus)
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
	}{
		{"complete", Draft{CustomerName: "Ana", PaymentMethod: "PIX"}, false},
		{"no customer", Draft{PaymentMethod: "PIX"}, true},
		{"no payment method", Draft{CustomerName: "Ana"}, true},
		{"item without product", Draft{CustomerName: "Ana", PaymentMethod: "PIX", Items: []Item{{Quantity: 1}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidDraft) {
				t.Errorf("expected ErrInvalidDraft, got %v", err)
			}
		})
	}
}
