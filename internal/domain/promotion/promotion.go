package promotion

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/backoffice/internal/domain"
)

// Type is the kind of discount a coupon grants.
type Type string

const (
	// TypePercentage discounts a share of the order total.
	TypePercentage Type = "percentage"
	// TypeFixed discounts a flat amount.
	TypeFixed Type = "fixed"
	// TypeFreeShipping waives the delivery fee.
	TypeFreeShipping Type = "freeShipping"
)

// Types lists every promotion type.
var Types = []Type{TypePercentage, TypeFixed, TypeFreeShipping}

// IsValid checks if the promotion type is supported.
func (t Type) IsValid() bool {
	return t == TypePercentage || t == TypeFixed || t == TypeFreeShipping
}

// DefaultUsageLimit applies when a draft does not set one.
const DefaultUsageLimit = 100

// Draft carries every coupon field except the identifier and usage count.
type Draft struct {
	Name             string
	Code             string
	Type             Type
	Value            float64
	Description      string
	StartDate        string
	EndDate          string
	UsageLimit       int
	MinOrderValue    float64
	IsActive         bool
	TargetProducts   []string
	TargetCategories []string
}

// Promotion is the coupon aggregate (immutable value object).
type Promotion struct {
	id               string
	name             string
	code             string
	kind             Type
	value            float64
	description      string
	startDate        string
	endDate          string
	usageLimit       int
	usageCount       int
	minOrderValue    float64
	isActive         bool
	targetProducts   []string
	targetCategories []string
}

// normalize upper-cases the code, zeroes the value of free shipping coupons
// and fills the defaults.
func normalize(d Draft) Draft {
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	if d.Type == "" {
		d.Type = TypePercentage
	}
	if d.Type == TypeFreeShipping {
		d.Value = 0
	}
	if d.UsageLimit <= 0 {
		d.UsageLimit = DefaultUsageLimit
	}
	return d
}

func validate(d Draft) error {
	if err := domain.Required("name", d.Name); err != nil {
		return err
	}
	if err := domain.Required("code", d.Code); err != nil {
		return err
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("invalid type %q: %w", d.Type, domain.ErrInvalidDraft)
	}
	return nil
}

// New validates a draft and creates a Promotion with zero usage.
func New(id string, d Draft) (Promotion, error) {
	d = normalize(d)
	if err := validate(d); err != nil {
		return Promotion{}, err
	}
	return Reconstruct(id, d, 0), nil
}

// Reconstruct creates a Promotion without validation (seed hydration).
func Reconstruct(id string, d Draft, usageCount int) Promotion {
	return Promotion{
		id:               id,
		name:             d.Name,
		code:             d.Code,
		kind:             d.Type,
		value:            d.Value,
		description:      d.Description,
		startDate:        d.StartDate,
		endDate:          d.EndDate,
		usageLimit:       d.UsageLimit,
		usageCount:       usageCount,
		minOrderValue:    d.MinOrderValue,
		isActive:         d.IsActive,
		targetProducts:   cloneStrings(d.TargetProducts),
		targetCategories: cloneStrings(d.TargetCategories),
	}
}

// EntityID returns the collection key of the coupon.
func (p Promotion) EntityID() string { return p.id }

// ID returns the identifier of the coupon.
func (p Promotion) ID() string { return p.id }

// Name returns the display name.
func (p Promotion) Name() string { return p.name }

// Code returns the coupon code customers type.
func (p Promotion) Code() string { return p.code }

// Type returns the discount kind.
func (p Promotion) Type() Type { return p.kind }

// Value returns the discount amount or percentage.
func (p Promotion) Value() float64 { return p.value }

// Description returns the free-text description.
func (p Promotion) Description() string { return p.description }

// StartDate returns the first valid day.
func (p Promotion) StartDate() string { return p.startDate }

// EndDate returns the last valid day.
func (p Promotion) EndDate() string { return p.endDate }

// UsageLimit returns the maximum redemptions, 0 for unlimited.
func (p Promotion) UsageLimit() int { return p.usageLimit }

// UsageCount returns how many times the coupon was redeemed.
func (p Promotion) UsageCount() int { return p.usageCount }

// MinOrderValue returns the smallest order total the coupon applies to.
func (p Promotion) MinOrderValue() float64 { return p.minOrderValue }

// IsActive reports whether the coupon is switched on.
func (p Promotion) IsActive() bool { return p.isActive }

// TargetProducts returns a copy of the product ids the coupon is limited to.
func (p Promotion) TargetProducts() []string { return cloneStrings(p.targetProducts) }

// TargetCategories returns a copy of the categories the coupon is limited to.
func (p Promotion) TargetCategories() []string { return cloneStrings(p.targetCategories) }

func (p Promotion) typeString() string { return string(p.kind) }

// Draft returns the editable fields of p.
func (p Promotion) Draft() Draft {
	return Draft{
		Name:             p.name,
		Code:             p.code,
		Type:             p.kind,
		Value:            p.value,
		Description:      p.description,
		StartDate:        p.startDate,
		EndDate:          p.endDate,
		UsageLimit:       p.usageLimit,
		MinOrderValue:    p.minOrderValue,
		IsActive:         p.isActive,
		TargetProducts:   cloneStrings(p.targetProducts),
		TargetCategories: cloneStrings(p.targetCategories),
	}
}

// Toggle flips the active flag.
func (p Promotion) Toggle() Promotion {
	p.targetProducts = cloneStrings(p.targetProducts)
	p.targetCategories = cloneStrings(p.targetCategories)
	p.isActive = !p.isActive
	return p
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name             *string
	Code             *string
	Type             *Type
	Value            *float64
	Description      *string
	StartDate        *string
	EndDate          *string
	UsageLimit       *int
	MinOrderValue    *float64
	IsActive         *bool
	TargetProducts   *[]string
	TargetCategories *[]string
}

// Apply returns p with the patch applied. Usage count is preserved.
func (p Promotion) Apply(patch Patch) (Promotion, error) {
	d := p.Draft()
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Code != nil {
		d.Code = *patch.Code
	}
	if patch.Type != nil {
		d.Type = *patch.Type
	}
	if patch.Value != nil {
		d.Value = *patch.Value
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.StartDate != nil {
		d.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		d.EndDate = *patch.EndDate
	}
	if patch.UsageLimit != nil {
		d.UsageLimit = *patch.UsageLimit
	}
	if patch.MinOrderValue != nil {
		d.MinOrderValue = *patch.MinOrderValue
	}
	if patch.IsActive != nil {
		d.IsActive = *patch.IsActive
	}
	if patch.TargetProducts != nil {
		d.TargetProducts = *patch.TargetProducts
	}
	if patch.TargetCategories != nil {
		d.TargetCategories = *patch.TargetCategories
	}
	d = normalize(d)
	if err := validate(d); err != nil {
		return Promotion{}, err
	}
	return Reconstruct(p.id, d, p.usageCount), nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
