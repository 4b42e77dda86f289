// Package valueobjects contains the identifier value types of the billing
// domain. Each identifier wraps a non-empty opaque string token; equality is
// structural and the types are comparable, so they can be used directly as
// map keys or compared with ==.
package valueobjects

import "fmt"

// TenantID identifies the customer account requesting a subscription.
type TenantID struct {
	value string
}

// NewTenantID creates a TenantID from an external token.
func NewTenantID(value string) (TenantID, error) {
	if value == "" {
		return TenantID{}, fmt.Errorf("tenant ID cannot be empty")
	}
	return TenantID{value: value}, nil
}

func (id TenantID) String() string {
	return id.value
}

// IsZero reports whether the identifier is the uninitialized zero value.
func (id TenantID) IsZero() bool {
	return id.value == ""
}

// PlanID identifies a billable plan in the catalog.
type PlanID struct {
	value string
}

// NewPlanID creates a PlanID from an external token.
func NewPlanID(value string) (PlanID, error) {
	if value == "" {
		return PlanID{}, fmt.Errorf("plan ID cannot be empty")
	}
	return PlanID{value: value}, nil
}

func (id PlanID) String() string {
	return id.value
}

func (id PlanID) IsZero() bool {
	return id.value == ""
}

// SubscriptionID identifies a durable subscription record. It is assigned by
// the persistence layer at insert time and never constructed by callers from
// scratch.
type SubscriptionID struct {
	value string
}

// NewSubscriptionID creates a SubscriptionID from a persistence-assigned token.
func NewSubscriptionID(value string) (SubscriptionID, error) {
	if value == "" {
		return SubscriptionID{}, fmt.Errorf("subscription ID cannot be empty")
	}
	return SubscriptionID{value: value}, nil
}

func (id SubscriptionID) String() string {
	return id.value
}

func (id SubscriptionID) IsZero() bool {
	return id.value == ""
}
