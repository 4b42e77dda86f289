package billing

import (
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// Plan is a billable offering from the plan catalog. The catalog is owned and
// mutated elsewhere; from this domain's perspective a plan is a read-only
// record. MaxSeats >= 1 is expected but enforced by the catalog owner, not
// here.
type Plan struct {
	ID                 vo.PlanID
	Name               string
	MaxSeats           uint32
	RequiresCardOnFile bool
}
