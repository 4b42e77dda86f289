package billing

import (
	vo "github.com/ledgercloud/ledgercloud/internal/domain/billing/valueobjects"
)

// TenantPlanAuthorizer decides whether a tenant may subscribe to a plan. It
// is a pure, synchronous predicate evaluated after the plan has been
// resolved. The default policy allows every pairing; this interface is the
// seam where a real policy engine plugs in.
type TenantPlanAuthorizer interface {
	Allow(tenantID vo.TenantID, plan *Plan) bool
}

// AllowAllAuthorizer is the current authorization policy: every tenant is
// allowed on every plan.
type AllowAllAuthorizer struct{}

func (AllowAllAuthorizer) Allow(vo.TenantID, *Plan) bool {
	return true
}
