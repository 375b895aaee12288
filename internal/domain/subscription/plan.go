package subscription

import (
	"fmt"
	"time"

	vo "github.com/vistream-io/vistream/internal/domain/subscription/valueobjects"
)

// PlanStatus represents whether a plan can be sold or resolved
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "active"
	PlanStatusInactive PlanStatus = "inactive"
)

// Plan represents a subscription plan aggregate. Device and stream limits
// live here; for family-tier plans they apply household-wide.
type Plan struct {
	id            uint
	name          string
	slug          string
	tier          vo.PlanTier
	maxDevices    int
	maxStreams    int
	deviceClasses []vo.DeviceClass
	status        PlanStatus
	sortOrder     int
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPlan creates a new plan
func NewPlan(name, slug string, tier vo.PlanTier, maxDevices, maxStreams int, deviceClasses []vo.DeviceClass) (*Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier: %s", tier)
	}
	if maxDevices <= 0 {
		return nil, fmt.Errorf("device limit must be positive")
	}
	if maxStreams <= 0 {
		return nil, fmt.Errorf("stream limit must be positive")
	}
	for _, dc := range deviceClasses {
		if !dc.IsValid() {
			return nil, fmt.Errorf("invalid device class: %s", dc)
		}
	}

	now := time.Now()
	return &Plan{
		name:          name,
		slug:          slug,
		tier:          tier,
		maxDevices:    maxDevices,
		maxStreams:    maxStreams,
		deviceClasses: deviceClasses,
		status:        PlanStatusActive,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructPlan reconstructs a plan from persistence
func ReconstructPlan(
	id uint,
	name, slug string,
	tier vo.PlanTier,
	maxDevices, maxStreams int,
	deviceClasses []vo.DeviceClass,
	status PlanStatus,
	sortOrder, version int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier: %s", tier)
	}
	if status != PlanStatusActive && status != PlanStatusInactive {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	return &Plan{
		id:            id,
		name:          name,
		slug:          slug,
		tier:          tier,
		maxDevices:    maxDevices,
		maxStreams:    maxStreams,
		deviceClasses: deviceClasses,
		status:        status,
		sortOrder:     sortOrder,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID returns the plan ID
func (p *Plan) ID() uint {
	return p.id
}

// Name returns the plan name
func (p *Plan) Name() string {
	return p.name
}

// Slug returns the plan slug
func (p *Plan) Slug() string {
	return p.slug
}

// Tier returns the plan tier
func (p *Plan) Tier() vo.PlanTier {
	return p.tier
}

// MaxDevices returns the device slot limit
func (p *Plan) MaxDevices() int {
	return p.maxDevices
}

// MaxStreams returns the concurrent stream ceiling
func (p *Plan) MaxStreams() int {
	return p.maxStreams
}

// DeviceClasses returns the device classes the plan supports. An empty
// list means all classes are supported.
func (p *Plan) DeviceClasses() []vo.DeviceClass {
	return p.deviceClasses
}

// SupportsDeviceClass reports whether the plan admits the given device class
func (p *Plan) SupportsDeviceClass(dc vo.DeviceClass) bool {
	if len(p.deviceClasses) == 0 {
		return true
	}
	for _, c := range p.deviceClasses {
		if c == dc {
			return true
		}
	}
	return false
}

// Status returns the plan status
func (p *Plan) Status() PlanStatus {
	return p.status
}

// IsActive reports whether the plan can still be resolved
func (p *Plan) IsActive() bool {
	return p.status == PlanStatusActive
}

// SortOrder returns the display sort order
func (p *Plan) SortOrder() int {
	return p.sortOrder
}

// Version returns the aggregate version
func (p *Plan) Version() int {
	return p.version
}

// CreatedAt returns when the plan was created
func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the plan was last updated
func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}
