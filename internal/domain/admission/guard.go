package admission

// FailurePolicy names how a guard behaves when its own lookups fail.
// Availability-oriented guards (geo, temporal, content rights) fail open;
// guards protecting safety or billing integrity (entitlement, sessions,
// minor gate) fail closed. The asymmetry is deliberate and must stay
// visible in code rather than being an accident of error handling.
type FailurePolicy string

const (
	FailOpen   FailurePolicy = "open"
	FailClosed FailurePolicy = "closed"
)

// String returns the string representation
func (p FailurePolicy) String() string {
	return string(p)
}

// Result is the typed outcome of one guard. Guards never return errors
// for expected denial conditions; errors are reserved for infrastructure
// faults, which the orchestrator maps through the guard's FailurePolicy.
type Result struct {
	Allowed bool
	Code    DenyCode
	Message string
	Details map[string]any
}

// Allow returns a passing result
func Allow() Result {
	return Result{Allowed: true}
}

// Denied returns a failing result with a stable code
func Denied(code DenyCode, message string, details map[string]any) Result {
	return Result{
		Allowed: false,
		Code:    code,
		Message: message,
		Details: details,
	}
}
