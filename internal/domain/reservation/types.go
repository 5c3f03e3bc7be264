package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus accepts only the canonical lowercase spelling.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// IsActive reports whether a reservation in this status holds its slot.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

// CanTransitionTo allows pending→approved, pending|approved→cancelled and same-state writes.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return next.IsValid()
	}
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}
