package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
}

type Origin string

const (
	OriginWeb    Origin = "web"
	OriginMobile Origin = "mobile"
)

func (o Origin) String() string {
	return string(o)
}

// ParseOrigin maps a channel name to an Origin. Unknown or empty channels are web.
func ParseOrigin(channel string) Origin {
	if Origin(channel) == OriginMobile {
		return OriginMobile
	}
	return OriginWeb
}
