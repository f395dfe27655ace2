package domain

// ComparisonInput is the raw text of both sides as typed or pasted by the user.
type ComparisonInput struct {
	Left  string
	Right string
}

// Text returns the raw text for the given side.
func (in ComparisonInput) Text(side Side) string {
	if side == SideRight {
		return in.Right
	}
	return in.Left
}

// WithText returns a copy of the input with the text of one side replaced.
func (in ComparisonInput) WithText(side Side, text string) ComparisonInput {
	if side == SideRight {
		in.Right = text
	} else {
		in.Left = text
	}
	return in
}

// ComparisonOptions are the options that change what the diff looks like.
// Presentation settings live in Settings and never reach the diff.
type ComparisonOptions struct {
	IgnoreWhitespace bool
	IgnoreCase       bool
}

// Side selects the original (left) or modified (right) text.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ParseSide maps a form value to a Side. Anything but "right" is the left side.
func ParseSide(v string) Side {
	if v == "right" {
		return SideRight
	}
	return SideLeft
}

// Chunk is one element of a line-diff primitive's output.
// Value holds whole lines, each terminated by a newline.
type Chunk struct {
	Value   string
	Added   bool
	Removed bool
}

// NotificationLevel is the severity of a user-facing notification.
type NotificationLevel int

const (
	NotifySuccess NotificationLevel = iota
	NotifyError
)

// Notification is a short message shown to the user as a toast.
type Notification struct {
	Level   NotificationLevel
	Message string
}
