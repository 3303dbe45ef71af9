package statusbadge

type Status string

const (
	Online  Status = "online"
	Away    Status = "away"
	Offline Status = "offline"
)

var AllStatuses = []Status{Online, Away, Offline}

func (s Status) Text() string {
	switch s {
	case Online:
		return "Online"
	case Away:
		return "Away"
	default:
		return "Offline"
	}
}

func (s Status) DotClass() string {
	switch s {
	case Online:
		return "status-online"
	case Away:
		return "status-away"
	default:
		return "status-offline"
	}
}

type Badge struct {
	Status   Status `json:"status"`
	Text     string `json:"text"`
	DotClass string `json:"dot_class"`
}

// NewBadge renders "<label> - <Text>" when label is set, the bare text
// otherwise.
func NewBadge(s Status, label string) Badge {
	text := s.Text()
	if label != "" {
		text = label + " - " + text
	}
	return Badge{Status: s, Text: text, DotClass: s.DotClass()}
}
