package history

import "earn-recycle-engine/internal/domain"

type Presentation struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Bg    string `json:"bg"`
	Label string `json:"label"`
}

var presentations = map[domain.Status]Presentation{
	domain.StatusCompleted:  {Icon: "check-circle", Color: "text-green-600", Bg: "bg-green-100", Label: "Completed"},
	domain.StatusProcessing: {Icon: "clock", Color: "text-yellow-600", Bg: "bg-yellow-100", Label: "Processing"},
	domain.StatusPending:    {Icon: "clock", Color: "text-blue-600", Bg: "bg-blue-100", Label: "Pending"},
	domain.StatusFailed:     {Icon: "exclamation-triangle", Color: "text-red-600", Bg: "bg-red-100", Label: "Failed"},
}

var unknownPresentation = Presentation{Icon: "clock", Color: "text-gray-600", Bg: "bg-gray-100", Label: "Unknown"}

// Presenter maps statuses to their badge. Labels, keyed by status, replace
// the default English label when present.
type Presenter struct {
	Labels map[string]string
}

func (p Presenter) Present(s domain.Status) Presentation {
	pr, ok := presentations[s]
	if !ok {
		pr = unknownPresentation
	}
	if l := p.Labels[string(s)]; l != "" && ok {
		pr.Label = l
	}
	return pr
}

// PresentStatus uses the default labels.
func PresentStatus(s domain.Status) Presentation {
	return Presenter{}.Present(s)
}
