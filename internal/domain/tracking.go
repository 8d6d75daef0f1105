package domain

// StatusType groups tracking display statuses ("In Transit", "On Pickup", ...).
type StatusType string

const (
	StatusTypeProgress  StatusType = "progress"
	StatusTypeActive    StatusType = "active"
	StatusTypeCompleted StatusType = "completed"
)

type Stop struct {
	Address string `json:"address"`
	Time    string `json:"time"`
}

type Driver struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// LatLng is carried as display data only; nothing computes with it.
type LatLng [2]float64

type Coordinates struct {
	Pickup      LatLng `json:"pickup"`
	Destination LatLng `json:"destination"`
	Current     LatLng `json:"current"`
}

type TrackingItem struct {
	ID          int64       `json:"id"`
	Route       string      `json:"route"`
	OrderID     string      `json:"orderId"`
	Status      string      `json:"status"`
	StatusType  StatusType  `json:"statusType"`
	Pickup      Stop        `json:"pickup"`
	Destination Stop        `json:"destination"`
	Driver      Driver      `json:"driver"`
	Items       []string    `json:"items"`
	Coordinates Coordinates `json:"coordinates"`
}
