package history

import (
	"time"

	"earn-recycle-engine/internal/domain"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

// sampleRequests mirrors the seeded history: statuses
// [completed, processing, failed, completed, pending, completed, processing].
func sampleRequests() []domain.Request {
	return []domain.Request{
		{ID: "RCY-2024-001", RequestName: "Plastic Bottles Collection", Category: "Plastic", Status: domain.StatusCompleted,
			Submitted: ts("2024-03-15T08:30:00"), Collected: tsp("2024-03-15T14:45:00"),
			Location: "123 Green Street, Brooklyn", RecyclingCenter: "EcoGreen Recycling"},
		{ID: "RCY-2024-002", RequestName: "Mixed Paper & Cardboard", Category: "Paper & Cardboard", Status: domain.StatusProcessing,
			Submitted: ts("2024-03-14T09:15:00"), Collected: tsp("2024-03-14T16:20:00"),
			Location: "456 Eco Avenue, Manhattan", RecyclingCenter: "GreenCycle Corp"},
		{ID: "RCY-2024-003", RequestName: "Electronic Waste Pickup", Category: "Electronics", Status: domain.StatusFailed,
			Submitted: ts("2024-03-13T10:00:00"),
			Location: "789 Recycle Road, Queens", RecyclingCenter: "TechRecycle Solutions", FailureReason: "Items not prepared properly"},
		{ID: "RCY-2024-004", RequestName: "Glass Containers", Category: "Glass", Status: domain.StatusCompleted,
			Submitted: ts("2024-03-12T07:45:00"), Collected: tsp("2024-03-12T13:30:00"),
			Location: "321 Sustainability St, Bronx", RecyclingCenter: "Crystal Clear Recycling"},
		{ID: "RCY-2024-005", RequestName: "Metal Cans & Aluminum", Category: "Metal", Status: domain.StatusPending,
			Submitted: ts("2024-03-11T11:20:00"),
			Location: "654 Green Ave, Staten Island", RecyclingCenter: "MetalWorks Recycling"},
		{ID: "RCY-2024-006", RequestName: "Organic Composting", Category: "Organic", Status: domain.StatusCompleted,
			Submitted: ts("2024-03-10T06:30:00"), Collected: tsp("2024-03-10T12:15:00"),
			Location: "987 Compost Lane, Brooklyn", RecyclingCenter: "Green Earth Composting"},
		{ID: "RCY-2024-007", RequestName: "Textile & Clothing", Category: "Textiles", Status: domain.StatusProcessing,
			Submitted: ts("2024-03-09T14:00:00"), Collected: tsp("2024-03-09T18:30:00"),
			Location: "147 Fashion St, Manhattan", RecyclingCenter: "Textile Renewal Co"},
	}
}

func ids(rs []domain.Request) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}
