package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"earn-recycle-engine/internal/domain"
)

type SeedCounts struct {
	Requests   int `json:"requests"`
	Tracking   int `json:"tracking"`
	Centers    int `json:"centers"`
	Categories int `json:"categories"`
	Profile    int `json:"profile"`
}

func (c SeedCounts) Total() int {
	return c.Requests + c.Tracking + c.Centers + c.Categories + c.Profile
}

// SeedCatalog inserts the reference catalog. Rows that already exist are
// left untouched, so running it again adds nothing.
func SeedCatalog(ctx context.Context, db *sql.DB) (SeedCounts, error) {
	var n SeedCounts

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return n, err
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range ReferenceRequests() {
		added, err := InsertRequestIgnore(ctx, tx, r)
		if err != nil {
			return SeedCounts{}, err
		}
		if added {
			n.Requests++
		}
	}
	for _, it := range ReferenceTracking() {
		added, err := InsertTrackingIgnore(ctx, tx, it)
		if err != nil {
			return SeedCounts{}, err
		}
		if added {
			n.Tracking++
		}
	}
	for _, c := range ReferenceCenters() {
		added, err := insertCenterIgnore(ctx, tx, c)
		if err != nil {
			return SeedCounts{}, err
		}
		if added {
			n.Centers++
		}
	}
	for _, c := range ReferenceCategories() {
		added, err := insertCategoryIgnore(ctx, tx, c)
		if err != nil {
			return SeedCounts{}, err
		}
		if added {
			n.Categories++
		}
	}
	added, err := insertProfileIgnore(ctx, tx, ReferenceProfile())
	if err != nil {
		return SeedCounts{}, err
	}
	if added {
		n.Profile++
	}

	if err := tx.Commit(); err != nil {
		return SeedCounts{}, fmt.Errorf("seed catalog: %w", err)
	}
	return n, nil
}

func wall(s string) time.Time {
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func wallp(s string) *time.Time {
	t := wall(s)
	return &t
}

func ReferenceRequests() []domain.Request {
	return []domain.Request{
		{
			ID: "RCY-2024-001", RequestName: "Plastic Bottles Collection", Category: "Plastic",
			Status: domain.StatusCompleted, Submitted: wall("2024-03-15T08:30:00"), Collected: wallp("2024-03-15T14:45:00"),
			Duration: "6 hours 15 minutes", Weight: "5.2 kg", Earnings: "$2.60",
			Location: "123 Green Street, Brooklyn", RecyclingCenter: "EcoGreen Recycling",
		},
		{
			ID: "RCY-2024-002", RequestName: "Mixed Paper & Cardboard", Category: "Paper & Cardboard",
			Status: domain.StatusProcessing, Submitted: wall("2024-03-14T09:15:00"), Collected: wallp("2024-03-14T16:20:00"),
			Duration: "7 hours 5 minutes", Weight: "8.7 kg", Earnings: "$4.35",
			Location: "456 Eco Avenue, Manhattan", RecyclingCenter: "GreenCycle Corp",
		},
		{
			ID: "RCY-2024-003", RequestName: "Electronic Waste Pickup", Category: "Electronics",
			Status: domain.StatusFailed, Submitted: wall("2024-03-13T10:00:00"),
			Duration: "N/A", Weight: "0 kg", Earnings: "$0.00",
			Location: "789 Recycle Road, Queens", RecyclingCenter: "TechRecycle Solutions",
			FailureReason: "Items not prepared properly",
		},
		{
			ID: "RCY-2024-004", RequestName: "Glass Containers", Category: "Glass",
			Status: domain.StatusCompleted, Submitted: wall("2024-03-12T07:45:00"), Collected: wallp("2024-03-12T13:30:00"),
			Duration: "5 hours 45 minutes", Weight: "4.2 kg", Earnings: "$1.05",
			Location: "321 Sustainability St, Bronx", RecyclingCenter: "Crystal Clear Recycling",
		},
		{
			ID: "RCY-2024-005", RequestName: "Metal Cans & Aluminum", Category: "Metal",
			Status: domain.StatusPending, Submitted: wall("2024-03-11T11:20:00"),
			Duration: "Pending collection", Weight: "Est. 6.8 kg", Earnings: "Est. $6.80",
			Location: "654 Green Ave, Staten Island", RecyclingCenter: "MetalWorks Recycling",
		},
		{
			ID: "RCY-2024-006", RequestName: "Organic Composting", Category: "Organic",
			Status: domain.StatusCompleted, Submitted: wall("2024-03-10T06:30:00"), Collected: wallp("2024-03-10T12:15:00"),
			Duration: "5 hours 45 minutes", Weight: "12.3 kg", Earnings: "$3.69",
			Location: "987 Compost Lane, Brooklyn", RecyclingCenter: "Green Earth Composting",
		},
		{
			ID: "RCY-2024-007", RequestName: "Textile & Clothing", Category: "Textiles",
			Status: domain.StatusProcessing, Submitted: wall("2024-03-09T14:00:00"), Collected: wallp("2024-03-09T18:30:00"),
			Duration: "4 hours 30 minutes", Weight: "3.1 kg", Earnings: "$1.55",
			Location: "147 Fashion St, Manhattan", RecyclingCenter: "Textile Renewal Co",
		},
	}
}

const avatarQuery = "?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"

func ReferenceTracking() []domain.TrackingItem {
	return []domain.TrackingItem{
		{
			ID: 1, Route: "Brooklyn → Manhattan", OrderID: "RCY-14398-98567",
			Status: "In Transit", StatusType: domain.StatusTypeProgress,
			Pickup:      domain.Stop{Address: "456 Elm Street, Brooklyn, NY 11201, USA", Time: "10:30 AM"},
			Destination: domain.Stop{Address: "EcoGreen Recycling Center, Manhattan, NY 10001, USA", Time: "Expected: 2:30 PM"},
			Driver:      domain.Driver{Name: "Sarah Johnson", Role: "Pickup Driver", Avatar: "https://images.unsplash.com/photo-1494790108755-2616b671b4c3" + avatarQuery},
			Items:       []string{"5kg Plastic bottles", "3kg Glass containers", "2kg Aluminum cans"},
			Coordinates: domain.Coordinates{
				Pickup: domain.LatLng{40.6892, -73.9442}, Destination: domain.LatLng{40.7505, -73.9934}, Current: domain.LatLng{40.7200, -73.9700},
			},
		},
		{
			ID: 2, Route: "Queens → Staten Island", OrderID: "RCY-14398-98568",
			Status: "On Pickup", StatusType: domain.StatusTypeActive,
			Pickup:      domain.Stop{Address: "789 Oak Avenue, Queens, NY 11375, USA", Time: "11:45 AM"},
			Destination: domain.Stop{Address: "Zero Waste Hub, Staten Island, NY 10301, USA", Time: "Expected: 3:15 PM"},
			Driver:      domain.Driver{Name: "Michael Chen", Role: "Pickup Driver", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e" + avatarQuery},
			Items:       []string{"8kg Paper waste", "4kg Cardboard", "1kg Electronics"},
			Coordinates: domain.Coordinates{
				Pickup: domain.LatLng{40.7282, -73.7949}, Destination: domain.LatLng{40.5795, -74.1502}, Current: domain.LatLng{40.7282, -73.7949},
			},
		},
		{
			ID: 3, Route: "Bronx → Brooklyn", OrderID: "RCY-14398-98569",
			Status: "Processed", StatusType: domain.StatusTypeCompleted,
			Pickup:      domain.Stop{Address: "321 Pine Street, Bronx, NY 10451, USA", Time: "9:15 AM"},
			Destination: domain.Stop{Address: "Clean Earth Solutions, Brooklyn, NY 11201, USA", Time: "Completed: 12:30 PM"},
			Driver:      domain.Driver{Name: "David Williams", Role: "Pickup Driver", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d" + avatarQuery},
			Items:       []string{"6kg Mixed plastics", "2kg Metal cans"},
			Coordinates: domain.Coordinates{
				Pickup: domain.LatLng{40.8176, -73.9282}, Destination: domain.LatLng{40.6892, -73.9442}, Current: domain.LatLng{40.6892, -73.9442},
			},
		},
	}
}

func ReferenceCenters() []domain.Center {
	return []domain.Center{
		{ID: 1, Name: "EcoGreen Recycling", Location: "Brooklyn, NY", Rating: 4.8, Materials: []string{"Plastic", "Glass", "Metal"}, PricePerKg: "$0.5", Image: "🌱"},
		{ID: 2, Name: "Clean Earth Solutions", Location: "Queens, NY", Rating: 4.6, Materials: []string{"Paper", "Cardboard", "Electronics"}, PricePerKg: "$0.3", Image: "🌍"},
		{ID: 3, Name: "GreenCycle Corp", Location: "Manhattan, NY", Rating: 4.7, Materials: []string{"Plastic", "Metal", "Batteries"}, PricePerKg: "$0.4", Image: "♻️"},
		{ID: 4, Name: "Zero Waste Hub", Location: "Staten Island, NY", Rating: 4.5, Materials: []string{"Organic", "Textiles", "Glass"}, PricePerKg: "$0.6", Image: "🗂️"},
	}
}

func ReferenceCategories() []domain.Category {
	return []domain.Category{
		{ID: "paper", Name: "Paper & Cardboard", Price: "0.50/kg", Icon: "📄"},
		{ID: "plastic", Name: "Plastic", Price: "0.75/kg", Icon: "🥤"},
		{ID: "metal", Name: "Metal", Price: "1.00/kg", Icon: "🥫"},
		{ID: "glass", Name: "Glass", Price: "0.25/kg", Icon: "🍶"},
		{ID: "electronics", Name: "Electronics", Price: "Variable", Icon: "💻"},
	}
}

func ReferenceProfile() domain.Profile {
	off := false
	return domain.Profile{
		Name:  "John Doe",
		Email: "john@example.com",
		Phone: "+1 234 567 8900",
		Notifications: []domain.Setting{
			{Name: "pickup_reminders", Label: "Pickup Reminders", Enabled: true},
			{Name: "status_updates", Label: "Status Updates", Enabled: true},
			{Name: "promotions", Label: "Promotions and News", Enabled: false},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: 1, Type: domain.PaymentBank, Last4: "4567", Primary: true},
			{ID: 2, Type: domain.PaymentCard, Last4: "8901", Primary: false},
		},
		Security: []domain.SecurityOption{
			{Name: "change_password", Label: "Change Password"},
			{Name: "two_factor", Label: "Two-Factor Authentication", Enabled: &off},
		},
	}
}
