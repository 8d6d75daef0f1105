package httpapi

import (
	"net/http"

	"earn-recycle-engine/internal/catalog"
	"earn-recycle-engine/internal/domain"
)

type ProfileHandler struct {
	Catalog *catalog.Catalog
}

func (h ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot()
	if err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeCatalogUnavailable, err.Error())
		return
	}
	if snap.Profile == nil {
		WriteError(w, r, http.StatusNotFound, CodeNotFound, "profile not found")
		return
	}
	writeJSON(w, profileSections(*snap.Profile))
}

func profileSections(p domain.Profile) ProfileResponse {
	methods := make([]PaymentMethodRow, 0, len(p.PaymentMethods))
	for _, m := range p.PaymentMethods {
		methods = append(methods, PaymentMethodRow{PaymentMethod: m, Display: m.Display()})
	}

	return ProfileResponse{Sections: []ProfileSection{
		{
			ID:    "personal",
			Title: "Personal Information",
			Fields: []ProfileField{
				{Name: "name", Label: "Full Name", Type: "text", Value: p.Name},
				{Name: "email", Label: "Email", Type: "email", Value: p.Email},
				{Name: "phone", Label: "Phone", Type: "tel", Value: p.Phone},
			},
		},
		{ID: "notifications", Title: "Notifications", Settings: p.Notifications},
		{ID: "payment", Title: "Payment Methods", Methods: methods},
		{ID: "security", Title: "Security", Options: p.Security},
	}}
}
