package legacysql

import (
	"encoding/json"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/tracking"
)

type addressJSON struct {
	Recipient  string `json:"recipient,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type vendorJSON struct {
	Status            string     `json:"status"`
	TrackingNumber    string     `json:"trackingNumber,omitempty"`
	CourierName       string     `json:"courierName,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

type tailorJSON struct {
	Status         string `json:"status"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	CourierName    string `json:"courierName,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type historyJSON struct {
	Status    string    `json:"status"`
	Phase     string    `json:"phase"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

// row holds the raw column values of one legacy_delivery_records row.
type row struct {
	OrderID    string
	CustomerID string
	Address    []byte
	Vendor     []byte
	Tailor     []byte
	Overall    string
	History    []byte
}

// encoded is a record serialized for writing. JSON is kept as string because
// lib/pq sends []byte parameters as bytea.
type encoded struct {
	Address string
	Vendor  string
	Tailor  string
	History string
	Pending string
}

func encode(r *legacy.Record) (encoded, error) {
	address, err := json.Marshal(addressJSON(r.Address().Fields()))
	if err != nil {
		return encoded{}, err
	}

	v := r.Vendor()
	vendor, err := json.Marshal(vendorJSON{
		Status:            v.Status.String(),
		TrackingNumber:    v.TrackingNumber,
		CourierName:       v.CourierName,
		EstimatedDelivery: v.EstimatedDelivery,
		Notes:             v.Notes,
	})
	if err != nil {
		return encoded{}, err
	}

	t := r.Tailor()
	tailor, err := json.Marshal(tailorJSON{
		Status:         t.Status.String(),
		DeliveryMethod: t.DeliveryMethod,
		TrackingNumber: t.TrackingNumber,
		CourierName:    t.CourierName,
		Notes:          t.Notes,
	})
	if err != nil {
		return encoded{}, err
	}

	history, err := json.Marshal(historyToJSON(r.History()))
	if err != nil {
		return encoded{}, err
	}
	pending, err := json.Marshal(historyToJSON(r.PendingHistory()))
	if err != nil {
		return encoded{}, err
	}

	return encoded{
		Address: string(address),
		Vendor:  string(vendor),
		Tailor:  string(tailor),
		History: string(history),
		Pending: string(pending),
	}, nil
}

func historyToJSON(entries []legacy.HistoryEntry) []historyJSON {
	out := make([]historyJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyJSON{
			Status:    e.Status,
			Phase:     string(e.Phase),
			Timestamp: e.At.UTC(),
			Notes:     e.Notes,
		})
	}
	return out
}

// decode rebuilds the record. The stored overall_status is ignored because
// RestoreRecord re-derives it from the sub-states.
func decode(raw row) (*legacy.Record, error) {
	orderID, err := kernel.UUIDFromString(raw.OrderID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewActorID(raw.CustomerID)
	if err != nil {
		return nil, err
	}

	var addr addressJSON
	if err := json.Unmarshal(raw.Address, &addr); err != nil {
		return nil, err
	}
	address := kernel.RestoreAddress(kernel.AddressFields(addr))

	var v vendorJSON
	if err := json.Unmarshal(raw.Vendor, &v); err != nil {
		return nil, err
	}
	vendorPhase, err := tracking.ParseFabricPhase(v.Status)
	if err != nil {
		return nil, err
	}

	var t tailorJSON
	if err := json.Unmarshal(raw.Tailor, &t); err != nil {
		return nil, err
	}
	tailorPhase, err := tracking.ParseGarmentPhase(t.Status)
	if err != nil {
		return nil, err
	}

	var h []historyJSON
	if err := json.Unmarshal(raw.History, &h); err != nil {
		return nil, err
	}
	history := make([]legacy.HistoryEntry, 0, len(h))
	for _, e := range h {
		history = append(history, legacy.HistoryEntry{
			Status: e.Status,
			Phase:  tracking.LegKind(e.Phase),
			At:     e.Timestamp.UTC(),
			Notes:  e.Notes,
		})
	}

	return legacy.RestoreRecord(legacy.RecordState{
		OrderID:    orderID,
		CustomerID: customerID,
		Address:    address,
		Vendor: legacy.VendorDispatch{
			Status:            vendorPhase,
			TrackingNumber:    v.TrackingNumber,
			CourierName:       v.CourierName,
			EstimatedDelivery: v.EstimatedDelivery,
			Notes:             v.Notes,
		},
		Tailor: legacy.TailorDelivery{
			Status:         tailorPhase,
			DeliveryMethod: t.DeliveryMethod,
			TrackingNumber: t.TrackingNumber,
			CourierName:    t.CourierName,
			Notes:          t.Notes,
		},
		History: history,
	})
}
