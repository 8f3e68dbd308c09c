// Package servers holds the transport types and the echo routing of the HTTP
// API described by api/openapi.yml. Keep both in sync.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// LegType defines model for LegType.
type LegType string

const (
	FABRIC  LegType = "FABRIC"
	GARMENT LegType = "GARMENT"
)

// LegStatus defines model for LegStatus.
type LegStatus string

// Leg defines model for Leg.
type Leg struct {
	Id             openapi_types.UUID `json:"id"`
	OrderId        openapi_types.UUID `json:"orderId"`
	LegType        LegType            `json:"legType"`
	Status         LegStatus          `json:"status"`
	CourierName    *string            `json:"courierName,omitempty"`
	TrackingId     *string            `json:"trackingId,omitempty"`
	DeliveryMethod *string            `json:"deliveryMethod,omitempty"`
	DispatchedAt   *time.Time         `json:"dispatchedAt,omitempty"`
	DeliveredAt    *time.Time         `json:"deliveredAt,omitempty"`
	Version        int                `json:"version"`
}

// DispatchRequest defines model for DispatchRequest.
type DispatchRequest struct {
	CourierName string  `json:"courierName"`
	TrackingId  string  `json:"trackingId"`
	ActorId     *string `json:"actorId,omitempty"`
}

// ReadyRequest defines model for ReadyRequest.
type ReadyRequest struct {
	DeliveryMethod string  `json:"deliveryMethod"`
	ActorId        *string `json:"actorId,omitempty"`
}

// CompleteRequest defines model for CompleteRequest.
type CompleteRequest struct {
	ActorId *string `json:"actorId,omitempty"`
}

// LegacyUpdate defines model for LegacyUpdate.
type LegacyUpdate struct {
	Status            string     `json:"status"`
	TrackingNumber    *string    `json:"trackingNumber,omitempty"`
	CourierName       *string    `json:"courierName,omitempty"`
	DeliveryMethod    *string    `json:"deliveryMethod,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	ActorId           *string    `json:"actorId,omitempty"`
}

// Address defines model for Address.
type Address struct {
	Recipient  *string `json:"recipient,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Line1      *string `json:"line1,omitempty"`
	Line2      *string `json:"line2,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// LegView defines model for LegView.
type LegView struct {
	LegId          *openapi_types.UUID `json:"legId,omitempty"`
	Kind           string              `json:"kind"`
	Status         string              `json:"status"`
	Phase          string              `json:"phase"`
	CourierName    *string             `json:"courierName,omitempty"`
	TrackingId     *string             `json:"trackingId,omitempty"`
	DeliveryMethod *string             `json:"deliveryMethod,omitempty"`
	DispatchedAt   *time.Time          `json:"dispatchedAt,omitempty"`
	DeliveredAt    *time.Time          `json:"deliveredAt,omitempty"`
	Notes          *string             `json:"notes,omitempty"`
}

// TrackingEvent defines model for TrackingEvent.
type TrackingEvent struct {
	Kind   string    `json:"kind"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Notes  *string   `json:"notes,omitempty"`
}

// Tracking defines model for Tracking.
type Tracking struct {
	OrderId         openapi_types.UUID `json:"orderId"`
	Available       bool               `json:"available"`
	Schema          *string            `json:"schema,omitempty"`
	Fabric          *LegView           `json:"fabric,omitempty"`
	Garment         *LegView           `json:"garment,omitempty"`
	OverallStatus   *string            `json:"overallStatus,omitempty"`
	ProgressPercent *int               `json:"progressPercent,omitempty"`
	Address         *Address           `json:"address,omitempty"`
	History         *[]TrackingEvent   `json:"history,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetOrderLegsParams defines parameters for GetOrderLegs.
type GetOrderLegsParams struct {
	LegType *LegType `form:"legType,omitempty" json:"legType,omitempty"`
}

// GetActorLegsParams defines parameters for GetActorLegs.
type GetActorLegsParams struct {
	LegType LegType `form:"legType" json:"legType"`
}

// AdvanceLegacyParamsPhase defines parameters for AdvanceLegacy.
type AdvanceLegacyParamsPhase string
