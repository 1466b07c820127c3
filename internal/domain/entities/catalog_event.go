package entities

import "time"

// CatalogChannel is the pub/sub channel carrying catalog change events
const CatalogChannel = "medfinder:catalog"

// CatalogEventType names what changed in the catalog
type CatalogEventType string

const (
	CatalogEventReseeded CatalogEventType = "catalog.reseeded"
	CatalogEventUpdated  CatalogEventType = "catalog.updated"
)

// CatalogEvent announces that symptoms, medications or their links changed
// and cached copies are stale.
type CatalogEvent struct {
	ID         string           `json:"id"`
	Type       CatalogEventType `json:"type"`
	Source     string           `json:"source,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}
