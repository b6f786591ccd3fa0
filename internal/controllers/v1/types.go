package v1

import (
	riven_uuid "github.com/riven-app/backend/internal/uuid"
)

type URIID struct {
	ID riven_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
