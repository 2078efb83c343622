package snapshot

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/exportdocs/exportdocs/pkg/docgen_server/model"
)

func ValidateSaveSnapshotRequest(req SaveSnapshotRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Requester, validation.Required),
		validation.Field(&req.ApplicationID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}

func ValidateLoadSnapshotRequest(req LoadSnapshotRequest) error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.ApplicationID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}

	return nil
}
