package domain

import (
	"fmt"

	appErrors "ticketdesk/internal/errors"
)

func invalidStatusError(status string) error {
	return appErrors.New(appErrors.CodeInvalidStatus, fmt.Sprintf("invalid status: %s", status), nil)
}

func invalidPriorityError(priority string) error {
	return appErrors.New(appErrors.CodeInvalidPriority, fmt.Sprintf("invalid priority: %s", priority), nil)
}

func invalidCategoryError(category string) error {
	return appErrors.New(appErrors.CodeInvalidCategory, fmt.Sprintf("invalid category: %s", category), nil)
}

func validationError(reason string) error {
	return appErrors.New(appErrors.CodeValidation, reason, nil)
}
