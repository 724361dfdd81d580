package usecase

import "errors"

var (
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrInvalidAssessmentID   = errors.New("invalid assessment_id")
	ErrInvalidClientID       = errors.New("invalid client_id")
	ErrInvalidRate           = errors.New("invalid rate")
	ErrInvalidVATPercentage  = errors.New("invalid vat percentage")
	ErrInvalidRetailValue    = errors.New("invalid vehicle retail value")
	ErrInvalidLineItem       = errors.New("invalid line item")
	ErrInvalidLineID         = errors.New("invalid line id")
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrEstimateAlreadyExists = errors.New("estimate already exists")
	ErrEstimateFinalized     = errors.New("estimate is finalized")
	ErrEstimateNotFinalized  = errors.New("estimate is not finalized")
	ErrLineItemNotFound      = errors.New("line item not found")

	ErrInvalidWriteOffPercentage = errors.New("write-off percentages must be between 0 and 100")
	ErrWriteOffNotFound          = errors.New("write-off percentages not found")

	ErrInvalidAdditionalsID     = errors.New("invalid additionals id")
	ErrAdditionalsNotFound      = errors.New("additionals record not found")
	ErrAdditionalsAlreadyExists = errors.New("additionals record already exists")
	ErrLineAlreadyTargeted      = errors.New("line was already removed or reversed")
	ErrInvalidReversalTarget    = errors.New("only estimate lines and approved added lines can be reversed")
	ErrInvalidStatusTransition  = errors.New("invalid additionals status transition")
	ErrDeclineReasonRequired    = errors.New("decline reason is required")

	ErrInvalidFRCID      = errors.New("invalid frc id")
	ErrFRCNotFound       = errors.New("frc not found")
	ErrFRCAlreadyStarted = errors.New("frc already started for this estimate")
	ErrFRCCompleted      = errors.New("frc is completed")
	ErrFRCNotCompleted   = errors.New("frc is not completed")
	ErrFRCLineNotFound   = errors.New("frc line not found")

	ErrSettlementNotFound             = errors.New("settlement not found")
	ErrFRCAlreadySettled              = errors.New("frc already has an approved settlement")
	ErrInvalidSettlementAmount        = errors.New("settlement amount must be positive")
	ErrInvalidSettlementPayload       = errors.New("invalid settlement payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)
