package consts

// Error codes surfaced to API clients. The storefront matches on these
// strings, so they are part of the wire contract.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"
	ErrCodeWilayaNotFound     = "WILAYA_NOT_FOUND"
	ErrCodeBaladiyaNotFound   = "BALADIYA_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInvalidTransition  = "INVALID_TRANSITION"
	ErrCodeTrackingExhausted  = "TRACKING_GENERATION_EXHAUSTED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeCreateOrder        = "CREATE_ORDER_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
)
