package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Engine-specific error codes
const (
	// Quote/arithmetic error classes. Quoting and search recover from
	// these locally via sentinel values; they never abort a search.
	CodeNumericOverflow Code = "NUMERIC_OVERFLOW"
	CodePoolExhausted   Code = "POOL_EXHAUSTED"

	// Market validation errors
	CodeInvalidMarket    Code = "INVALID_MARKET"
	CodeMarketNotFound   Code = "MARKET_NOT_FOUND"
	CodeInvalidTradeSize Code = "INVALID_TRADE_SIZE"

	// Settlement errors
	CodeInsufficientProfit Code = "INSUFFICIENT_PROFIT"
	CodeSettlementFailed   Code = "SETTLEMENT_FAILED"

	// Snapshot feed errors
	CodeFeedConnectionFailed Code = "FEED_CONNECTION_FAILED"
	CodeFeedDecodeError      Code = "FEED_DECODE_ERROR"
	CodeFeedClosed           Code = "FEED_CLOSED"

	// WebSocket errors
	CodeWebSocketConnectionError Code = "WEBSOCKET_CONNECTION_ERROR"
	CodeWebSocketReconnecting    Code = "WEBSOCKET_RECONNECTING"
	CodeWebSocketClosed          Code = "WEBSOCKET_CLOSED"
	CodeWebSocketSendError       Code = "WEBSOCKET_SEND_ERROR"

	// Circuit breaker errors
	CodeCircuitOpen     Code = "CIRCUIT_OPEN"
	CodeCircuitHalfOpen Code = "CIRCUIT_HALF_OPEN"
)
