package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	// Quote/arithmetic errors
	CodeNumericOverflow: "Computation exceeds representable magnitude",
	CodePoolExhausted:   "Requested output meets or exceeds pool reserve",

	// Market validation errors
	CodeInvalidMarket:    "Market fails validation",
	CodeMarketNotFound:   "Market not registered",
	CodeInvalidTradeSize: "Invalid trade size",

	// Settlement errors
	CodeInsufficientProfit: "Realized profit below caller minimum",
	CodeSettlementFailed:   "Settlement failed",

	// Snapshot feed errors
	CodeFeedConnectionFailed: "Failed to connect to snapshot feed",
	CodeFeedDecodeError:      "Failed to decode snapshot payload",
	CodeFeedClosed:           "Snapshot feed closed",

	// WebSocket errors
	CodeWebSocketConnectionError: "WebSocket connection error",
	CodeWebSocketReconnecting:    "WebSocket reconnecting",
	CodeWebSocketClosed:          "WebSocket connection closed",
	CodeWebSocketSendError:       "Failed to send WebSocket message",

	// Circuit breaker errors
	CodeCircuitOpen:     "Circuit breaker is open",
	CodeCircuitHalfOpen: "Circuit breaker is half-open",
}
