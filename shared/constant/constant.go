package constant

const (
	ServiceBooker = "booker"
	ServiceFinder = "finder"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelHTTPScopeName       = "http"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseMessageOK                 = "OK"
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorNotFound             = "Not Found"
	ResponseErrorMethodNotAllowed     = "Method Not Allowed"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	PathHealth  = "/health"
	PathMetrics = "/metrics"
	PathDocs    = "/docs"
)

const (
	Empty = ""
)
