package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableMarkups      = "markups"
	TableFAQs         = "faqs"
	TableTestimonials = "testimonials"
	TableUsers        = "users"
	TableCasbinRules  = "casbin_rule"

	// Content languages
	LanguageEnglish = "en"
	LanguagePersian = "fa"
	DefaultLanguage = LanguageEnglish

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)

// IsSupportedLanguage reports whether lang is a content language.
func IsSupportedLanguage(lang string) bool {
	return lang == LanguageEnglish || lang == LanguagePersian
}
