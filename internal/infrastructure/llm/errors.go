package llm

import "strings"

// IsResponseFormatUnsupportedError reports whether the provider rejected the response_format field.
func IsResponseFormatUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "response_format"):
		return true
	case strings.Contains(msg, "json_object") && strings.Contains(msg, "not supported"):
		return true
	case strings.Contains(msg, "unknown parameter") && strings.Contains(msg, "response"):
		return true
	default:
		return false
	}
}

// IsContentPolicyError reports whether the provider refused the prompt on safety grounds.
func IsContentPolicyError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "content_policy_violation"):
		return true
	case strings.Contains(msg, "content policy"):
		return true
	case strings.Contains(msg, "content_filter"):
		return true
	case strings.Contains(msg, "safety system"):
		return true
	default:
		return false
	}
}
