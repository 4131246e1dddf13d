package app

type classifiedError struct {
	Category  string
	Retryable bool
}

var errorCodeClasses = map[string]classifiedError{
	"usage_error":      {Category: "usage", Retryable: false},
	"validation_error": {Category: "usage", Retryable: false},
	"config_missing":   {Category: "config", Retryable: false},
	"config_error":     {Category: "config", Retryable: false},
	"auth_failed":      {Category: "auth", Retryable: false},
	"not_found":        {Category: "not_found", Retryable: false},
	"rate_limit":       {Category: "rate_limit", Retryable: true},
	"remote_error":     {Category: "remote", Retryable: false},
	"transport_error":  {Category: "transient", Retryable: true},
}

func classifyCLIError(code string, exit int) classifiedError {
	if c, ok := errorCodeClasses[code]; ok {
		return c
	}
	switch exit {
	case 2:
		return classifiedError{Category: "usage", Retryable: false}
	case 3:
		return classifiedError{Category: "config", Retryable: false}
	case 4:
		return classifiedError{Category: "remote", Retryable: false}
	case 5:
		return classifiedError{Category: "not_found", Retryable: false}
	default:
		return classifiedError{Category: "runtime", Retryable: false}
	}
}
