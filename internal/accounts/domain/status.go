package domain

// Status is a closed enumeration of domain outcomes. The code travels in
// the response envelope's statusCode field and is independent of the HTTP
// transport status: domain outcomes ride on 200, while 401/403 are reserved
// for auth-guard rejections.
type Status struct {
	Code    int
	Message string
}

var (
	StatusOK                   = Status{0, "Ok"}
	StatusUnauthorized         = Status{40000, "Unauthorized"}
	StatusValidationError      = Status{40001, "Validation error"}
	StatusInvalidToken         = Status{40100, "Invalid token"}
	StatusOldPasswordUsed      = Status{40101, "Old password used"}
	StatusForbidden            = Status{40300, "Forbidden"}
	StatusAccountCreationError = Status{40301, "Account creation error"}
	StatusUserNotFound         = Status{40302, "User not found"}
	StatusPasswordIncorrect    = Status{40303, "Password incorrect"}
	StatusServerError          = Status{50000, "Server error"}
)

// FieldViolation reports one failed payload constraint. Validation collects
// every violation rather than stopping at the first.
type FieldViolation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
