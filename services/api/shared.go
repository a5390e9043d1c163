package api

type ApiResStatusEnum string

const (
	ApiResStatusOk               ApiResStatusEnum = "OK"
	ApiResStatusError            ApiResStatusEnum = "ERROR"
	ApiResStatusInvalidRequest   ApiResStatusEnum = "INVALID_REQUEST"
	ApiResStatusRequestBodyError ApiResStatusEnum = "REQUEST_BODY_ERROR"
	ApiResStatusNotFound         ApiResStatusEnum = "NOT_FOUND"
	ApiResStatusUnauthorized     ApiResStatusEnum = "UNAUTHORIZED"
	ApiResStatusPendingRetry     ApiResStatusEnum = "PENDING_RETRY"
)

type ApiResponseWrapper[T any] struct {
	Status ApiResStatusEnum `json:"status"`

	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorDetails string `json:"errorDetails,omitempty"`

	Data T `json:"data"`
}

func NewApiResponse[T any](status ApiResStatusEnum, data T) ApiResponseWrapper[T] {
	return ApiResponseWrapper[T]{
		Status: status,
		Data:   data,
	}
}
