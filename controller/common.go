package controller

import "stockdash/model"

// NewResponse creates a success response with the given data and message.
func NewResponse(data any, message string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: true,
			Message: message,
			Data:    data,
		},
	}
}

// NewErrorResponse is a 200 with Success false, for requests that were
// valid but produced nothing. Bad input goes through huma errors.
func NewErrorResponse(message, err string) *model.DefaultResponse {
	return &model.DefaultResponse{
		Body: model.Response{
			Success: false,
			Message: message,
			Error:   err,
		},
	}
}
