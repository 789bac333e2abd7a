package api

var ErrorResponse = errorResponse
