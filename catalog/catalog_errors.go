package catalog

import "errors"

var ErrServiceNotFound = errors.New("service not found")

var ErrUnknownSortKey = errors.New("unknown sort key")

var ErrInvalidCriteria = errors.New("invalid filter value")
