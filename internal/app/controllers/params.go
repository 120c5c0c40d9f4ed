package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
)

// pathID parses an integer path parameter, reporting a type mismatch when the
// segment is not a number.
func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewTypeMismatch(name, "int")
	}
	return id, nil
}

// requiredQueryInt64 fetches a mandatory integer query parameter. An absent
// parameter is a MissingParameter error, an unparseable one a TypeMismatch.
func requiredQueryInt64(ctx *gin.Context, name string) (int64, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return 0, apperrors.NewMissingParameter(name)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewTypeMismatch(name, "int")
	}
	return value, nil
}

// optionalQueryString returns a pointer to the query parameter's value, or
// nil when the parameter was not supplied at all.
func optionalQueryString(ctx *gin.Context, name string) *string {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return nil
	}
	return &raw
}

// optionalQueryInt64 returns a pointer to the parsed query parameter, nil
// when absent, or a TypeMismatch when present but unparseable.
func optionalQueryInt64(ctx *gin.Context, name string) (*int64, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewTypeMismatch(name, "int")
	}
	return &value, nil
}

// optionalQueryInt is optionalQueryInt64 for plain int values.
func optionalQueryInt(ctx *gin.Context, name string) (*int, error) {
	value, err := optionalQueryInt64(ctx, name)
	if err != nil || value == nil {
		return nil, err
	}
	intValue := int(*value)
	return &intValue, nil
}
