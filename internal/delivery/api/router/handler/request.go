package handler

import (
	"strconv"
	"strings"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	queryPage         = "page"
	querySize         = "size"
	querySearchString = "searchString"
	queryStaffID      = "staffId"
)

// bindAndValidate decodes the request body into req and runs the struct rules on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// actorOf returns the identity set by the auth middleware.
func actorOf(c echo.Context) (entity.SessionClaims, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.SessionClaims{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

// tokenOf returns the bearer token the actor was resolved from.
func tokenOf(c echo.Context) (string, error) {
	token, ok := deliverycontext.GetToken(c)
	if !ok {
		return "", domainerrors.ErrUnauthorized
	}

	return token, nil
}

// parseObjectID parses a hex id, naming field in the failure.
func parseObjectID(field, value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(value))
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrValidationFailed.WithDetails(field + " is not a valid id")
	}

	return id, nil
}

// parseObjectIDs keeps a nil input nil so the usecase can tell a missing array from an empty one.
func parseObjectIDs(field string, values []string) ([]primitive.ObjectID, error) {
	if values == nil {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		id, err := parseObjectID(field, value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// parseListInput reads searchString, page and size. Missing page is 1 and missing size is maxRecords.
func parseListInput(c echo.Context, maxRecords int) (usecase.ListInput, error) {
	input := usecase.ListInput{
		SearchString: c.QueryParam(querySearchString),
		Page:         1,
		Size:         int64(maxRecords),
	}

	if raw := c.QueryParam(queryPage); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return usecase.ListInput{}, domainerrors.ErrValidationFailed.WithDetails("page must be an integer")
		}
		input.Page = page
	}
	if raw := c.QueryParam(querySize); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return usecase.ListInput{}, domainerrors.ErrValidationFailed.WithDetails("size must be an integer")
		}
		input.Size = size
	}

	return input, nil
}
