package handler

import (
	"strconv"
	"strings"

	"cafeteria/internal/delivery/api/middleware"
	"cafeteria/internal/domain/entity"
	domainerrors "cafeteria/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	headerIfMatch        = "If-Match"
	headerETag           = "ETag"
	headerIdempotencyKey = "Idempotency-Key"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.InvalidArgument("invalid " + name)
	}

	return id, nil
}

func pageRequest(c echo.Context) (entity.PageRequest, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return entity.PageRequest{}, err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return entity.PageRequest{}, err
	}

	var p, s int
	if page != nil {
		p = *page
	}
	if size != nil {
		s = *size
	}

	return entity.NewPageRequest(p, s), nil
}

func queryInt(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.InvalidArgument(name + " must be an integer")
	}

	return &v, nil
}

func requiredQueryInt(c echo.Context, name string) (int, error) {
	v, err := queryInt(c, name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, domainerrors.InvalidArgument(name + " is required")
	}

	return *v, nil
}

func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.InvalidArgument(name + " must be true or false")
	}

	return &v, nil
}

func queryDecimal(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domainerrors.InvalidArgument(name + " must be a decimal number")
	}

	return &v, nil
}

func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.InvalidArgument("invalid " + name)
	}

	return &v, nil
}

func pathStatus(c echo.Context) (entity.OrderStatus, error) {
	return entity.ParseOrderStatus(c.Param("status"))
}

// expectedVersion reads the version the client last saw from If-Match.
func expectedVersion(c echo.Context) (int64, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(headerIfMatch))
	if raw == "" {
		return 0, domainerrors.ErrPreconditionRequired
	}

	raw = strings.Trim(strings.TrimPrefix(raw, "W/"), `"`)
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.InvalidArgument("If-Match must carry a numeric version")
	}

	return version, nil
}

func setETag(c echo.Context, version int64) {
	c.Response().Header().Set(headerETag, strconv.Quote(strconv.FormatInt(version, 10)))
}

// caller returns the authenticated user and roles set by AuthMiddleware.
func caller(c echo.Context) (uuid.UUID, entity.Roles, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, nil, domainerrors.ErrInvalidToken
	}
	roles, _ := middleware.GetRoles(c)

	return userID, roles, nil
}

// ensureOwnerOrStaff lets staff through and otherwise requires the caller to be owner.
func ensureOwnerOrStaff(c echo.Context, owner uuid.UUID) error {
	userID, roles, err := caller(c)
	if err != nil {
		return err
	}
	if roles.IsStaff() || userID == owner {
		return nil
	}

	return domainerrors.ErrForbidden
}

func pathInt(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domainerrors.InvalidArgument(name + " must be an integer")
	}

	return v, nil
}
