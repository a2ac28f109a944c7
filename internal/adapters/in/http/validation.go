package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPISpec []byte

// OpenAPISpec returns the embedded API description.
func OpenAPISpec() []byte {
	return openAPISpec
}

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI() (*openapi3.T, error) {
	openapi3.DefineStringFormatValidator("uuid", openapi3.NewRegexpFormatValidator(openapi3.FormatOfStringForUUIDOfRFC4122))

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi: %w", err)
	}
	return doc, nil
}

// OpenAPIValidator rejects requests to documented routes whose parameters or
// body break the contract. Undocumented routes pass through untouched.
// Authentication is left to BearerAuth.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(c)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}
	if reqErr.Parameter != nil {
		return fmt.Sprintf("invalid parameter %q", reqErr.Parameter.Name)
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		return "invalid request body: " + schemaErr.Reason
	}
	return "invalid request body"
}

// requestValidator adapts validator/v10 to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
