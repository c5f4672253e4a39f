package handler

import (
	"net/http"

	"github.com/gobro228/ambulance-site/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeError maps a classified domain error to its HTTP status and envelope.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apierror.KindOf(err) {
	case apierror.NotFound:
		status = http.StatusNotFound
	case apierror.InsufficientStock:
		status = http.StatusConflict
	case apierror.InvalidArgument:
		status = http.StatusBadRequest
	case apierror.Duplicate:
		status = http.StatusConflict
	case apierror.DependencyFailure:
		status = http.StatusBadGateway
	}
	c.JSON(status, apierror.FromError(err))
}
