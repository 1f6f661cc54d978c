package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"travelhub/middleware"
	"travelhub/models"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// writeError maps a service error onto the response envelope. Internal
// errors are logged in full and reported generically.
func writeError(c *gin.Context, err error, msg string, fields ...zap.Field) {
	status, message := utils.ErrorStatus(err)
	resp := models.APIResponse{Success: false, Message: message}

	var ve *utils.ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		resp.Message = ve.Message
		resp.Errors = ve.Fields
	}

	logger := getLogger(c)
	fields = append(fields, zap.Error(err), zap.String("path", c.FullPath()))
	if status == http.StatusInternalServerError {
		logger.Error(msg, fields...)
	} else {
		logger.Debug(msg, fields...)
	}
	c.JSON(status, resp)
}

// writeBindError reports a malformed request body, naming the offending fields.
func writeBindError(c *gin.Context, err error) {
	resp := models.APIResponse{Success: false, Message: "Invalid request body"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		names := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			names = append(names, fe.Field())
		}
		resp.Errors = names
	}
	getLogger(c).Debug("Invalid request body", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusBadRequest, resp)
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.APIResponse{Success: true, Message: message, Data: data})
}

// requireActor returns the authenticated caller or answers 401.
func requireActor(c *gin.Context) (models.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required")
		return models.Actor{}, false
	}
	return actor, true
}

// queryInt reads a positive integer query parameter; anything else is 0.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// reservationFilter reads status, type, page and limit from the query string.
func reservationFilter(c *gin.Context) models.ReservationFilter {
	return models.ReservationFilter{
		Status: models.ReservationStatus(c.Query("status")),
		Type:   c.Query("type"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
}

// respondPage writes a listing with its pagination counters.
func respondPage(c *gin.Context, page *models.ReservationPage) {
	count := len(page.Items)
	total := int64(page.Total)
	c.JSON(http.StatusOK, models.APIResponse{
		Success:    true,
		Data:       page.Items,
		Count:      &count,
		Total:      &total,
		Page:       &page.Page,
		TotalPages: &page.TotalPages,
	})
}
