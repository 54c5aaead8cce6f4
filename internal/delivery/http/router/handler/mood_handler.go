package handler

import (
	"net/http"
	"strconv"
	"time"

	"sentimenta/internal/delivery/http/middleware"
	"sentimenta/internal/delivery/http/response"
	domainerrors "sentimenta/internal/domain/errors"
	"sentimenta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dateLayout is the wire format for mood entry dates.
const dateLayout = "2006-01-02"

// MoodHandler holds dependencies for mood entry handlers.
type MoodHandler struct {
	uc usecase.MoodUsecase
}

// NewMoodHandler is the constructor for MoodHandler, injected by Fx.
func NewMoodHandler(uc usecase.MoodUsecase) *MoodHandler {
	return &MoodHandler{uc: uc}
}

type addMoodRequest struct {
	Score       int16  `json:"score" validate:"required"`
	Emotions    string `json:"emotions"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
}

type updateMoodRequest struct {
	Uid         int64   `json:"uid" validate:"required"`
	Score       *int16  `json:"score"`
	Emotions    *string `json:"emotions"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// Add records a new mood entry for the authenticated account.
func (h *MoodHandler) Add(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req addMoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mood input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("date must use the YYYY-MM-DD format")
	}

	output, err := h.uc.AddMood(c.Request().Context(), accountID, &usecase.AddMoodInput{
		Score:       req.Score,
		Emotions:    req.Emotions,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Mood entry created successfully")
}

// List returns all of the authenticated account's entries.
func (h *MoodHandler) List(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	outputs, err := h.uc.ListMoods(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// Update applies a partial update to one of the authenticated account's entries.
func (h *MoodHandler) Update(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req updateMoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mood update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateMoodInput{
		Uid:         req.Uid,
		Score:       req.Score,
		Emotions:    req.Emotions,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("date must use the YYYY-MM-DD format")
		}
		input.Date = &date
	}

	output, err := h.uc.UpdateMood(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Mood entry updated successfully")
}

// Delete removes one of the authenticated account's entries by path id.
func (h *MoodHandler) Delete(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	moodID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("mood id must be numeric")
	}

	if err := h.uc.DeleteMood(c.Request().Context(), accountID, moodID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mood entry deleted successfully")
}
