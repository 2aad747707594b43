package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/courtside/internal/domain/playcapture"
	"github.com/riskibarqy/courtside/internal/domain/stat"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

var requestJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	scheduleService     *usecase.ScheduleService
	statService         *usecase.StatService
	boxScoreService     *usecase.BoxScoreService
	scorekeepingService *usecase.ScorekeepingService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	statService *usecase.StatService,
	boxScoreService *usecase.BoxScoreService,
	scorekeepingService *usecase.ScorekeepingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scheduleService:     scheduleService,
		statService:         statService,
		boxScoreService:     boxScoreService,
		scorekeepingService: scorekeepingService,
		logger:              logger,
		validator:           newValidator(),
	}
}

// newValidator registers the stat vocabularies as tags: "stat_kind" for the
// button a scorekeeper presses and "event_kind" for a raw counter label.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("stat_kind", func(fl validator.FieldLevel) bool {
		_, err := playcapture.ParseStatKind(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("event_kind", func(fl validator.FieldLevel) bool {
		_, _, err := stat.ParseLabel(fl.Field().String())
		return err == nil
	})
	return v
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := requestJSON.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
