// Package phoneformat exposes the phone formatter to the contacts UI over HTTP.
package phoneformat

import (
	apphttp "contact_phone_backend/internal/http"
	"contact_phone_backend/platform/config"
	"contact_phone_backend/platform/logger"
	"contact_phone_backend/platform/phone"
	"contact_phone_backend/platform/validator"
)

// Module wires the phone formatting HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.PhoneConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(phone.New(cfg.GetPhoneRules()), cfg.GetBatchLimit(), log)
	return &Module{handler: NewHandler(svc, val)}
}

func (m *Module) Name() string {
	return "phoneformat"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/phone")
	group.POST("/format", m.handler.Format)
	group.POST("/normalize", m.handler.Normalize)
	group.POST("/validate", m.handler.Validate)
	group.POST("/del-zero", m.handler.DelZero)
	group.POST("/describe", m.handler.Describe)
	group.POST("/batch", m.handler.Batch)
}

var _ apphttp.Module = (*Module)(nil)
