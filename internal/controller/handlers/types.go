package handlers

import (
	"github.com/Freeeeeet/docspot/internal/controller/common"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	*common.Deps
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(deps *common.Deps) *Handlers {
	return &Handlers{Deps: deps}
}
