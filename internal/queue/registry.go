package queue

import (
	"github.com/hibiken/asynq"
)

// HandlersRegistry maps task types to their handlers for the worker binary.
type HandlersRegistry struct {
	mux *asynq.ServeMux
}

func NewHandlersRegistry() *HandlersRegistry {
	return &HandlersRegistry{mux: asynq.NewServeMux()}
}

func (r *HandlersRegistry) Register(taskType string, h asynq.Handler) {
	r.mux.Handle(taskType, h)
}

func (r *HandlersRegistry) Mux() *asynq.ServeMux {
	return r.mux
}
