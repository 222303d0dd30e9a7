/*
Hist persists completed pipeline records to append-only stores.

One service instance exists per record kind (positions, risk,
executions, streaming quotes, inquiries), each draining the add stream
of the stage it trails. Rows are the record's canonical field
projection, timestamped at persist time.
*/
package hist

import (
	"main/internal/fabric"
)

// Record is any pipeline value with a canonical string projection.
type Record interface {
	Fields() []string
}

// Service keeps the latest value per persist key and forwards every
// add to its sink connector.
type Service[V Record] struct {
	*fabric.Store[V]
	sink fabric.Publisher[V]
}

func NewService[V Record](key func(V) string, sink fabric.Publisher[V]) *Service[V] {
	return &Service[V]{
		Store: fabric.NewStore(key),
		sink:  sink,
	}
}

// PersistData records the value and pushes it to the persistent sink.
func (s *Service[V]) PersistData(v V) {
	s.Put(v)
	s.sink.Publish(v)
}

// Listener drains an upstream add stream into the service.
type Listener[V Record] struct {
	fabric.BaseListener[V]
	svc *Service[V]
}

func NewListener[V Record](svc *Service[V]) *Listener[V] {
	return &Listener[V]{svc: svc}
}

func (l *Listener[V]) ProcessAdd(v V) {
	l.svc.PersistData(v)
}
