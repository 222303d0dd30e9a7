package hist

import (
	"strings"
	"time"

	"github.com/yanun0323/logs"
	"gorm.io/gorm"
)

// Row is the persisted shape of one historical record.
type Row struct {
	ID         uint   `gorm:"primaryKey"`
	Kind       string `gorm:"index"`
	PersistKey string `gorm:"index"`
	Payload    string
	CreatedAt  time.Time
}

func (Row) TableName() string {
	return "historical_records"
}

// Migrate creates the historical records table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Row{})
}

// PGSink writes one record kind to PostgreSQL alongside the file sinks.
type PGSink[V Record] struct {
	db   *gorm.DB
	kind string
	key  func(V) string
}

func NewPGSink[V Record](db *gorm.DB, kind string, key func(V) string) *PGSink[V] {
	return &PGSink[V]{db: db, kind: kind, key: key}
}

// Publish inserts the record; an insert failure drops this record only.
func (s *PGSink[V]) Publish(v V) {
	row := Row{
		Kind:       s.kind,
		PersistKey: s.key(v),
		Payload:    strings.Join(v.Fields(), ","),
	}
	if err := s.db.Create(&row).Error; err != nil {
		logs.Errorf("insert %s record, err: %+v", s.kind, err)
	}
}

// MultiSink fans one record out to several sinks.
type MultiSink[V Record] struct {
	sinks []interface{ Publish(V) }
}

func NewMultiSink[V Record](sinks ...interface{ Publish(V) }) *MultiSink[V] {
	return &MultiSink[V]{sinks: sinks}
}

func (s *MultiSink[V]) Publish(v V) {
	for _, sink := range s.sinks {
		sink.Publish(v)
	}
}
