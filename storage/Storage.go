package storage

import (
	"sync"
	"time"

	"lb-front/dao"
	"lb-front/entity/pojo"

	"gorm.io/gorm"
)

// Storage 本地存储，对应浏览器的 localStorage
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

type SqliteStorage struct {
	db *gorm.DB
}

// NewSqlite 基于sqlite的持久化存储
func NewSqlite(db *gorm.DB) *SqliteStorage {
	return &SqliteStorage{db: db}
}

func (s *SqliteStorage) GetItem(key string) (string, bool, error) {
	item, err := dao.QueryItem(s.db, key)
	if err != nil || item == nil {
		return "", false, err
	}
	return item.Value, true, nil
}

func (s *SqliteStorage) SetItem(key, value string) error {
	return dao.UpsertItem(s.db, &pojo.StoragePO{Key: key, Value: value, UpdatedAt: time.Now()})
}

func (s *SqliteStorage) RemoveItem(key string) error {
	return dao.DeleteItem(s.db, key)
}

type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemory 进程内存储，重启即丢失
func NewMemory() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (m *MemoryStorage) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryStorage) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
