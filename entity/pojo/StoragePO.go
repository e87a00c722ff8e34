package pojo

import "time"

// StoragePO 本地存储项，对应浏览器 localStorage 的一个 key
type StoragePO struct {
	Key       string    `gorm:"not null;primaryKey;column:item_key" json:"key"`
	Value     string    `gorm:"not null;column:value" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (StoragePO) TableName() string {
	return "local_storage"
}
