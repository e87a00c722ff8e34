package dao

import (
	"errors"

	"lb-front/entity/pojo"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueryItem 查询存储项，不存在时返回 nil
func QueryItem(db *gorm.DB, key string) (*pojo.StoragePO, error) {
	var item pojo.StoragePO
	if err := db.Where("item_key = ?", key).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.New("查询存储项失败: " + err.Error())
	}
	return &item, nil
}

// UpsertItem 写入存储项，已存在则覆盖
func UpsertItem(db *gorm.DB, item *pojo.StoragePO) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(item).Error
	if err != nil {
		return errors.New("写入存储项失败: " + err.Error())
	}
	return nil
}

// DeleteItem 删除存储项
func DeleteItem(db *gorm.DB, key string) error {
	if err := db.Where("item_key = ?", key).Delete(&pojo.StoragePO{}).Error; err != nil {
		return errors.New("删除存储项失败: " + err.Error())
	}
	return nil
}
