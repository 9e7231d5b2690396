// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type ProfileDAO interface {
	Upsert(ctx context.Context, p Profile) error
	FindByUid(ctx context.Context, uid int64) (Profile, error)
	FindByUids(ctx context.Context, uids []int64) ([]Profile, error)
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{db: db}
}

func (g *GORMProfileDAO) Upsert(ctx context.Context, p Profile) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"nickname", "email", "industry", "experience", "utime",
		}),
	}).Create(&p).Error
}

func (g *GORMProfileDAO) FindByUid(ctx context.Context, uid int64) (Profile, error) {
	var p Profile
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&p).Error
	return p, err
}

func (g *GORMProfileDAO) FindByUids(ctx context.Context, uids []int64) ([]Profile, error) {
	var res []Profile
	if len(uids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("uid IN ?", uids).Find(&res).Error
	return res, err
}

type Profile struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	Uid        int64  `gorm:"uniqueIndex"`
	Nickname   string `gorm:"type:varchar(64)"`
	Email      string `gorm:"type:varchar(256)"`
	Industry   string `gorm:"type:varchar(64)"`
	Experience int
	Ctime      int64
	Utime      int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Profile{})
}
