package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/cache"
	cachemocks "github.com/ecodeclub/jobboard/internal/posting/internal/repository/cache/mocks"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/dao"
	daomocks "github.com/ecodeclub/jobboard/internal/posting/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func openEntity(id int64, now time.Time) dao.Posting {
	return dao.Posting{
		Id:         id,
		EmployerId: 100,
		Title:      "Go 开发",
		Industry:   "互联网",
		Headcount:  1,
		Approved:   true,
		LockState:  domain.LockStateOpen.ToUint8(),
		ExpiresAt:  now.Add(24 * time.Hour).UnixMilli(),
		Ctime:      now.Add(-time.Hour).UnixMilli(),
		Utime:      now.Add(-time.Hour).UnixMilli(),
	}
}

// 读请求回写缓存之前，管理员锁定了职位，缓存里留下的是锁定前的数据
func TestPostingRepository_CachedDetailLockedDuringWriteBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const id int64 = 1
	now := time.Now()
	d := daomocks.NewMockPostingDAO(ctrl)
	c := cachemocks.NewMockPostingCache(ctrl)
	repo := NewPostingRepository(d, c)

	// 简单的内存缓存
	store := map[int64]domain.Posting{}
	c.EXPECT().GetPosting(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id int64) (domain.Posting, error) {
		p, ok := store[id]
		if !ok {
			return domain.Posting{}, cache.ErrPostingNotFound
		}
		return p, nil
	}).Times(2)
	c.EXPECT().SetPosting(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p domain.Posting) error {
		store[p.ID] = p
		return nil
	})
	c.EXPECT().DelPosting(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id int64) error {
		delete(store, id)
		return nil
	})

	row := openEntity(id, now)
	d.EXPECT().FindById(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id int64) (dao.Posting, error) {
		snapshot := row
		// 读到数据之后，回写缓存之前，管理员锁定
		ok, err := repo.SetLockState(ctx, id, domain.LockStateAdminLocked)
		require.NoError(t, err)
		require.True(t, ok)
		return snapshot, nil
	})
	d.EXPECT().SetLockState(gomock.Any(), id, domain.LockStateAdminLocked.ToUint8()).
		DoAndReturn(func(ctx context.Context, id int64, state uint8) (int64, error) {
			row.LockState = state
			row.Utime = now.UnixMilli()
			return 1, nil
		})
	d.EXPECT().FindStateById(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id int64) (dao.Posting, error) {
		return row, nil
	})

	first, err := repo.CachedDetail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketAvailable, first.Bucket(now))
	// 缓存里确实是锁定前的数据
	assert.Equal(t, domain.LockStateOpen, store[id].LockState)

	second, err := repo.CachedDetail(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.LockStateAdminLocked, second.LockState)
	assert.Equal(t, domain.BucketAdminLocked, second.Bucket(now))
	assert.Equal(t, "Go 开发", second.Title)
}

func TestPostingRepository_CachedDetail(t *testing.T) {
	const id int64 = 2
	now := time.Now()
	cached := domain.Posting{
		ID:         id,
		EmployerID: 100,
		Content:    domain.Content{Title: "旧标题"},
		Approved:   true,
		LockState:  domain.LockStateOpen,
		ExpiresAt:  now.Add(time.Hour),
	}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (dao.PostingDAO, cache.PostingCache)

		wantBucket domain.Bucket
		wantErr    error
	}{
		{
			name: "缓存命中，状态以数据库为准",
			mock: func(ctrl *gomock.Controller) (dao.PostingDAO, cache.PostingCache) {
				d := daomocks.NewMockPostingDAO(ctrl)
				c := cachemocks.NewMockPostingCache(ctrl)
				c.EXPECT().GetPosting(gomock.Any(), id).Return(cached, nil)
				d.EXPECT().FindStateById(gomock.Any(), id).Return(dao.Posting{
					Id:        id,
					Approved:  true,
					LockState: domain.LockStateEmployerClosed.ToUint8(),
					ExpiresAt: now.Add(time.Hour).UnixMilli(),
				}, nil)
				return d, c
			},
			wantBucket: domain.BucketEmployerClosed,
		},
		{
			name: "缓存命中，已经过期",
			mock: func(ctrl *gomock.Controller) (dao.PostingDAO, cache.PostingCache) {
				d := daomocks.NewMockPostingDAO(ctrl)
				c := cachemocks.NewMockPostingCache(ctrl)
				c.EXPECT().GetPosting(gomock.Any(), id).Return(cached, nil)
				d.EXPECT().FindStateById(gomock.Any(), id).Return(dao.Posting{
					Id:        id,
					Approved:  true,
					ExpiresAt: now.Add(-time.Minute).UnixMilli(),
				}, nil)
				return d, c
			},
			wantBucket: domain.BucketExpired,
		},
		{
			name: "缓存命中，职位已经删除",
			mock: func(ctrl *gomock.Controller) (dao.PostingDAO, cache.PostingCache) {
				d := daomocks.NewMockPostingDAO(ctrl)
				c := cachemocks.NewMockPostingCache(ctrl)
				c.EXPECT().GetPosting(gomock.Any(), id).Return(cached, nil)
				d.EXPECT().FindStateById(gomock.Any(), id).Return(dao.Posting{}, gorm.ErrRecordNotFound)
				return d, c
			},
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "缓存命中，数据库出错",
			mock: func(ctrl *gomock.Controller) (dao.PostingDAO, cache.PostingCache) {
				d := daomocks.NewMockPostingDAO(ctrl)
				c := cachemocks.NewMockPostingCache(ctrl)
				c.EXPECT().GetPosting(gomock.Any(), id).Return(cached, nil)
				d.EXPECT().FindStateById(gomock.Any(), id).Return(dao.Posting{}, errors.New("mock db error"))
				return d, c
			},
			wantErr: bizerr.ErrDependencyUnavailable,
		},
		{
			name: "缓存出错，回源数据库",
			mock: func(ctrl *gomock.Controller) (dao.PostingDAO, cache.PostingCache) {
				d := daomocks.NewMockPostingDAO(ctrl)
				c := cachemocks.NewMockPostingCache(ctrl)
				c.EXPECT().GetPosting(gomock.Any(), id).Return(domain.Posting{}, errors.New("mock redis error"))
				d.EXPECT().FindById(gomock.Any(), id).Return(openEntity(id, now), nil)
				c.EXPECT().SetPosting(gomock.Any(), gomock.Any()).Return(errors.New("mock redis error"))
				return d, c
			},
			wantBucket: domain.BucketAvailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewPostingRepository(tc.mock(ctrl))
			p, err := repo.CachedDetail(context.Background(), id)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantBucket, p.Bucket(now))
		})
	}
}
