package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/snowflake"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository"
	repomocks "github.com/ecodeclub/jobboard/internal/posting/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testNow  = time.UnixMilli(1_700_000_000_000)
	admin    = actor.New(1, actor.RoleAdmin)
	employer = actor.New(100, actor.RoleEmployer)
	other    = actor.New(200, actor.RoleEmployer)
	cand     = actor.New(300, actor.RoleCandidate)
)

func newTestService(t *testing.T, repo repository.PostingRepository) *service {
	idGen, err := snowflake.NewDefaultGenerator(1)
	require.NoError(t, err)
	svc := NewService(repo, idGen).(*service)
	svc.now = func() time.Time {
		return testNow
	}
	return svc
}

func openPosting(id int64) domain.Posting {
	return domain.Posting{
		ID:         id,
		EmployerID: employer.Uid,
		Content: domain.Content{
			Title:     "Go 开发",
			Industry:  "互联网",
			Headcount: 1,
		},
		Approved:  true,
		LockState: domain.LockStateOpen,
		ExpiresAt: testNow.Add(24 * time.Hour),
		Ctime:     testNow.Add(-time.Hour),
	}
}

func TestService_Create(t *testing.T) {
	input := domain.Posting{
		Content: domain.Content{
			Title:     "Go 开发",
			Headcount: 2,
		},
		// 这些字段都会被重置
		Approved:   true,
		LockState:  domain.LockStateAdminLocked,
		EmployerID: 999,
		ExpiresAt:  testNow.Add(time.Hour),
	}
	testCases := []struct {
		name    string
		act     actor.Actor
		input   domain.Posting
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantErr error
	}{
		{
			name:  "招聘方发布",
			act:   employer,
			input: input,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p domain.Posting) (int64, error) {
						assert.NotZero(t, p.ID)
						assert.Equal(t, employer.Uid, p.EmployerID)
						assert.False(t, p.Approved)
						assert.Equal(t, domain.LockStateOpen, p.LockState)
						assert.Equal(t, testNow, p.Ctime)
						return p.ID, nil
					})
				return repo
			},
		},
		{
			name:  "候选人不能发布",
			act:   cand,
			input: input,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				return repomocks.NewMockPostingRepository(ctrl)
			},
			wantErr: bizerr.ErrNotEmployer,
		},
		{
			name: "字段不合法",
			act:  employer,
			input: domain.Posting{
				Content:   domain.Content{Headcount: 1},
				ExpiresAt: testNow,
			},
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				return repomocks.NewMockPostingRepository(ctrl)
			},
			wantErr: bizerr.ErrValidationFailed,
		},
		{
			name:  "数据库不可用",
			act:   employer,
			input: input,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), bizerr.Dependency(errors.New("mock db error")))
				return repo
			},
			wantErr: bizerr.ErrDependencyUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(t, tc.mock(ctrl))
			p, err := svc.Create(context.Background(), tc.act, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, domain.BucketPending, p.Bucket(testNow))
		})
	}
}

func TestService_Edit(t *testing.T) {
	edited := openPosting(1)
	edited.Title = "高级 Go 开发"
	testCases := []struct {
		name    string
		act     actor.Actor
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantErr error
	}{
		{
			name: "编辑已上线的职位",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().Edit(gomock.Any(), gomock.Any()).Return(true, nil)
				return repo
			},
		},
		{
			name: "编辑被管理员锁定的职位",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateAdminLocked
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				repo.EXPECT().Edit(gomock.Any(), gomock.Any()).Return(true, nil)
				return repo
			},
		},
		{
			name: "内容没有变化",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil).Times(2)
				repo.EXPECT().Edit(gomock.Any(), gomock.Any()).Return(false, nil)
				return repo
			},
		},
		{
			name: "编辑期间被删除",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				first := repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().Edit(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Posting{}, bizerr.ErrNotFound).After(first)
				return repo
			},
			wantErr: bizerr.ErrNotFound,
		},
		{
			name: "不是发布者",
			act:  other,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
			wantErr: bizerr.ErrNotOwner,
		},
		{
			name: "管理员不能编辑",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "职位不存在",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Posting{}, bizerr.ErrNotFound)
				return repo
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(t, tc.mock(ctrl))
			p, err := svc.Edit(context.Background(), tc.act, edited)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.False(t, p.Approved)
			assert.Equal(t, domain.LockStateOpen, p.LockState)
			assert.Equal(t, testNow, p.Ctime)
			assert.Equal(t, employer.Uid, p.EmployerID)
			assert.Equal(t, domain.BucketPending, p.Bucket(testNow))
		})
	}
}

func TestService_Approve(t *testing.T) {
	testCases := []struct {
		name    string
		act     actor.Actor
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantErr error
	}{
		{
			name: "审核通过",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.Approved = false
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				repo.EXPECT().Approve(gomock.Any(), int64(1)).Return(true, nil)
				return repo
			},
		},
		{
			name: "已经审核过",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
		},
		{
			name: "招聘方不能审核",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				return repomocks.NewMockPostingRepository(ctrl)
			},
			wantErr: bizerr.ErrNotAdmin,
		},
		{
			name: "职位不存在",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Posting{}, bizerr.ErrNotFound)
				return repo
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(t, tc.mock(ctrl))
			err := svc.Approve(context.Background(), tc.act, 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Lock(t *testing.T) {
	testCases := []struct {
		name    string
		act     actor.Actor
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantErr error
	}{
		{
			name: "管理员锁定别人的职位",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().SetLockState(gomock.Any(), int64(1), domain.LockStateAdminLocked).Return(true, nil)
				return repo
			},
		},
		{
			name: "管理员锁定招聘方已关闭的职位",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateEmployerClosed
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				repo.EXPECT().SetLockState(gomock.Any(), int64(1), domain.LockStateAdminLocked).Return(true, nil)
				return repo
			},
		},
		{
			name: "招聘方关闭自己的职位",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().SetEmployerLockState(gomock.Any(), int64(1), employer.Uid, domain.LockStateEmployerClosed).Return(true, nil)
				return repo
			},
		},
		{
			name: "招聘方关闭别人的职位",
			act:  other,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				// 没有任何写操作
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "招聘方不能覆盖管理员锁定",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateAdminLocked
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return repo
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "并发被管理员锁定",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				first := repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().SetEmployerLockState(gomock.Any(), int64(1), employer.Uid, domain.LockStateEmployerClosed).Return(false, nil)
				locked := openPosting(1)
				locked.LockState = domain.LockStateAdminLocked
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(locked, nil).After(first)
				return repo
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "候选人不能锁定",
			act:  cand,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				return repomocks.NewMockPostingRepository(ctrl)
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "数据库不可用",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().SetLockState(gomock.Any(), int64(1), domain.LockStateAdminLocked).
					Return(false, bizerr.Dependency(errors.New("mock db error")))
				return repo
			},
			wantErr: bizerr.ErrDependencyUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(t, tc.mock(ctrl))
			err := svc.Lock(context.Background(), tc.act, 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Unlock(t *testing.T) {
	testCases := []struct {
		name    string
		act     actor.Actor
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantErr error
	}{
		{
			name: "管理员解锁",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateAdminLocked
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				repo.EXPECT().SetLockState(gomock.Any(), int64(1), domain.LockStateOpen).Return(true, nil)
				return repo
			},
		},
		{
			name: "招聘方重新开放自己的职位",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateEmployerClosed
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				repo.EXPECT().SetEmployerLockState(gomock.Any(), int64(1), employer.Uid, domain.LockStateOpen).Return(true, nil)
				return repo
			},
		},
		{
			name: "已经开放_不写数据库",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
		},
		{
			name: "管理员解锁已经开放的职位",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
		},
		{
			name: "招聘方不能解除管理员锁定",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateAdminLocked
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return repo
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "招聘方解锁别人的职位",
			act:  other,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateEmployerClosed
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				return repo
			},
			wantErr: bizerr.ErrNotOwner,
		},
		{
			name: "并发已经被别人解锁",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				p := openPosting(1)
				p.LockState = domain.LockStateAdminLocked
				first := repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(p, nil)
				repo.EXPECT().SetLockState(gomock.Any(), int64(1), domain.LockStateOpen).Return(false, nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil).After(first)
				return repo
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(t, tc.mock(ctrl))
			err := svc.Unlock(context.Background(), tc.act, 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// 连续两次解锁，第二次没有任何写操作
func TestService_UnlockTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostingRepository(ctrl)
	closed := openPosting(1)
	closed.LockState = domain.LockStateEmployerClosed
	first := repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(closed, nil)
	repo.EXPECT().SetEmployerLockState(gomock.Any(), int64(1), employer.Uid, domain.LockStateOpen).Return(true, nil).Times(1)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil).After(first)
	svc := newTestService(t, repo)
	require.NoError(t, svc.Unlock(context.Background(), employer, 1))
	require.NoError(t, svc.Unlock(context.Background(), employer, 1))
}

func TestService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		act     actor.Actor
		mock    func(ctrl *gomock.Controller) repository.PostingRepository
		wantErr error
	}{
		{
			name: "管理员删除",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)
				return repo
			},
		},
		{
			name: "招聘方删除自己的职位",
			act:  employer,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().DeleteByEmployer(gomock.Any(), int64(1), employer.Uid).Return(true, nil)
				return repo
			},
		},
		{
			name: "招聘方删除别人的职位",
			act:  other,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
			wantErr: bizerr.ErrNotOwner,
		},
		{
			name: "候选人不能删除",
			act:  cand,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				return repo
			},
			wantErr: bizerr.ErrForbidden,
		},
		{
			name: "并发删除",
			act:  admin,
			mock: func(ctrl *gomock.Controller) repository.PostingRepository {
				repo := repomocks.NewMockPostingRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(openPosting(1), nil)
				repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(false, nil)
				return repo
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newTestService(t, tc.mock(ctrl))
			err := svc.Delete(context.Background(), tc.act, 1)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostingRepository(ctrl)
	q := domain.Query{Bucket: domain.BucketAvailable}
	want := domain.Query{Bucket: domain.BucketAvailable, Now: testNow}
	repo.EXPECT().List(gomock.Any(), want, 0, 10).Return([]domain.Posting{openPosting(1), openPosting(2)}, nil)
	repo.EXPECT().Count(gomock.Any(), want).Return(int64(12), nil)
	svc := newTestService(t, repo)
	total, list, err := svc.List(context.Background(), q, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, list, 2)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostingRepository(ctrl)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, q domain.Query) (int64, error) {
			assert.Equal(t, testNow, q.Now)
			return int64(q.Bucket) * 10, nil
		}).Times(len(domain.Buckets))
	svc := newTestService(t, repo)
	res, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[domain.Bucket]int64{
		domain.BucketAvailable:      10,
		domain.BucketPending:        20,
		domain.BucketExpired:        30,
		domain.BucketAdminLocked:    40,
		domain.BucketEmployerClosed: 50,
	}, res)
}

func TestService_GetByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostingRepository(ctrl)
	repo.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2, 3}).Return([]domain.Posting{openPosting(1), openPosting(3)}, nil)
	svc := newTestService(t, repo)
	res, err := svc.GetByIDs(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, res, 2)
	_, ok := res[2]
	assert.False(t, ok)
}
