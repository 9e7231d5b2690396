//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobboard/internal/pkg/actor"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/pkg/snowflake"
	"github.com/ecodeclub/jobboard/internal/posting/internal/errs"
	"github.com/ecodeclub/jobboard/internal/posting/internal/integration/startup"
	"github.com/ecodeclub/jobboard/internal/posting/internal/repository/dao"
	"github.com/ecodeclub/jobboard/internal/posting/internal/web"
	"github.com/ecodeclub/jobboard/internal/profile"
	profilemocks "github.com/ecodeclub/jobboard/internal/profile/mocks"
	"github.com/ecodeclub/jobboard/internal/test"
	testioc "github.com/ecodeclub/jobboard/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	employerUid  = 1001
	otherUid     = 1002
	candidateUid = 2001
	noProfileUid = 2002
	adminUid     = 9001
)

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	dao         dao.PostingDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	profileSvc := profilemocks.NewMockService(ctrl)
	profileSvc.EXPECT().Profile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid int64) (profile.Profile, error) {
			if uid == noProfileUid {
				return profile.Profile{}, bizerr.ErrNotFound
			}
			return profile.Profile{
				Uid:        uid,
				Industry:   "金融",
				Experience: 3,
			}, nil
		}).AnyTimes()

	idGen, err := snowflake.NewDefaultGenerator(1)
	require.NoError(s.T(), err)
	m := startup.InitModule(idGen, &profile.Module{Svc: profileSvc})

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(sessionMiddleware)
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	m.EmployerHdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(sessionMiddleware)
	m.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	s.db = testioc.InitDB()
	s.dao = dao.NewGORMPostingDAO(s.db)
}

// sessionMiddleware 用请求头模拟登录态
func sessionMiddleware(ctx *gin.Context) {
	uid, err := strconv.ParseInt(ctx.GetHeader("uid"), 10, 64)
	if err != nil {
		return
	}
	ctx.Set("_session", session.NewMemorySession(session.Claims{
		Uid:  uid,
		Data: map[string]string{actor.RoleClaimKey: ctx.GetHeader("role")},
	}))
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `postings`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) do(server *egin.Component, path string, uid int64, role actor.Role, body any) *test.JSONResponseRecorder[web.Posting] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	if uid > 0 {
		req.Header.Set("uid", strconv.FormatInt(uid, 10))
		req.Header.Set("role", role.String())
	}
	recorder := test.NewJSONResponseRecorder[web.Posting]()
	server.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) doList(server *egin.Component, path string, uid int64, role actor.Role, body any) test.Result[web.PostingList] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	if uid > 0 {
		req.Header.Set("uid", strconv.FormatInt(uid, 10))
		req.Header.Set("role", role.String())
	}
	recorder := test.NewJSONResponseRecorder[web.PostingList]()
	server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) insert(p dao.Posting) {
	now := time.Now().UnixMilli()
	if p.Ctime == 0 {
		p.Ctime = now
	}
	p.Utime = now
	if p.ExpiresAt == 0 {
		p.ExpiresAt = time.Now().Add(24 * time.Hour).UnixMilli()
	}
	require.NoError(s.T(), s.db.Create(&p).Error)
}

func (s *HandlerTestSuite) TestSave() {
	testCases := []struct {
		name     string
		uid      int64
		role     actor.Role
		req      web.SaveReq
		wantCode int
		after    func(t *testing.T, id int64)
	}{
		{
			name: "招聘方发布职位，进入待审核",
			uid:  employerUid,
			role: actor.RoleEmployer,
			req: web.SaveReq{Posting: web.Posting{
				Title:         "后端开发",
				Industry:      "金融",
				Headcount:     2,
				SalaryMin:     10000,
				SalaryMax:     20000,
				MinExperience: 1,
				ExpiresAt:     time.Now().Add(time.Hour).UnixMilli(),
			}},
			after: func(t *testing.T, id int64) {
				p, err := s.dao.FindById(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, int64(employerUid), p.EmployerId)
				assert.False(t, p.Approved)
				assert.Equal(t, uint8(0), p.LockState)
				assert.Equal(t, "后端开发", p.Title)
			},
		},
		{
			name: "候选人不能发布",
			uid:  candidateUid,
			role: actor.RoleCandidate,
			req: web.SaveReq{Posting: web.Posting{
				Title:     "后端开发",
				Headcount: 1,
				ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
			}},
			wantCode: errs.NotEmployer.Code,
		},
		{
			name: "缺少过期时间",
			uid:  employerUid,
			role: actor.RoleEmployer,
			req: web.SaveReq{Posting: web.Posting{
				Title:     "后端开发",
				Headcount: 1,
			}},
			wantCode: errs.ValidationFailed.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/employer/posting/save", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			req.Header.Set("uid", strconv.FormatInt(tc.uid, 10))
			req.Header.Set("role", tc.role.String())
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.after != nil {
				tc.after(t, res.Data)
			}
		})
	}
}

func (s *HandlerTestSuite) TestLifecycle() {
	t := s.T()
	const id = 101
	s.insert(dao.Posting{Id: id, EmployerId: employerUid, Title: "测试开发", Industry: "金融", Headcount: 1})

	// 未审核的职位对外不可见
	res := s.do(s.server, "/posting/detail", 0, actor.RoleUnknown, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, errs.PostingNotFound.Code, res.Code)

	res = s.do(s.adminServer, "/posting/approve", adminUid, actor.RoleAdmin, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, 0, res.Code)
	res = s.do(s.server, "/posting/detail", 0, actor.RoleUnknown, web.IdReq{ID: id}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "available", res.Data.Bucket)

	// 其他招聘方不能关闭
	res = s.do(s.server, "/employer/posting/close", otherUid, actor.RoleEmployer, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, errs.NotOwner.Code, res.Code)

	res = s.do(s.server, "/employer/posting/close", employerUid, actor.RoleEmployer, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, 0, res.Code)
	res = s.do(s.server, "/posting/detail", 0, actor.RoleUnknown, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, errs.PostingNotFound.Code, res.Code)

	// 管理员锁定覆盖招聘方关闭
	res = s.do(s.adminServer, "/posting/lock", adminUid, actor.RoleAdmin, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, 0, res.Code)
	res = s.do(s.adminServer, "/posting/detail", adminUid, actor.RoleAdmin, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, "admin_locked", res.Data.Bucket)

	// 招聘方不能解除管理员锁定
	res = s.do(s.server, "/employer/posting/reopen", employerUid, actor.RoleEmployer, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, errs.Forbidden.Code, res.Code)

	res = s.do(s.adminServer, "/posting/unlock", adminUid, actor.RoleAdmin, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, 0, res.Code)
	res = s.do(s.server, "/posting/detail", 0, actor.RoleUnknown, web.IdReq{ID: id}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "available", res.Data.Bucket)

	// 修改后重新审核
	res = s.do(s.server, "/employer/posting/edit", employerUid, actor.RoleEmployer, web.SaveReq{Posting: web.Posting{
		ID:        id,
		Title:     "高级测试开发",
		Industry:  "金融",
		Headcount: 2,
		ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
	}}).MustScan()
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "pending", res.Data.Bucket)
	assert.Equal(t, "高级测试开发", res.Data.Title)

	res = s.do(s.server, "/employer/posting/delete", employerUid, actor.RoleEmployer, web.IdReq{ID: id}).MustScan()
	assert.Equal(t, 0, res.Code)
	_, err := s.dao.FindById(context.Background(), id)
	assert.Error(t, err)
}

func (s *HandlerTestSuite) TestPublicList() {
	t := s.T()
	now := time.Now()
	s.insert(dao.Posting{Id: 1, EmployerId: employerUid, Title: "可投递", Industry: "金融", Headcount: 1, Approved: true, MinExperience: 1})
	s.insert(dao.Posting{Id: 2, EmployerId: employerUid, Title: "待审核", Industry: "金融", Headcount: 1})
	s.insert(dao.Posting{Id: 3, EmployerId: employerUid, Title: "过期", Industry: "金融", Headcount: 1, Approved: true,
		ExpiresAt: now.Add(-time.Hour).UnixMilli()})
	s.insert(dao.Posting{Id: 4, EmployerId: employerUid, Title: "关闭", Industry: "金融", Headcount: 1, Approved: true, LockState: 2})
	s.insert(dao.Posting{Id: 5, EmployerId: otherUid, Title: "年限太高", Industry: "金融", Headcount: 1, Approved: true, MinExperience: 5})
	s.insert(dao.Posting{Id: 6, EmployerId: otherUid, Title: "其他行业", Industry: "教育", Headcount: 1, Approved: true})

	res := s.doList(s.server, "/posting/list", 0, actor.RoleUnknown, web.Page{Limit: 10})
	assert.Equal(t, int64(3), res.Data.Total)

	res = s.doList(s.server, "/posting/suitable", candidateUid, actor.RoleCandidate, web.Page{Limit: 10})
	require.Equal(t, int64(1), res.Data.Total)
	assert.Equal(t, int64(1), res.Data.List[0].ID)

	res = s.doList(s.server, "/posting/suitable", noProfileUid, actor.RoleCandidate, web.Page{Limit: 10})
	assert.Equal(t, errs.ProfileRequired.Code, res.Code)

	res = s.doList(s.server, "/employer/posting/list", employerUid, actor.RoleEmployer, web.ListReq{Limit: 10})
	assert.Equal(t, int64(4), res.Data.Total)
	res = s.doList(s.server, "/employer/posting/list", employerUid, actor.RoleEmployer, web.ListReq{Bucket: "expired", Limit: 10})
	require.Equal(t, int64(1), res.Data.Total)
	assert.Equal(t, "过期", res.Data.List[0].Title)

	res = s.doList(s.adminServer, "/posting/list", adminUid, actor.RoleAdmin, web.ListReq{Bucket: "pending", Limit: 10})
	require.Equal(t, int64(1), res.Data.Total)
	assert.Equal(t, int64(2), res.Data.List[0].ID)
}

func TestPostingHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
