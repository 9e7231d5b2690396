package dao

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecodeclub/jobboard/internal/posting/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMPostingDAO_Edit(t *testing.T) {
	testCases := []struct {
		name         string
		mock         func(t *testing.T) *sql.DB
		wantAffected int64
		wantErr      error
	}{
		{
			name: "更新成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `postings` SET .*`lock_state`=.* WHERE id = \\? AND employer_id = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
			wantAffected: 1,
		},
		{
			name: "不是自己的职位",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `postings` SET .* WHERE id = \\? AND employer_id = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantAffected: 0,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `postings` SET .*").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMPostingDAO(newMockDB(t, tc.mock(t)))
			affected, err := d.Edit(context.Background(), Posting{
				Id:         1,
				EmployerId: 2,
				Title:      "Go 开发",
				Headcount:  1,
			})
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantAffected, affected)
		})
	}
}

func TestGORMPostingDAO_SetEmployerLockState(t *testing.T) {
	testCases := []struct {
		name         string
		mock         func(t *testing.T) *sql.DB
		wantAffected int64
	}{
		{
			name: "关闭成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `postings` SET .* WHERE id = \\? AND employer_id = \\? AND lock_state <> \\?").
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(10), int64(20), domain.LockStateAdminLocked.ToUint8()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
			wantAffected: 1,
		},
		{
			name: "已被管理员锁定",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `postings` SET .* WHERE id = \\? AND employer_id = \\? AND lock_state <> \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantAffected: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMPostingDAO(newMockDB(t, tc.mock(t)))
			affected, err := d.SetEmployerLockState(context.Background(), 10, 20, domain.LockStateEmployerClosed.ToUint8())
			require.NoError(t, err)
			assert.Equal(t, tc.wantAffected, affected)
		})
	}
}

func TestGORMPostingDAO_FindById(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "查找成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "employer_id", "title", "lock_state"}).
					AddRow(7, 8, "Go 开发", 0)
				mock.ExpectQuery("SELECT \\* FROM `postings` WHERE id = \\?").WillReturnRows(rows)
				return mockDB
			},
			wantId: 7,
		},
		{
			name: "不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "employer_id", "title", "lock_state"})
				mock.ExpectQuery("SELECT \\* FROM `postings` WHERE id = \\?").WillReturnRows(rows)
				return mockDB
			},
			wantErr: gorm.ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMPostingDAO(newMockDB(t, tc.mock(t)))
			p, err := d.FindById(context.Background(), 7)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantId, p.Id)
		})
	}
}

func TestGORMPostingDAO_Count(t *testing.T) {
	open := int64(domain.LockStateOpen.ToUint8())
	testCases := []struct {
		name  string
		query Query
		sql   string
		args  []driver.Value
	}{
		{
			name:  "可投递",
			query: Query{Bucket: domain.BucketAvailable.ToUint8(), Now: 100},
			sql:   "SELECT count\\(\\*\\) FROM `postings` WHERE lock_state = \\? AND expires_at > \\? AND approved = \\?",
			args:  []driver.Value{open, int64(100), true},
		},
		{
			name:  "待审核",
			query: Query{Bucket: domain.BucketPending.ToUint8(), Now: 100},
			sql:   "SELECT count\\(\\*\\) FROM `postings` WHERE lock_state = \\? AND expires_at > \\? AND approved = \\?",
			args:  []driver.Value{open, int64(100), false},
		},
		{
			name:  "已过期",
			query: Query{Bucket: domain.BucketExpired.ToUint8(), Now: 100},
			sql:   "SELECT count\\(\\*\\) FROM `postings` WHERE lock_state = \\? AND expires_at <= \\?",
			args:  []driver.Value{open, int64(100)},
		},
		{
			name:  "管理员锁定",
			query: Query{Bucket: domain.BucketAdminLocked.ToUint8(), Now: 100},
			sql:   "SELECT count\\(\\*\\) FROM `postings` WHERE lock_state = \\?",
			args:  []driver.Value{int64(domain.LockStateAdminLocked.ToUint8())},
		},
		{
			name:  "招聘方关闭",
			query: Query{Bucket: domain.BucketEmployerClosed.ToUint8(), Now: 100},
			sql:   "SELECT count\\(\\*\\) FROM `postings` WHERE lock_state = \\?",
			args:  []driver.Value{int64(domain.LockStateEmployerClosed.ToUint8())},
		},
		{
			name:  "全部",
			query: Query{},
			sql:   "SELECT count\\(\\*\\) FROM `postings`$",
		},
		{
			name: "招聘方自己的待审核职位",
			query: Query{
				Bucket:     domain.BucketPending.ToUint8(),
				EmployerId: 3,
				Now:        100,
			},
			sql:  "SELECT count\\(\\*\\) FROM `postings` WHERE .*lock_state = \\? AND expires_at > \\? AND approved = \\?.* AND employer_id = \\?",
			args: []driver.Value{open, int64(100), false, int64(3)},
		},
		{
			name: "适合候选人",
			query: Query{
				Bucket:    domain.BucketAvailable.ToUint8(),
				Candidate: &CandidateCond{Industry: "互联网", Experience: 3},
				Now:       100,
			},
			sql:  "SELECT count\\(\\*\\) FROM `postings` WHERE .*approved = \\?.*industry = \\? AND min_experience <= \\?",
			args: []driver.Value{open, int64(100), true, "互联网", int64(3)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			exp := mock.ExpectQuery(tc.sql)
			if len(tc.args) > 0 {
				exp = exp.WithArgs(tc.args...)
			}
			exp.WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
			d := NewGORMPostingDAO(newMockDB(t, mockDB))
			cnt, err := d.Count(context.Background(), tc.query)
			require.NoError(t, err)
			assert.Equal(t, int64(5), cnt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMPostingDAO_FindStateById(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	// 只查询状态相关的字段
	mock.ExpectQuery("SELECT `id`,`approved`,`lock_state`,`expires_at`,`utime` FROM `postings` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "approved", "lock_state", "expires_at", "utime"}).
			AddRow(int64(7), true, int64(domain.LockStateAdminLocked.ToUint8()), int64(200), int64(150)))
	d := NewGORMPostingDAO(newMockDB(t, mockDB))
	p, err := d.FindStateById(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, Posting{
		Id:        7,
		Approved:  true,
		LockState: domain.LockStateAdminLocked.ToUint8(),
		ExpiresAt: 200,
		Utime:     150,
	}, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}
