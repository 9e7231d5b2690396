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
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/ecodeclub/jobboard/internal/email"
	"github.com/ecodeclub/jobboard/internal/notification/internal/domain"
	"github.com/ecodeclub/jobboard/internal/pkg/bizerr"
	"github.com/ecodeclub/jobboard/internal/profile"
	"github.com/gotomicro/ego/core/elog"
)

var ErrUnknownKind = errors.New("未知的通知类型")

type Config struct {
	// FromAlias 发信人昵称，发信地址是 email.aliyun.accountName
	FromAlias string `yaml:"fromAlias"`
}

//go:generate mockgen -source=./notifier.go -package=notifymocks -destination=./mocks/notifier.mock.go Service
type Service interface {
	// Notify 收件人没有邮箱时直接跳过
	Notify(ctx context.Context, n domain.Notification) error
}

type notifier struct {
	profileSvc profile.Service
	mailSvc    email.Service
	cfg        Config
	tmpl       *template.Template
	logger     *elog.Component
}

func NewService(profileSvc profile.Service, mailSvc email.Service, cfg Config) Service {
	return &notifier{
		profileSvc: profileSvc,
		mailSvc:    mailSvc,
		cfg:        cfg,
		tmpl:       template.Must(template.New("notification").Parse(templates)),
		logger:     elog.DefaultLogger.With(elog.FieldComponentName("notification.service")),
	}
}

func (s *notifier) Notify(ctx context.Context, n domain.Notification) error {
	if n.Kind != domain.KindSubmitted && n.Kind != domain.KindReviewed {
		return fmt.Errorf("%w: %s", ErrUnknownKind, n.Kind)
	}
	uid := n.Recipient()
	recipient, err := s.profileSvc.Profile(ctx, uid)
	if err != nil && !errors.Is(err, bizerr.ErrNotFound) {
		return err
	}
	if recipient.Email == "" {
		s.logger.Warn("收件人没有邮箱，跳过通知",
			elog.Int64("uid", uid),
			elog.String("key", n.Key))
		return nil
	}
	subject, body, err := s.render(n, recipient)
	if err != nil {
		return err
	}
	return s.mailSvc.SendMail(ctx, email.Mail{
		FromAlias: s.cfg.FromAlias,
		To:        recipient.Email,
		Subject:   subject,
		Body:      body,
	})
}

func (s *notifier) render(n domain.Notification, recipient profile.Profile) (string, []byte, error) {
	data := mailData{
		Nickname:     recipient.Nickname,
		PostingID:    n.PostingID,
		PostingTitle: n.PostingTitle,
		CandidateID:  n.CandidateID,
		Suitable:     n.Outcome == suitable,
	}
	var subject string
	switch n.Kind {
	case domain.KindSubmitted:
		subject = fmt.Sprintf("【新投递】%s", n.PostingTitle)
	default:
		subject = fmt.Sprintf("【投递进展】%s", n.PostingTitle)
	}
	var buf bytes.Buffer
	err := s.tmpl.ExecuteTemplate(&buf, string(n.Kind), data)
	if err != nil {
		return "", nil, fmt.Errorf("渲染邮件失败: %w", err)
	}
	return subject, buf.Bytes(), nil
}
