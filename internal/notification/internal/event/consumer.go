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
package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/jobboard/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type ApplicationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewApplicationEventConsumer(svc service.Service, q mq.MQ) (*ApplicationEventConsumer, error) {
	const groupID = "notification.application"
	consumer, err := q.Consumer(ApplicationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &ApplicationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponentName("notification.application.consumer")),
	}, nil
}

func (c *ApplicationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费投递事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

// Consume 发送失败只记录日志，不会阻塞后续消息
func (c *ApplicationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt ApplicationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.Notify(ctx, evt.toDomain())
	if err != nil {
		c.logger.Error("发送投递通知失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
	return nil
}

func (c *ApplicationEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
