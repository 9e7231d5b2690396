package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/ecodeclub/jobboard/internal/email"
)

const defaultEndpoint = "dm.aliyuncs.com"

type Config struct {
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// 控制台配置的发信地址，例如 noreply@mail.jobboard.com
	AccountName string `yaml:"accountName"`
	Endpoint    string `yaml:"endpoint"`
}

// DirectMail 阿里云邮件推送
type DirectMail struct {
	client      *dm20151123.Client
	accountName string
}

func NewDirectMail(cfg Config) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMail{
		client:      client,
		accountName: cfg.AccountName,
	}, nil
}

func (d *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	_, err := d.client.SingleSendMailWithOptions(d.request(mail), &util.RuntimeOptions{})
	if err != nil {
		return d.wrap(err)
	}
	return nil
}

// request 发信地址固定为控制台配置的 accountName，mail 只能指定昵称
func (d *DirectMail) request(mail email.Mail) *dm20151123.SingleSendMailRequest {
	return &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(d.accountName),
		FromAlias:   tea.String(mail.FromAlias),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
}

func (d *DirectMail) wrap(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送错误: %s", tea.StringValue(sdkErr.Message))
	var data map[string]any
	if sdkErr.Data != nil {
		_ = json.NewDecoder(strings.NewReader(tea.StringValue(sdkErr.Data))).Decode(&data)
	}
	if requestId, ok := data["RequestId"]; ok {
		msg += fmt.Sprintf(" | RequestId: %v", requestId)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
