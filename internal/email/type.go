package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	// FromAlias 发信人昵称，发信地址由具体的实现决定
	FromAlias string
	To        string
	Subject   string
	// HTML 正文
	Body []byte
}
