package mail

const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
)

type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
