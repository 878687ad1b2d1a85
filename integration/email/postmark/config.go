package postmark

// Config holds Postmark API credentials.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN,required,notEmpty"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}
