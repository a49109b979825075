package user

// User is a local replica of an identity-provider account, kept in sync
// by provider webhooks. The service never stores credentials.
type User struct {
	ID         int64
	ExternalID string
	Username   string
	Email      string
	Img        string
}
