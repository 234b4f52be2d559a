package models

// Principal is the verified external identity extracted from a bearer
// token: the provider's subject id plus whatever profile metadata the
// provider attached at sign-up. The server trusts the verification
// completely; a Principal is only ever constructed after the token
// signature (or the provider itself) has vouched for it.
type Principal struct {
	SubjectID string
	Email     string

	// Optional profile metadata. Used once, when the local User record
	// is provisioned on first sight; never synced afterwards.
	Username  string
	Name      string
	AvatarURL string
}
