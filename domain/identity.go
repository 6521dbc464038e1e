package domain

// Identity is the decoded local user, as supplied by the credential provider.
type Identity struct {
	ID       string
	Username string
	FullName string
	Avatar   string
}

func (i Identity) Valid() bool {
	return i.ID != ""
}
