package types

// Attendee is a single check-in. GithubID is a pointer so that a request
// without the field stores a document without it.
type Attendee struct {
	GithubID *string `bson:"githubID,omitempty" json:"githubID,omitempty"`
}
