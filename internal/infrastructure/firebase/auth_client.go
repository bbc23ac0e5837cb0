package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient mirrors admin accounts into Firebase Authentication so the
// mobile clients can resolve managers by email.
type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			existing, lookupErr := f.client.GetUserByEmail(ctx, email)
			if lookupErr == nil {
				return existing.UID, nil
			}
		}
		return "", err
	}

	return user.UID, nil
}
