package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jobmatch/backend/models"
)

const usersCollection = "users"

// FirestoreStore keeps users in a Firestore collection keyed by generated document IDs
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed user store
func NewFirestoreStore(ctx context.Context, projectID string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreStore) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user, rejecting duplicate emails inside a transaction
func (f *FirestoreStore) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	users := f.client.Collection(usersCollection)
	docRef := users.NewDoc()

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(users.Where("email", "==", user.Email).Limit(1)).GetAll()
		if err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if len(existing) > 0 {
			return ErrUserExists
		}
		return tx.Create(docRef, user)
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = docRef.ID
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return toUser(doc)
}

// GetUserByID retrieves a user by document ID
func (f *FirestoreStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, ErrUserNotFound
	}

	doc, err := f.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(doc)
}

// DeleteUser deletes a user by document ID
func (f *FirestoreStore) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrUserNotFound
	}

	_, err := f.client.Collection(usersCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toUser(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}
