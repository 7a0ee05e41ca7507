package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/machinebox/graphql"
)

// UserResponse represents the GraphQL user response
type UserResponse struct {
	User struct {
		UserId   string `json:"userId"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	} `json:"user"`
}

// IdentityService handles communication with the identity service
type IdentityService struct {
	client  *graphql.Client
	baseURL string
}

// NewIdentityService creates a new identity service client
func NewIdentityService() *IdentityService {
	baseURL := os.Getenv("USER_SERVICE_URL")

	log.Printf("Initializing IdentityService with URL: %s", baseURL)
	client := graphql.NewClient(baseURL)

	return &IdentityService{
		client:  client,
		baseURL: baseURL,
	}
}

// GetUserByID fetches a user by their ID
func (s *IdentityService) GetUserByID(userID string) (*UserResponse, error) {
	req := graphql.NewRequest(`
        query GetUser($userId: ID!) {
            user(userId: $userId) {
                userId
                username
                email
                role
            }
        }
    `)

	req.Var("userId", userID)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var response UserResponse
	if err := s.client.Run(ctx, req, &response); err != nil {
		log.Printf("GraphQL request failed: %v", err)
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if response.User.UserId == "" {
		return nil, fmt.Errorf("user not found with ID: %s", userID)
	}

	return &response, nil
}
