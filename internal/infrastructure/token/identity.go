package token

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/losdealla/members-api/internal/core/domain"
)

const identityTimeout = 5 * time.Second

// IdentityVerifier delegates token verification to an external identity
// provider: the token is presented to the provider's user endpoint and the
// returned account payload becomes the claim set. Used in deployments where
// tokens are issued by the provider rather than self-signed.
type IdentityVerifier struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewIdentityVerifier(baseURL, serviceKey string) *IdentityVerifier {
	return &IdentityVerifier{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: identityTimeout},
	}
}

type identityUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify looks the token up against GET {base}/auth/v1/user. A non-200
// answer means the provider rejected the token; a transport failure is
// surfaced as unavailability, never silently retried.
func (v *IdentityVerifier) Verify(ctx context.Context, raw string) (*domain.ClaimSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	req.Header.Set("apikey", v.serviceKey)
	req.Header.Set("Authorization", "Bearer "+raw)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, domain.ErrVerifierUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrTokenInvalid
	}

	var iu identityUser
	if err := json.NewDecoder(resp.Body).Decode(&iu); err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if iu.ID == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.ClaimSet{UserID: iu.ID, Email: iu.Email}, nil
}
