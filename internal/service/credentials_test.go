package service

import (
	"context"
	"errors"
	"testing"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports/mocks"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCredentialSource(t *testing.T) {
	const defaultURL = "http://default.onion"
	cipher := newTestCipher(t)
	apiKeyEnc, err := cipher.Encrypt("api-key-1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		profile *domain.MerchantProfile
		repoErr error
		wantURL string
		wantKey string
		code    string
	}{
		{name: "no profile", wantURL: defaultURL},
		{
			name:    "profile overrides url",
			profile: &domain.MerchantProfile{ProcessorURL: "http://own.onion", APIKeyEnc: apiKeyEnc},
			wantURL: "http://own.onion",
			wantKey: "api-key-1",
		},
		{
			name:    "profile without url",
			profile: &domain.MerchantProfile{APIKeyEnc: apiKeyEnc},
			wantURL: defaultURL,
			wantKey: "api-key-1",
		},
		{
			name:    "undecryptable key",
			profile: &domain.MerchantProfile{APIKeyEnc: "garbage"},
			code:    apperror.CodeEncryption,
		},
		{name: "repository error", repoErr: errors.New("db down"), code: apperror.CodePersistence},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			profiles := mocks.NewMockProfileRepository(ctrl)
			merchantID := uuid.New()
			if tc.profile != nil {
				tc.profile.MerchantID = merchantID
			}
			profiles.EXPECT().GetProfile(gomock.Any(), merchantID).Return(tc.profile, tc.repoErr)

			src := NewCredentialSource(profiles, cipher, defaultURL)
			creds, err := src.Credentials(context.Background(), merchantID)
			if tc.code != "" {
				assertAppError(t, err, tc.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, merchantID, creds.MerchantID)
			assert.Equal(t, tc.wantURL, creds.BaseURL)
			assert.Equal(t, tc.wantKey, creds.APIKey)
		})
	}
}

func TestStorePath(t *testing.T) {
	assert.Equal(t, "/api/v1/stores/abc/invoices/inv_1", storePath("abc", "invoices", "inv_1"))
	assert.Equal(t, "/api/v1/stores/a%2Fb", storePath("a/b"))
}
