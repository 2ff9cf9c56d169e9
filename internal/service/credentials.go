package service

import (
	"context"
	"net/url"

	"btc-payment-core/internal/core/domain"
	"btc-payment-core/internal/core/ports"
	"btc-payment-core/pkg/apperror"

	"github.com/google/uuid"
)

type profileCredentials struct {
	profiles   ports.ProfileRepository
	encSvc     ports.EncryptionService
	defaultURL string
}

// NewCredentialSource resolves processor credentials from the merchant
// profile store. A profile without a URL falls back to defaultURL.
func NewCredentialSource(profiles ports.ProfileRepository, encSvc ports.EncryptionService, defaultURL string) ports.CredentialSource {
	return &profileCredentials{profiles: profiles, encSvc: encSvc, defaultURL: defaultURL}
}

// Credentials never fails for a merchant without a profile; the gateway
// factory rejects incomplete credentials before any call is made.
func (c *profileCredentials) Credentials(ctx context.Context, merchantID uuid.UUID) (domain.ProcessorCredentials, error) {
	creds := domain.ProcessorCredentials{MerchantID: merchantID, BaseURL: c.defaultURL}

	profile, err := c.profiles.GetProfile(ctx, merchantID)
	if err != nil {
		return creds, apperror.InternalError(err)
	}
	if profile == nil {
		return creds, nil
	}
	if profile.ProcessorURL != "" {
		creds.BaseURL = profile.ProcessorURL
	}
	if profile.APIKeyEnc != "" {
		apiKey, err := c.encSvc.Decrypt(profile.APIKeyEnc)
		if err != nil {
			return creds, apperror.ErrEncryptionFailure(err)
		}
		creds.APIKey = apiKey
	}
	return creds, nil
}

// processorClient builds a gateway client for one merchant.
func processorClient(ctx context.Context, src ports.CredentialSource, factory ports.GatewayFactory, merchantID uuid.UUID) (ports.GatewayClient, error) {
	creds, err := src.Credentials(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return factory.ForMerchant(creds)
}

// storePath builds a Greenfield path under a store.
func storePath(storeID string, parts ...string) string {
	p := "/api/v1/stores/" + url.PathEscape(storeID)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}
