package app

import (
	"fmt"

	"trainctl/internal/binding"
	"trainctl/internal/config"
	"trainctl/internal/provider"
	"trainctl/pkg/logging"
)

// Services holds the provider and the binder the tile reaches it through.
type Services struct {
	Provider *provider.Service
	Binder   binding.Binder

	close func()
}

// NewProviderService builds the HTTP provider from its configuration.
func NewProviderService(cfg config.ProviderConfig) *provider.Service {
	svc := provider.NewService(provider.ServiceConfig{
		Endpoint: cfg.Endpoint,
		Token:    cfg.Token,
		Count:    cfg.Count,
		Timeout:  cfg.Timeout,
	})
	if !svc.HasToken() {
		logging.Warn("Bootstrap", "No API token configured, set %s or provider.token", config.TokenEnvVar)
	}
	return svc
}

// InitializeServices creates the provider and the binder selected by
// binding.mode.
func InitializeServices(cfg *Config) (*Services, error) {
	tc := cfg.Trainctl
	svc := NewProviderService(tc.Provider)

	switch tc.Binding.Mode {
	case config.BindingModeLocal, "":
		local := binding.NewLocal()
		local.Register(provider.ScheduleIdentity, func() provider.Handle {
			return provider.NewServiceHandle(svc)
		})
		return &Services{Provider: svc, Binder: local, close: local.Close}, nil

	case config.BindingModeProcess:
		var env []string
		if tc.Provider.Token != "" {
			env = append(env, config.TokenEnvVar+"="+tc.Provider.Token)
		}
		process, err := binding.NewProcess(binding.ProcessConfig{
			Command:      tc.Binding.Command,
			Env:          env,
			PingInterval: tc.Binding.PingInterval,
		})
		if err != nil {
			return nil, err
		}
		return &Services{Provider: svc, Binder: process, close: func() {}}, nil

	default:
		return nil, fmt.Errorf("%w: unknown binding mode %q", config.ErrInvalidConfig, tc.Binding.Mode)
	}
}

// Close releases the binder.
func (s *Services) Close() {
	if s.close != nil {
		s.close()
	}
}
