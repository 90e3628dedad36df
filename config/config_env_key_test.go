package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"dynamicConfig": map[string]any{
			"publicCacheTtl": "5m",
			"autoSeed":       true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "DYNAMICCONFIG_PUBLICCACHETTL", want: "dynamicConfig.publicCacheTtl"},
		{envKey: "DYNAMICCONFIG_AUTOSEED", want: "dynamicConfig.autoSeed"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.DynamicConfig == nil || cfg.DynamicConfig.DefaultKey != "default" {
		t.Fatalf("expected default config key, got %+v", cfg.DynamicConfig)
	}
	if !cfg.DynamicConfig.SeedsOnRead() {
		t.Fatalf("expected autoSeed to default to true")
	}
	if cfg.DynamicConfig.PublicCacheTTL != defaultPublicCacheTTL {
		t.Fatalf("publicCacheTtl = %s, want %s", cfg.DynamicConfig.PublicCacheTTL, defaultPublicCacheTTL)
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("expected default access token ttl, got %+v", cfg.Auth)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	disabled := false
	cfg := &Config{
		DynamicConfig: &DynamicConfigConfig{DefaultKey: "tenant-a", AutoSeed: &disabled},
		Metrics:       &MetricsConfig{Enabled: true},
	}
	applyDefaults(cfg)

	if cfg.DynamicConfig.DefaultKey != "tenant-a" {
		t.Fatalf("defaultKey overwritten: %s", cfg.DynamicConfig.DefaultKey)
	}
	if cfg.DynamicConfig.SeedsOnRead() {
		t.Fatalf("autoSeed must stay disabled")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("metrics path = %q", cfg.Metrics.Path)
	}
}

func TestApplyDefaults_PartialDynamicConfigKeepsAutoSeed(t *testing.T) {
	cfg := &Config{
		DynamicConfig: &DynamicConfigConfig{DefaultKey: "tenant-a"},
	}
	applyDefaults(cfg)

	if cfg.DynamicConfig.AutoSeed == nil || !*cfg.DynamicConfig.AutoSeed {
		t.Fatalf("autoSeed must default to true when only defaultKey is set")
	}
	if cfg.DynamicConfig.PublicCacheTTL != defaultPublicCacheTTL {
		t.Fatalf("publicCacheTtl = %s, want %s", cfg.DynamicConfig.PublicCacheTTL, defaultPublicCacheTTL)
	}
}

func TestDynamicConfigConfig_SeedsOnRead(t *testing.T) {
	enabled, disabled := true, false

	tests := []struct {
		name string
		cfg  *DynamicConfigConfig
		want bool
	}{
		{name: "nil block", cfg: nil, want: true},
		{name: "unset", cfg: &DynamicConfigConfig{}, want: true},
		{name: "enabled", cfg: &DynamicConfigConfig{AutoSeed: &enabled}, want: true},
		{name: "disabled", cfg: &DynamicConfigConfig{AutoSeed: &disabled}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SeedsOnRead(); got != tt.want {
				t.Fatalf("SeedsOnRead() = %v, want %v", got, tt.want)
			}
		})
	}
}
