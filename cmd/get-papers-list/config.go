// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-papers/internal/pubmed"
	"github.com/pdiddy/pubmed-papers/pkg/types"
)

func init() {
	viper.SetDefault("pubmed.base_url", pubmed.DefaultBaseURL)
	viper.SetDefault("pubmed.timeout", "30s")
	viper.SetDefault("pubmed.request_interval", "500ms")
	viper.SetDefault("pubmed.cache_ttl", "10m")
	viper.SetDefault("pubmed.user_agent", "get-papers-list/"+version)
	viper.SetDefault("store.max_results", 100)
	viper.SetDefault("logging.level", "info")
}

// loadConfig assembles the pipeline configuration from flags, environment
// and config file (in that order of precedence) and validates the
// classification options.
func loadConfig() (types.PipelineConfig, error) {
	cfg := types.PipelineConfig{
		PubMed: types.PubMedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:         viper.GetDuration("pubmed.timeout"),
				UserAgent:       viper.GetString("pubmed.user_agent"),
				RequestInterval: viper.GetDuration("pubmed.request_interval"),
			},
			BaseURL:    viper.GetString("pubmed.base_url"),
			APIKey:     viper.GetString("pubmed.api_key"),
			Email:      viper.GetString("pubmed.email"),
			MaxResults: viper.GetInt("pubmed.max_results"),
			CacheTTL:   viper.GetDuration("pubmed.cache_ttl"),
		},
		Store: types.StoreConfig{
			Dir:        viper.GetString("store.dir"),
			MaxResults: viper.GetInt("store.max_results"),
		},
		Logging: types.LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		},
	}

	cls, err := classifyConfig(
		viper.GetStringSlice("classify.academic_keywords"),
		viper.GetStringSlice("classify.company_keywords"),
		viper.GetString("classify.name_order"),
		viper.GetString("classify.company_list_mode"),
		viper.GetString("classify.email_scope"),
	)
	if err != nil {
		return cfg, err
	}
	if viper.IsSet("classify.empty_list_text") {
		text := viper.GetString("classify.empty_list_text")
		cls.EmptyListText = &text
	}
	cfg.Classify = cls
	return cfg, nil
}

// classifyConfig validates the option names and fills in defaults for
// anything left empty.
func classifyConfig(academic, company []string, nameOrder, listMode, scope string) (types.ClassifyConfig, error) {
	cfg := types.DefaultClassifyConfig()
	if len(academic) > 0 {
		cfg.AcademicKeywords = academic
	}
	if len(company) > 0 {
		cfg.CompanyKeywords = company
	}

	switch types.NameOrder(strings.ToLower(nameOrder)) {
	case "", types.NameFirstLast:
	case types.NameLastFirst:
		cfg.NameOrder = types.NameLastFirst
	default:
		return cfg, fmt.Errorf("invalid name order %q: use first-last or last-first", nameOrder)
	}

	switch types.CompanyListMode(strings.ToLower(listMode)) {
	case "", types.CompanyByAuthor:
	case types.CompanyByAffiliation:
		cfg.CompanyListMode = types.CompanyByAffiliation
	default:
		return cfg, fmt.Errorf("invalid company mode %q: use author or affiliation", listMode)
	}

	switch types.EmailScope(strings.ToLower(scope)) {
	case "", types.EmailFromAffiliations:
	case types.EmailFromDocument:
		cfg.EmailScope = types.EmailFromDocument
	default:
		return cfg, fmt.Errorf("invalid email scope %q: use affiliation or document", scope)
	}

	return cfg, nil
}

// pipelineConfig reloads the configuration and applies the credentials
// found in .secrets/ to the PubMed settings.
func pipelineConfig() (types.PipelineConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, err
	}
	credentials.Apply(&cfg.PubMed)
	return cfg, nil
}
