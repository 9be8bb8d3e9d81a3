package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-screener/internal/services"
)

func TestNewKeywordSet(t *testing.T) {
	cases := []struct {
		name  string
		terms []string
		ok    bool
	}{
		{name: "defaults", terms: services.DefaultKeywords, ok: true},
		{name: "empty", terms: nil, ok: false},
		{name: "blank term", terms: []string{"python", " "}, ok: false},
		{name: "uppercase term", terms: []string{"Python"}, ok: false},
		{name: "duplicate term", terms: []string{"sql", "sql"}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ks, err := services.NewKeywordSet(tc.terms...)
			if !tc.ok {
				assert.ErrorIs(t, err, services.ErrInvalidPipelineConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.terms, ks.Terms())
		})
	}
}

func TestNewJobRoleCorpus(t *testing.T) {
	_, err := services.NewJobRoleCorpus()
	assert.ErrorIs(t, err, services.ErrInvalidPipelineConfig)

	_, err = services.NewJobRoleCorpus(services.JobRole{Name: "Empty"})
	assert.ErrorIs(t, err, services.ErrInvalidPipelineConfig)

	_, err = services.NewJobRoleCorpus(
		services.JobRole{Name: "Dev", Reference: "go"},
		services.JobRole{Name: "Dev", Reference: "rust"},
	)
	assert.ErrorIs(t, err, services.ErrInvalidPipelineConfig)

	corpus, err := services.NewJobRoleCorpus(services.DefaultJobRoles...)
	require.NoError(t, err)
	assert.Equal(t, services.DefaultJobRoles, corpus.Roles())
}

func TestParseEmptyReferencePolicy(t *testing.T) {
	cases := map[string]services.EmptyReferencePolicy{
		"":         services.EmptyReferenceZero,
		"zero":     services.EmptyReferenceZero,
		" Default": services.EmptyReferenceDefault,
	}
	for in, want := range cases {
		got, err := services.ParseEmptyReferencePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := services.ParseEmptyReferencePolicy("random")
	assert.ErrorIs(t, err, services.ErrInvalidPipelineConfig)
}

func TestPipelineConfig_Validate(t *testing.T) {
	require.NoError(t, services.DefaultPipelineConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*services.PipelineConfig)
	}{
		{name: "no keywords", mutate: func(c *services.PipelineConfig) { c.Keywords = services.KeywordSet{} }},
		{name: "cap too high", mutate: func(c *services.PipelineConfig) { c.SuggestionCap = services.MaxSuggestions + 1 }},
		{name: "negative cap", mutate: func(c *services.PipelineConfig) { c.SuggestionCap = -1 }},
		{name: "classification without roles", mutate: func(c *services.PipelineConfig) { c.Roles = services.JobRoleCorpus{} }},
		{name: "unknown policy", mutate: func(c *services.PipelineConfig) { c.EmptyReference = "maybe" }},
		{
			name: "default policy without reference",
			mutate: func(c *services.PipelineConfig) {
				c.EmptyReference = services.EmptyReferenceDefault
				c.DefaultReference = ""
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := services.DefaultPipelineConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), services.ErrInvalidPipelineConfig)
		})
	}

	t.Run("roles not required when classification is off", func(t *testing.T) {
		cfg := services.DefaultPipelineConfig()
		cfg.IncludeRoleClassification = false
		cfg.Roles = services.JobRoleCorpus{}
		assert.NoError(t, cfg.Validate())
	})
}
