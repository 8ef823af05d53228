package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/contentgen-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/contentgen-cli/internal/core/domain"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driven"
	"github.com/custodia-labs/contentgen-cli/internal/core/ports/driving"
	fileextract "github.com/custodia-labs/contentgen-cli/internal/extractors/file"
)

// setupTestServices swaps the package-level services for mocks and returns
// a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldIngest := ingestService
	oldGenerate := generateService
	oldProfiles := profileStore
	oldHistory := historyStore
	oldExtractors := extractorList

	ingestService = &mockIngestService{}
	generateService = &mockGenerateService{}
	profileStore = memory.NewProfileStore()
	historyStore = memory.NewHistoryStore()
	extractorList = []driven.Extractor{fileextract.New()}

	return func() {
		ingestService = oldIngest
		generateService = oldGenerate
		profileStore = oldProfiles
		historyStore = oldHistory
		extractorList = oldExtractors
	}
}

// execute runs the root command with args and returns its combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

type mockIngestService struct {
	profileErr  error
	documentErr error
	lastProfile *domain.CompanyProfile
	lastDocs    []domain.ExtractedDocument
	stats       driving.Stats
}

var _ driving.IngestService = (*mockIngestService)(nil)

func (m *mockIngestService) IngestProfile(_ context.Context, profile *domain.CompanyProfile) (*driving.ProfileIngestResult, error) {
	if m.profileErr != nil {
		return nil, m.profileErr
	}
	m.lastProfile = profile
	return &driving.ProfileIngestResult{
		PointsWritten: 6,
		Outcome:       driving.OutcomeFull,
		Profile:       profile,
	}, nil
}

func (m *mockIngestService) DeleteProfile(context.Context) (*domain.CompanyProfile, error) {
	if m.lastProfile == nil {
		return nil, domain.ErrNoProfile
	}
	deleted := m.lastProfile
	m.lastProfile = nil
	return deleted, nil
}

func (m *mockIngestService) IngestDocuments(_ context.Context, docs []domain.ExtractedDocument) (*driving.DocumentIngestResult, error) {
	if m.documentErr != nil {
		return &driving.DocumentIngestResult{Accepted: len(docs)}, m.documentErr
	}
	m.lastDocs = append(m.lastDocs, docs...)
	return &driving.DocumentIngestResult{Accepted: len(docs), ChunksWritten: 2 * len(docs)}, nil
}

func (m *mockIngestService) Stats(context.Context) (*driving.Stats, error) {
	return &m.stats, nil
}

type mockGenerateService struct {
	answer      *domain.Answer
	suggestions *domain.SuggestionSet
	analysis    any
	err         error
	lastType    domain.ContentType
	lastOpts    driving.SuggestOptions
}

var _ driving.GenerateService = (*mockGenerateService)(nil)

func (m *mockGenerateService) AnswerQuery(_ context.Context, query string, _ driving.QueryOptions) (*domain.Answer, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.answer != nil {
		return m.answer, nil
	}
	return &domain.Answer{Query: query, Response: "mock answer"}, nil
}

func (m *mockGenerateService) GenerateSuggestions(_ context.Context, contentType domain.ContentType, opts driving.SuggestOptions) (*domain.SuggestionSet, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastType = contentType
	m.lastOpts = opts
	if m.suggestions != nil {
		return m.suggestions, nil
	}
	return &domain.SuggestionSet{
		ContentType: contentType,
		Parsed:      true,
		Suggestions: []domain.Suggestion{
			{ID: 1, Kind: domain.KindArticle, Article: &domain.ArticleIdea{Title: "Mock Article"}},
		},
	}, nil
}

func (m *mockGenerateService) AnalyzeProfile(context.Context, *domain.CompanyProfile) (any, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.analysis != nil {
		return m.analysis, nil
	}
	return map[string]any{"strengths": []any{"mocked"}}, nil
}
