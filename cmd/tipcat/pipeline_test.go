package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tipcat/internal/catalogue"
	"tipcat/internal/config"
	"tipcat/internal/logging"
	"tipcat/internal/services/ghcli"
)

type stubGit struct {
	files     map[string][]string
	contents  map[string]string
	remoteURL string
	remoteErr error
}

func (s *stubGit) ListFiles(ctx context.Context, ref, prefix string) ([]string, error) {
	return s.files[ref], nil
}

func (s *stubGit) ReadFile(ctx context.Context, ref, path string) (string, error) {
	return s.contents[ref+":"+path], nil
}

func (s *stubGit) RemoteURL(ctx context.Context, remote string) (string, error) {
	if s.remoteErr != nil {
		return "", s.remoteErr
	}
	return s.remoteURL, nil
}

type stubGh struct {
	issues []ghcli.Issue
	err    error
	repo   string
}

func (s *stubGh) ListOpenIssues(ctx context.Context, repo string) ([]ghcli.Issue, error) {
	s.repo = repo
	if s.err != nil {
		return nil, s.err
	}
	return s.issues, nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func TestBuildCataloguePrecedenceAndOrdering(t *testing.T) {
	gitClient := &stubGit{
		files: map[string][]string{
			"origin/main": {"tips/1.html"},
			"origin/dev":  {"tips/1.html", "tips/2.html"},
		},
		contents: map[string]string{
			"origin/main:tips/1.html": "<h1>Title A</h1><p>published</p>",
			"origin/dev:tips/1.html":  "<h1>Title B</h1><p>draft</p>",
			"origin/dev:tips/2.html":  "<h1>Title C</h1><p>draft</p>",
		},
		remoteURL: "https://github.com/galaxyproject/galaxy-tips.git",
	}
	ghClient := &stubGh{issues: []ghcli.Issue{
		{Title: "[tip request] Add dark mode", Body: "night work"},
	}}

	cat := buildCatalogue(context.Background(), testConfig(), logging.NewNop(), gitClient, ghClient, false)

	if len(cat.Numbered) != 2 {
		t.Fatalf("expected 2 numbered entries, got %d", len(cat.Numbered))
	}
	if cat.Numbered[0].Title != "Title A" || string(cat.Numbered[0].State) != "production" {
		t.Fatalf("expected production to win for tip 1, got %+v", cat.Numbered[0])
	}
	if cat.Numbered[1].Title != "Title C" || string(cat.Numbered[1].State) != "draft" {
		t.Fatalf("unexpected tip 2: %+v", cat.Numbered[1])
	}
	if len(cat.Requests) != 1 || cat.Requests[0].Title != "Add dark mode" {
		t.Fatalf("unexpected requests: %+v", cat.Requests)
	}
	if ghClient.repo != "galaxyproject/galaxy-tips" {
		t.Fatalf("expected repo derived from remote, got %q", ghClient.repo)
	}

	document := catalogue.Render(cat, "# Tips Catalogue")
	rows := strings.Split(strings.TrimRight(document, "\n"), "\n")
	last := rows[len(rows)-1]
	if !strings.HasPrefix(last, "|  | Add dark mode |") {
		t.Fatalf("request row should be last with a blank id: %q", last)
	}
}

func TestBuildCatalogueSkipRequestsFlag(t *testing.T) {
	gitClient := &stubGit{remoteURL: "https://github.com/owner/repo"}
	ghClient := &stubGh{issues: []ghcli.Issue{{Title: "[tip request] ignored"}}}

	cat := buildCatalogue(context.Background(), testConfig(), logging.NewNop(), gitClient, ghClient, true)
	if len(cat.Requests) != 0 {
		t.Fatalf("expected no requests when skipped, got %d", len(cat.Requests))
	}
}

func TestFetchRequestsConfiguredRepoWins(t *testing.T) {
	cfg := testConfig()
	cfg.Requests.Repo = "configured/slug"
	gitClient := &stubGit{remoteErr: errors.New("should not be called")}
	ghClient := &stubGh{}

	fetchRequests(context.Background(), cfg, logging.NewNop(), gitClient, ghClient)
	if ghClient.repo != "configured/slug" {
		t.Fatalf("expected configured repo to be used, got %q", ghClient.repo)
	}
}

func TestFetchRequestsDegradesWithoutRemote(t *testing.T) {
	cfg := testConfig()
	gitClient := &stubGit{remoteErr: errors.New("no origin")}
	ghClient := &stubGh{issues: []ghcli.Issue{{Title: "[tip request] lost"}}}

	got := fetchRequests(context.Background(), cfg, logging.NewNop(), gitClient, ghClient)
	if got != nil {
		t.Fatalf("expected nil requests without a remote, got %+v", got)
	}
}

func TestFetchRequestsDegradesOnTrackerError(t *testing.T) {
	cfg := testConfig()
	cfg.Requests.Repo = "owner/repo"
	ghClient := &stubGh{err: errors.New("gh: not authenticated")}

	got := fetchRequests(context.Background(), cfg, logging.NewNop(), &stubGit{}, ghClient)
	if got != nil {
		t.Fatalf("expected nil requests on tracker error, got %+v", got)
	}
}

func TestFetchRequestsNonGitHubRemote(t *testing.T) {
	cfg := testConfig()
	gitClient := &stubGit{remoteURL: "https://gitlab.com/owner/repo.git"}
	ghClient := &stubGh{issues: []ghcli.Issue{{Title: "[tip request] lost"}}}

	got := fetchRequests(context.Background(), cfg, logging.NewNop(), gitClient, ghClient)
	if got != nil {
		t.Fatalf("expected nil requests for non-GitHub remote, got %+v", got)
	}
}
