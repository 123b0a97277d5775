package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"NewsPulse/internal/domain"
)

func companyFixture() domain.Company {
	return domain.Company{ID: 1, Name: "삼성전자", StockCode: "005930", Active: true}
}

const naverSearchHTML = `
<ul class="list_news">
  <li class="bx">
    <a class="news_tit" href="https://n.news.naver.com/article/001/0001" title="삼성전자 3분기 실적 발표">삼성전자 3분기 실적 발표</a>
    <div class="news_dsc">영업이익이 크게 증가했다는 내용</div>
    <div class="info_group">
      <a class="info press">연합뉴스</a>
      <span class="info">3시간 전</span>
    </div>
  </li>
  <li class="bx">
    <a class="news_tit" href="https://n.news.naver.com/article/001/0002" title="삼성전자 지난달 소식">삼성전자 지난달 소식</a>
    <div class="info_group">
      <span class="info">3주 전</span>
    </div>
  </li>
</ul>`

const naverArticleHTML = `
<html><body>
  <div id="title_area"><span>삼성전자 3분기 실적 발표</span></div>
  <span class="media_end_head_info_datestamp_time" data-date-time="2025-03-08 14:30">2025.03.08. 오후 2:30</span>
  <em class="media_end_head_journalist_name">김기자</em>
  <div id="dic_area">삼성전자가 3분기 실적을 발표했다. 매출과 영업이익이 모두 시장 기대치를 크게 웃돌면서 주가에도 긍정적 영향이 예상된다.</div>
</body></html>`

func newNaverTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/search.naver"):
			if r.URL.Query().Get("start") == "1" {
				_, _ = w.Write([]byte(naverSearchHTML))
				return
			}
			_, _ = w.Write([]byte(`<ul class="list_news"></ul>`))
		default:
			_, _ = w.Write([]byte(naverArticleHTML))
		}
	}))
}

func TestNaverSearchFiltersWindow(t *testing.T) {
	t.Parallel()

	server := newNaverTestServer(t)
	defer server.Close()

	fetcher := NewFetcher(server.Client(), 0, 0, "test-agent")
	adapter := NewNaverAdapter(fetcher, server.URL+"/search.naver", 3, 50)

	candidates, err := adapter.Search(context.Background(), companyFixture(), 7)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate inside the window, got %d", len(candidates))
	}
	c := candidates[0]
	if c.Title != "삼성전자 3분기 실적 발표" {
		t.Fatalf("unexpected title: %s", c.Title)
	}
	if c.URL != "https://n.news.naver.com/article/001/0001" {
		t.Fatalf("unexpected url: %s", c.URL)
	}
	if c.Author != "연합뉴스" {
		t.Fatalf("unexpected author: %s", c.Author)
	}
	if c.PublishedAt == nil {
		t.Fatal("expected a resolved relative date")
	}
}

func TestNaverFetchDetail(t *testing.T) {
	t.Parallel()

	server := newNaverTestServer(t)
	defer server.Close()

	fetcher := NewFetcher(server.Client(), 0, 0, "test-agent")
	adapter := NewNaverAdapter(fetcher, server.URL+"/search.naver", 1, 50)

	article, err := adapter.FetchDetail(context.Background(), server.URL+"/article/001/0001")
	if err != nil {
		t.Fatalf("FetchDetail error: %v", err)
	}

	if article.Title != "삼성전자 3분기 실적 발표" {
		t.Fatalf("unexpected title: %s", article.Title)
	}
	if !strings.Contains(article.Content, "영업이익") {
		t.Fatalf("unexpected content: %s", article.Content)
	}
	if article.Author != "김기자" {
		t.Fatalf("unexpected author: %s", article.Author)
	}
	if article.PublishedAt == nil {
		t.Fatal("expected published date from data-date-time")
	}
	want := time.Date(2025, time.March, 8, 14, 30, 0, 0, article.PublishedAt.Location())
	if !article.PublishedAt.Equal(want) {
		t.Fatalf("published = %v, want %v", article.PublishedAt, want)
	}
}
