package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitignore-tui/internal/domain"
)

type recorded struct {
	mu     sync.Mutex
	paths  []string
	agents []string
}

func (r *recorded) add(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, req.URL.Path)
	r.agents = append(r.agents, req.Header.Get("User-Agent"))
}

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestListTemplatesParsesAndSorts(t *testing.T) {
	srv, rec := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("python,node,go\nnode, rust ,c++,\nvisual_studio,jetbrains-ide\n"))
	})

	c := New(srv.URL+"/", "GitIgnore-TUI/test", time.Second)
	names, err := c.ListTemplates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "jetbrains-ide", "node", "python", "rust", "visual_studio"}, names)
	assert.Equal(t, []string{"/list"}, rec.paths)
	assert.Equal(t, []string{"GitIgnore-TUI/test"}, rec.agents)
}

func TestListTemplatesEmptyBodyIsParseError(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(" , ,\n"))
	})

	_, err := New(srv.URL, "ua", time.Second).ListTemplates(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsParse(err))
}

func TestListTemplatesInvalidUTF8IsParseError(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 'g', 'o'})
	})

	_, err := New(srv.URL, "ua", time.Second).ListTemplates(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsParse(err))
}

func TestServerErrorIsNetworkError(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := New(srv.URL, "ua", time.Second).ListTemplates(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsNetwork(err))
	assert.Contains(t, err.Error(), "500")
}

func TestTimeoutIsNetworkError(t *testing.T) {
	release := make(chan struct{})
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := New(srv.URL, "ua", 50*time.Millisecond).FetchContent(context.Background(), []string{"go"})
	require.Error(t, err)
	assert.True(t, domain.IsNetwork(err))
}

func TestUnreachableIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, "ua", time.Second).ListTemplates(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsNetwork(err))
}

func TestFetchContentJoinsLowercasedNames(t *testing.T) {
	srv, rec := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# merged\n*.pyc\nnode_modules/\n"))
	})

	content, err := New(srv.URL, "ua", time.Second).FetchContent(context.Background(), []string{"Go", "Node"})
	require.NoError(t, err)
	assert.Equal(t, "# merged\n*.pyc\nnode_modules/\n", content)
	assert.Equal(t, []string{"/go,node"}, rec.paths)
}

func TestFetchContentPlaceholders(t *testing.T) {
	srv, rec := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})
	c := New(srv.URL, "ua", time.Second)

	content, err := c.FetchContent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, NoSelectionPlaceholder, content)

	content, err = c.FetchContent(context.Background(), []string{"  ", "/?#"})
	require.NoError(t, err)
	assert.Equal(t, NoValidPlaceholder, content)
	assert.Empty(t, rec.paths)
}

func TestPing(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("a,b,c"))
	})

	n, err := New(srv.URL, "ua", time.Second).Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSanitize(t *testing.T) {
	got := Sanitize([]string{" go ", "c++", "../etc", "a/b", "", "node.js"})
	assert.Equal(t, []string{"go", "c", "..etc", "ab", "node.js"}, got)
}

func TestParseListDropsInvalidNames(t *testing.T) {
	got := ParseList("go,c++,,a b,dot.net,_,-\n")
	assert.Equal(t, []string{"go"}, got)
}
