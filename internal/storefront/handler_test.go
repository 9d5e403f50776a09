package storefront

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/shopvibe/internal/animation"
	"github.com/bornholm/shopvibe/internal/animation/htmx"
	"github.com/bornholm/shopvibe/internal/nav"
	"github.com/bornholm/shopvibe/internal/navbar"
	"github.com/bornholm/shopvibe/internal/ui"
	"github.com/bornholm/shopvibe/internal/visitor"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

type testStorefront struct {
	t        *testing.T
	server   *httptest.Server
	client   *http.Client
	registry *visitor.Registry
	// instance is the navbar instance of the last rendered page
	instance string
}

func newTestStorefront(t *testing.T) *testStorefront {
	catalogue := nav.Default()

	registry := visitor.NewRegistry(func() *navbar.Navbar {
		return navbar.New(catalogue, navbar.WithAnimator(htmx.NewAnimator(htmx.DefaultEvent)))
	})

	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	handler := NewHandler(registry, catalogue, store, WithRateLimit(1000, 1000))

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return &testStorefront{
		t:        t,
		server:   server,
		client:   &http.Client{Jar: jar},
		registry: registry,
	}
}

// get renders a page and remembers its navbar instance.
func (s *testStorefront) get(path string) (*http.Response, *html.Node) {
	res, err := s.client.Get(s.server.URL + path)
	if err != nil {
		s.t.Fatalf("%+v", errors.WithStack(err))
	}

	doc := s.parse(res)

	if header := findByID(doc, "navbar"); header != nil {
		s.instance, _ = attr(header, "data-instance")
	}

	return res, doc
}

// post sends a navbar event from the last rendered page.
func (s *testStorefront) post(path string, values url.Values) (*http.Response, *html.Node) {
	return s.postFrom(s.instance, path, values)
}

func (s *testStorefront) postFrom(instance string, path string, values url.Values) (*http.Response, *html.Node) {
	req, err := http.NewRequest(http.MethodPost, s.server.URL+path, strings.NewReader(values.Encode()))
	if err != nil {
		s.t.Fatalf("%+v", errors.WithStack(err))
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if instance != "" {
		req.Header.Set(ui.NavbarInstanceHeader, instance)
	}

	res, err := s.client.Do(req)
	if err != nil {
		s.t.Fatalf("%+v", errors.WithStack(err))
	}

	return res, s.parse(res)
}

func (s *testStorefront) parse(res *http.Response) *html.Node {
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		s.t.Fatalf("%+v", errors.WithStack(err))
	}

	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		s.t.Fatalf("%+v", errors.WithStack(err))
	}

	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func findByRole(root *html.Node, role string) []*html.Node {
	nodes := make([]*html.Node, 0)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if r, ok := attr(n, "data-role"); ok && r == role {
				nodes = append(nodes, n)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)

	return nodes
}

func findByID(root *html.Node, id string) *html.Node {
	if root.Type == html.ElementNode {
		if v, ok := attr(root, "id"); ok && v == id {
			return root
		}
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := findByID(c, id); n != nil {
			return n
		}
	}

	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)

	return strings.TrimSpace(sb.String())
}

func TestHomeSections(t *testing.T) {
	s := newTestStorefront(t)

	res, doc := s.get("/")

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("expected status '%v', got '%v'", e, g)
	}

	sections := findByRole(doc, "section")

	if e, g := SectionCount, len(sections); e != g {
		t.Fatalf("expected '%v' sections, got '%v'", e, g)
	}

	for idx, section := range sections {
		expected := "Content Section " + []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}[idx]
		if g := textContent(section); expected != g {
			t.Errorf("section #%d: expected label '%v', got '%v'", idx, expected, g)
		}
	}

	titles := findByRole(doc, "hero-title")
	if e, g := 1, len(titles); e != g {
		t.Fatalf("expected '%v' hero title, got '%v'", e, g)
	}

	if e, g := HeroTitle, textContent(titles[0]); e != g {
		t.Errorf("expected hero title '%v', got '%v'", e, g)
	}

	if findByID(doc, "navbar") == nil {
		t.Error("expected navbar to be rendered")
	}

	if e, g := 1, s.registry.Len(); e != g {
		t.Errorf("expected '%v' visitor, got '%v'", e, g)
	}
}

func TestHomeEmbedsEntranceAnimations(t *testing.T) {
	s := newTestStorefront(t)

	_, doc := s.get("/")

	script := findByID(doc, "initial-animations")
	if script == nil {
		t.Fatal("expected initial animations script")
	}

	var events map[string][]map[string]any
	if err := json.Unmarshal([]byte(textContent(script)), &events); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	commands := events[htmx.DefaultEvent]

	expected := []animation.Kind{animation.KindNavEntrance, animation.KindLogoEntrance, animation.KindBadgeEntrance}

	if e, g := len(expected), len(commands); e != g {
		t.Fatalf("expected '%v' commands, got '%v'", e, g)
	}

	for idx, e := range expected {
		if g := commands[idx]["kind"]; string(e) != g {
			t.Errorf("command #%d: expected kind '%v', got '%v'", idx, e, g)
		}
	}
}

func TestScrollThreshold(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")

	type testCase struct {
		Offset         string
		ExpectedStatus int
		Expected       string
	}

	testCases := []testCase{
		{Offset: "0", ExpectedStatus: http.StatusNoContent},
		{Offset: "20", ExpectedStatus: http.StatusNoContent},
		{Offset: "21", ExpectedStatus: http.StatusOK, Expected: "true"},
		{Offset: "800", ExpectedStatus: http.StatusNoContent},
		{Offset: "5", ExpectedStatus: http.StatusOK, Expected: "false"},
		{Offset: "10", ExpectedStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		res, doc := s.post("/navbar/scroll", url.Values{"offset": {tc.Offset}})

		if e, g := tc.ExpectedStatus, res.StatusCode; e != g {
			t.Fatalf("offset %s: expected status '%v', got '%v'", tc.Offset, e, g)
		}

		if tc.ExpectedStatus == http.StatusNoContent {
			if header := findByID(doc, "navbar"); header != nil {
				t.Errorf("offset %s: expected no navbar to be swapped", tc.Offset)
			}
			continue
		}

		header := findByID(doc, "navbar")
		if header == nil {
			t.Fatalf("offset %s: expected navbar partial", tc.Offset)
		}

		if g, _ := attr(header, "data-scrolled"); tc.Expected != g {
			t.Errorf("offset %s: expected data-scrolled '%v', got '%v'", tc.Offset, tc.Expected, g)
		}
	}
}

func TestScrollInvalidOffset(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")

	res, _ := s.post("/navbar/scroll", url.Values{"offset": {"down"}})

	if e, g := http.StatusBadRequest, res.StatusCode; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}
}

func TestSearchToggle(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")

	res, doc := s.post("/navbar/search/open", nil)

	if e, g := 1, len(findByRole(doc, "search-input")); e != g {
		t.Errorf("expected '%v' search input, got '%v'", e, g)
	}

	if e, g := 0, len(findByRole(doc, "search-open")); e != g {
		t.Errorf("expected '%v' search button, got '%v'", e, g)
	}

	if !strings.Contains(res.Header.Get("HX-Trigger-After-Swap"), string(animation.KindSearchOpen)) {
		t.Errorf("expected trigger header to contain '%s', got '%s'", animation.KindSearchOpen, res.Header.Get("HX-Trigger-After-Swap"))
	}

	_, doc = s.post("/navbar/search/close", nil)

	if e, g := 0, len(findByRole(doc, "search-input")); e != g {
		t.Errorf("expected '%v' search input, got '%v'", e, g)
	}

	if e, g := 1, len(findByRole(doc, "search-open")); e != g {
		t.Errorf("expected '%v' search button, got '%v'", e, g)
	}
}

func TestDropdown(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")

	_, doc := s.post("/navbar/dropdown", url.Values{"label": {"Shop"}, "event": {"mouseenter"}})

	dropdowns := findByRole(doc, "dropdown")
	if e, g := 1, len(dropdowns); e != g {
		t.Fatalf("expected '%v' dropdown, got '%v'", e, g)
	}

	if e, g := 4, len(findByRole(dropdowns[0], "dropdown-link")); e != g {
		t.Errorf("expected '%v' dropdown links, got '%v'", e, g)
	}

	_, doc = s.post("/navbar/dropdown", url.Values{"label": {"Shop"}, "event": {"mouseleave"}})

	if e, g := 0, len(findByRole(doc, "dropdown")); e != g {
		t.Errorf("expected '%v' dropdown, got '%v'", e, g)
	}

	res, _ := s.post("/navbar/dropdown", url.Values{"label": {"Shop"}, "event": {"click"}})

	if e, g := http.StatusBadRequest, res.StatusCode; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}
}

func TestMobileMenu(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")

	_, doc := s.post("/navbar/mobile/toggle", nil)

	if e, g := 1, len(findByRole(doc, "mobile-panel")); e != g {
		t.Fatalf("expected '%v' mobile panel, got '%v'", e, g)
	}

	_, doc = s.post("/navbar/mobile/toggle", nil)

	if e, g := 0, len(findByRole(doc, "mobile-panel")); e != g {
		t.Errorf("expected '%v' mobile panel, got '%v'", e, g)
	}
}

func TestMobileFollow(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")
	s.post("/navbar/mobile/toggle", nil)

	res, doc := s.post("/navbar/mobile/follow", url.Values{"href": {"/shop/new-arrivals"}})

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("expected status '%v', got '%v'", e, g)
	}

	if e, g := "/shop/new-arrivals", res.Header.Get("HX-Redirect"); e != g {
		t.Errorf("expected redirect '%v', got '%v'", e, g)
	}

	if e, g := 0, len(findByRole(doc, "mobile-panel")); e != g {
		t.Errorf("expected '%v' mobile panel, got '%v'", e, g)
	}

	res, _ = s.post("/navbar/mobile/follow", url.Values{"href": {"/nowhere"}})

	if e, g := http.StatusBadRequest, res.StatusCode; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}
}

func TestEventWithoutMountedNavbar(t *testing.T) {
	s := newTestStorefront(t)

	res, _ := s.post("/navbar/search/open", nil)

	if e, g := http.StatusConflict, res.StatusCode; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}

	if e, g := "true", res.Header.Get("HX-Refresh"); e != g {
		t.Errorf("expected HX-Refresh '%v', got '%v'", e, g)
	}

	s.get("/")

	res, _ = s.post("/navbar/unmount", nil)

	if e, g := http.StatusNoContent, res.StatusCode; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}

	res, _ = s.post("/navbar/scroll", url.Values{"offset": {"100"}})

	if e, g := http.StatusConflict, res.StatusCode; e != g {
		t.Errorf("expected status '%v', got '%v'", e, g)
	}

	res, _ = s.postFrom("", "/navbar/scroll", url.Values{"offset": {"100"}})

	if e, g := http.StatusConflict, res.StatusCode; e != g {
		t.Errorf("without instance: expected status '%v', got '%v'", e, g)
	}
}

func TestStaleUnmountAfterNavigation(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")
	previous := s.instance

	// The next page is requested before the previous one hides
	s.get("/shop")
	next := s.instance

	if previous == next {
		t.Fatalf("expected a new navbar instance for the next page")
	}

	res, _ := s.postFrom("", "/navbar/unmount", url.Values{ui.NavbarInstanceField: {previous}})

	if e, g := http.StatusNoContent, res.StatusCode; e != g {
		t.Fatalf("expected status '%v', got '%v'", e, g)
	}

	res, doc := s.post("/navbar/scroll", url.Values{"offset": {"100"}})

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Fatalf("expected status '%v', got '%v'", e, g)
	}

	header := findByID(doc, "navbar")
	if header == nil {
		t.Fatal("expected navbar partial")
	}

	if g, _ := attr(header, "data-instance"); next != g {
		t.Errorf("expected instance '%v', got '%v'", next, g)
	}

	res, _ = s.postFrom(previous, "/navbar/scroll", url.Values{"offset": {"100"}})

	if e, g := http.StatusConflict, res.StatusCode; e != g {
		t.Errorf("unmounted instance: expected status '%v', got '%v'", e, g)
	}
}

func TestTabsOwnTheirNavbar(t *testing.T) {
	s := newTestStorefront(t)

	s.get("/")
	first := s.instance

	s.get("/")
	second := s.instance

	_, doc := s.postFrom(first, "/navbar/mobile/toggle", nil)

	header := findByID(doc, "navbar")
	if header == nil {
		t.Fatal("expected navbar partial")
	}

	if g, _ := attr(header, "data-instance"); first != g {
		t.Errorf("expected instance '%v', got '%v'", first, g)
	}

	if e, g := 1, len(findByRole(doc, "mobile-panel")); e != g {
		t.Errorf("first tab: expected '%v' mobile panel, got '%v'", e, g)
	}

	// The second tab still has its panel closed, toggling opens it
	_, doc = s.postFrom(second, "/navbar/mobile/toggle", nil)

	if e, g := 1, len(findByRole(doc, "mobile-panel")); e != g {
		t.Errorf("second tab: expected '%v' mobile panel, got '%v'", e, g)
	}
}

func TestRateLimitKey(t *testing.T) {
	s := newTestStorefront(t)
	handler := NewHandler(s.registry, nav.Default(), sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))

	type testCase struct {
		RemoteAddr string
		Expected   string
	}

	testCases := []testCase{
		{RemoteAddr: "192.0.2.1:51234", Expected: "addr-192.0.2.1"},
		{RemoteAddr: "192.0.2.1:51235", Expected: "addr-192.0.2.1"},
		{RemoteAddr: "[2001:db8::1]:443", Expected: "addr-2001:db8::1"},
		{RemoteAddr: "pipe", Expected: "addr-pipe"},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodPost, "/navbar/scroll", nil)
		req.RemoteAddr = tc.RemoteAddr

		key, err := handler.rateLimitKey(req)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := tc.Expected, key; e != g {
			t.Errorf("%s: expected key '%v', got '%v'", tc.RemoteAddr, e, g)
		}
	}

	if e, g := "visitor-abc", VisitorRateLimitKey("abc"); e != g {
		t.Errorf("expected key '%v', got '%v'", e, g)
	}
}

func TestPlaceholder(t *testing.T) {
	s := newTestStorefront(t)

	type testCase struct {
		Path           string
		ExpectedStatus int
		ExpectedLabel  string
	}

	testCases := []testCase{
		{Path: "/shop/sale", ExpectedStatus: http.StatusOK, ExpectedLabel: "Sale"},
		{Path: "/about", ExpectedStatus: http.StatusOK, ExpectedLabel: "About"},
		{Path: "/nope", ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		res, doc := s.get(tc.Path)

		if e, g := tc.ExpectedStatus, res.StatusCode; e != g {
			t.Errorf("%s: expected status '%v', got '%v'", tc.Path, e, g)
			continue
		}

		if tc.ExpectedLabel == "" {
			continue
		}

		titles := findByRole(doc, "placeholder-title")
		if e, g := 1, len(titles); e != g {
			t.Fatalf("%s: expected '%v' title, got '%v'", tc.Path, e, g)
		}

		if e, g := tc.ExpectedLabel, textContent(titles[0]); e != g {
			t.Errorf("%s: expected title '%v', got '%v'", tc.Path, e, g)
		}
	}
}
