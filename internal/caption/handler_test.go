package caption

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(svc *Service) *fiber.App {
	app := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(app)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("response is not JSON: %s", b)
	}
	return res.StatusCode, out
}

func TestGenerateRoute(t *testing.T) {
	app := makeApp(newTestService(t, nil))

	for _, path := range []string{"/generate", "/api/v1/caption"} {
		status, body := post(t, app, path, `{"urls":["https://example.com/en-us/product/1001","  "],"template":"model_wears"}`)
		if status != fiber.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, status)
		}
		if body["success"] != true {
			t.Fatalf("%s: expected success, got %v", path, body)
		}
		captions, ok := body["captions"].(map[string]any)
		if !ok {
			t.Fatalf("%s: captions missing: %v", path, body)
		}
		if captions["en"] != "Model wears [Acme T-Shirts](https://example.com/en-us/product/1001)." {
			t.Fatalf("%s: unexpected english caption %v", path, captions["en"])
		}
		for _, lang := range []string{"fr", "jp", "zh"} {
			if captions[lang] == "" {
				t.Fatalf("%s: missing %s caption", path, lang)
			}
		}
	}
}

func TestGenerateRoute_DefaultsToFeatured(t *testing.T) {
	app := makeApp(newTestService(t, nil))

	_, body := post(t, app, "/generate", `{"urls":["https://example.com/en-us/product/1001"]}`)
	captions := body["captions"].(map[string]any)
	if !strings.HasPrefix(captions["en"].(string), "Featured In This Image: ") {
		t.Fatalf("expected featured template, got %v", captions["en"])
	}
}

func TestGenerateRoute_ClientErrors(t *testing.T) {
	pinger := &countingPinger{}
	app := makeApp(newTestService(t, pinger))

	status, body := post(t, app, "/generate", `{"urls":[]}`)
	if status != fiber.StatusBadRequest || body["error"] != "No URLs provided" {
		t.Fatalf("expected 400 No URLs provided, got %d %v", status, body)
	}
	status, _ = post(t, app, "/generate", `{"urls":["", "   "]}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("blank urls should be rejected, got %d", status)
	}
	status, _ = post(t, app, "/generate", `{"urls":["https://example.com/en-us/product/1001"],"template":"banner"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("unknown template should be rejected, got %d", status)
	}
	status, _ = post(t, app, "/generate", `{"urls":`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("malformed body should be rejected, got %d", status)
	}
	if pinger.calls != 0 {
		t.Fatalf("client errors must not touch the catalog, got %d pings", pinger.calls)
	}
}

func TestGenerateRoute_CatalogUnavailable(t *testing.T) {
	app := makeApp(newTestService(t, &countingPinger{err: errors.New("no reachable servers")}))

	status, body := post(t, app, "/generate", `{"urls":["https://example.com/en-us/product/1001"]}`)
	if status != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", status)
	}
	if body["success"] != false {
		t.Fatalf("expected success=false, got %v", body)
	}
	if errs, ok := body["errors"].([]any); !ok || len(errs) != 1 {
		t.Fatalf("expected one error, got %v", body["errors"])
	}
}

func TestTemplatesRoute(t *testing.T) {
	app := makeApp(newTestService(t, nil))

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/caption/templates", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "[Nom du talent] porte") {
		t.Fatalf("expected french talent template in body: %s", b)
	}
}
