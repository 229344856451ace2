package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRegistry_Register_Apply(t *testing.T) {
	RegisterGET("/test/registry/check", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	e := echo.New()
	ApplyRoutes(e, nil)

	req := httptest.NewRequest(http.MethodGet, "/test/registry/check", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSessionMiddlewareAssignsCookie(t *testing.T) {
	e := echo.New()
	e.Use(SessionMiddleware())
	e.GET("/whoami", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	var issued string
	for _, ck := range cookies {
		if ck.Name == SessionCookie {
			issued = ck.Value
		}
	}
	if issued == "" {
		t.Fatalf("no session cookie issued")
	}
	if rec.Body.String() != issued {
		t.Errorf("handler saw %q, cookie is %q", rec.Body.String(), issued)
	}

	// A browser that already carries the cookie keeps its id.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: issued})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Body.String() != issued {
		t.Errorf("session id changed across requests")
	}
}
