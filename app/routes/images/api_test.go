package images

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"pilates-studio/app/config"
	"pilates-studio/app/models"
	"pilates-studio/app/routes/auth"
	"pilates-studio/app/studio"
)

type fakeEditor struct {
	gotMime        string
	gotInstruction string
	out            []byte
	outMime        string
	err            error
}

func (f *fakeEditor) Edit(image []byte, mimeType, instruction string) ([]byte, string, error) {
	f.gotMime = mimeType
	f.gotInstruction = instruction
	return f.out, f.outMime, f.err
}

func newTestApp(t *testing.T, editor *fakeEditor) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	hash, err := bcrypt.GenerateFromPassword([]byte("adminpw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	state := studio.SeedState("admin", string(hash), "monitor", string(hash))

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s := studio.New(state, []models.Session{}, nil)
	s.SetClock(func() time.Time { return now })

	app := fiber.New()
	auth.SetupAuthRoutes(app, s)
	SetupImagesRoutes(app, editor)
	return app
}

func memberToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{"role": "member", "name": "Ana", "surname": "Lopez", "alias": "ana"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return out.Token
}

func multipartBody(t *testing.T, image []byte, mimeType, instruction string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="studio.png"`)
	header.Set("Content-Type", mimeType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(image)

	if instruction != "" {
		if err := w.WriteField("instruction", instruction); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestEditImage(t *testing.T) {
	editor := &fakeEditor{out: []byte("edited"), outMime: "image/png"}
	app := newTestApp(t, editor)
	token := memberToken(t, app)

	body, contentType := multipartBody(t, []byte("original"), "image/jpeg", "add a rose tint")
	req := httptest.NewRequest(http.MethodPost, "/api/images/edit", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "image/png" {
		t.Fatalf("content type = %q, want image/png", got)
	}
	data, _ := io.ReadAll(resp.Body)
	if string(data) != "edited" {
		t.Fatalf("body = %q, want edited bytes", data)
	}
	if editor.gotMime != "image/jpeg" || editor.gotInstruction != "add a rose tint" {
		t.Fatalf("editor received mime %q instruction %q", editor.gotMime, editor.gotInstruction)
	}
}

func TestEditImageMissingParts(t *testing.T) {
	app := newTestApp(t, &fakeEditor{out: []byte("x"), outMime: "image/png"})
	token := memberToken(t, app)

	// Missing instruction
	body, contentType := multipartBody(t, []byte("original"), "image/png", "")
	req := httptest.NewRequest(http.MethodPost, "/api/images/edit", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("missing instruction status = %d, want 400", resp.StatusCode)
	}

	// Missing file entirely
	req = httptest.NewRequest(http.MethodPost, "/api/images/edit", bytes.NewReader(nil))
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("missing image status = %d, want 400", resp.StatusCode)
	}
}
