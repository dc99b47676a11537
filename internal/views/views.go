package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

const (
	PageLogin      = "login"
	PageLoginOrder = "login_order"
	PageVerifyPin  = "verify_pin"
	PageOrders     = "orders"
	PageOrder      = "order"
	PageContact    = "contact"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = map[string]*template.Template{}

func init() {
	for _, page := range []string{PageLogin, PageLoginOrder, PageVerifyPin, PageOrders, PageOrder, PageContact} {
		pages[page] = template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html"))
	}
}

// Render выполняет шаблон страницы и отправляет его с кодом status.
// Ответ собирается целиком, чтобы ошибка шаблона не оставила половину страницы.
func Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
