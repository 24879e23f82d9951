package router

import (
	"net/http"

	"gogokodo/config"
	pageHandler "gogokodo/internal/page"
	"gogokodo/internal/page/repository"
	"gogokodo/internal/page/service"
	"gogokodo/middleware"
	"gogokodo/store"
)

// Setup wires the route table. ServeMux precedence (most specific pattern
// wins) keeps /template/{id} and /content/{path} out of the single-segment
// page catch-all; a request for /template itself falls through to the page
// handler like any other path.
func Setup(cfg *config.Config, kv store.Store) http.Handler {
	mux := http.NewServeMux()

	pageRepo := repository.NewPageRepository(kv)
	pageService := service.NewPageService(pageRepo)
	pages := pageHandler.NewPageHandler(pageService)
	admin := middleware.AdminMiddleware(cfg.AdminToken)

	mux.HandleFunc("GET /{$}", pages.Welcome)
	mux.HandleFunc("GET /{path}", pages.RenderPage)
	mux.Handle("POST /template", admin(http.HandlerFunc(pages.CreateTemplate)))
	mux.HandleFunc("GET /template/{id}", pages.GetTemplate)
	mux.HandleFunc("GET /content/{path}", pages.GetContent)
	mux.Handle("POST /{$}", admin(http.HandlerFunc(pages.CreateContent)))

	return middleware.CORSMiddleware(mux)
}
